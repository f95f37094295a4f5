package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatusFromResponseCode(t *testing.T) {
	require.Equal(t, TransactionApproved, StatusFromResponseCode(1))
	require.Equal(t, TransactionRejected, StatusFromResponseCode(2))
	require.Equal(t, TransactionPending, StatusFromResponseCode(3))
	require.Equal(t, TransactionRejected, StatusFromResponseCode(4))

	// Codes the gateway never documented are treated as failures
	require.Equal(t, TransactionRejected, StatusFromResponseCode(0))
	require.Equal(t, TransactionRejected, StatusFromResponseCode(42))
	require.Equal(t, TransactionRejected, StatusFromResponseCode(-1))
}

func TestSubscriptionIsCurrent(t *testing.T) {
	active := Subscription{IsActive: true, ExpiresAt: time.Now().Add(time.Hour)}
	require.True(t, active.IsCurrent())

	expired := Subscription{IsActive: true, ExpiresAt: time.Now().Add(-time.Hour)}
	require.False(t, expired.IsCurrent())

	shell := Subscription{IsActive: false, ExpiresAt: time.Now().Add(time.Hour)}
	require.False(t, shell.IsCurrent())
}
