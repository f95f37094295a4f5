package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPlansDefaults(t *testing.T) {
	plans := loadPlans()
	require.Len(t, plans, 3)
	require.InDelta(t, 19, plans["pro"].Amount, 0.001)
	require.InDelta(t, 49, plans["premium"].Amount, 0.001)
	require.InDelta(t, 99, plans["gold"].Amount, 0.001)
}

func TestLoadPlansFromEnv(t *testing.T) {
	t.Setenv("PLAN_PRICES", `{"starter":{"name":"Starter","amount":9.5,"currency":"USD"}}`)

	plans := loadPlans()
	require.Len(t, plans, 1)
	require.Equal(t, "Starter", plans["starter"].Name)
	require.InDelta(t, 9.5, plans["starter"].Amount, 0.001)
}

func TestLoadPlansInvalidJSONFallsBack(t *testing.T) {
	t.Setenv("PLAN_PRICES", "not json")

	plans := loadPlans()
	require.Len(t, plans, 3)
	require.Contains(t, plans, "pro")
}
