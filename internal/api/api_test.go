package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "test-admin-key"

// setupRouter builds a router against a per-test in-memory database to
// avoid cross-test interference
func setupRouter(t *testing.T, opts ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logging.InitLogging()

	config.AppConfig = &config.Config{
		Mode:                  "test",
		EpaycoPublicKey:       "pk_test_123",
		EpaycoTest:            true,
		ConfirmationURL:       "https://example.com/api/payments/webhook",
		ResponseURL:           "https://example.com/payment-response",
		AdminAPIKey:           testAdminKey,
		Plans:                 config.DefaultPlans(),
		DefaultCommissionRate: 0.10,
		AITimeoutSeconds:      5,
		AIModel:               "test-model",
	}
	for _, opt := range opts {
		opt(config.AppConfig)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.OpenSQLite(dsn)
	require.NoError(t, err)
	database.SetDB(db)

	r := gin.New()
	SetupRoutes(r)
	return r
}

func httpDo(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// httpDoForm posts form-urlencoded bodies the way the payment gateway does
func httpDoForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func httpDoAdmin(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-Admin-Key", testAdminKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
