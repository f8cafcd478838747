package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ubereats-api/internal/config"
	"github.com/BruksfildServices01/ubereats-api/internal/db"
	"github.com/BruksfildServices01/ubereats-api/internal/routes"
)

const testSecret = "test-secret"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "api.db"),
		JWTSecret:   testSecret,
		JWTTTL:      7 * 24 * time.Hour,
		Environment: config.EnvTest,
		Version:     "test",
		CacheTTL:    time.Minute,
	}
}

func newTestAPI(t *testing.T) (*gin.Engine, *db.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)

	store, err := db.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	r := routes.NewEngine(cfg)
	routes.RegisterRoutes(r, store, cfg, nil)
	return r, store
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
