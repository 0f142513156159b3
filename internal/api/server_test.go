package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-score-server/internal/domain"
	"github.com/clinical-score-server/internal/scores"
)

func testServer() *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &domain.Config{
		Server:  domain.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Logging: domain.LoggingConfig{Level: "error", Format: "json"},
		RateLimit: domain.RateLimitConfig{
			Enabled: false,
		},
	}

	return NewServer(cfg, logger, scores.New(logger))
}

func doRequest(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Health(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_ListScores(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodGet, "/api/v1/scores", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(19), body["count"])

	list := body["scores"].([]interface{})
	require.Len(t, list, 19)
	first := list[0].(map[string]interface{})
	assert.NotEmpty(t, first["id"])
	assert.NotEmpty(t, first["name"])
	assert.NotEmpty(t, first["specialty"])
}

func TestServer_CalculateScore(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodPost, "/api/v1/scores/centor_score", map[string]interface{}{
		"tonsillar_exudate":     "yes",
		"tender_cervical_nodes": "yes",
		"fever_history":         "yes",
		"cough_absent":          "yes",
		"age_years":             10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(5), body["result"])
	assert.Equal(t, "High Risk", body["stage"])
	assert.Equal(t, "points", body["unit"])
	assert.NotEmpty(t, body["interpretation"])
	// Extras are flattened into the top level
	assert.Equal(t, "51-53%", body["strep_probability"])
}

func TestServer_UnknownScore(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodPost, "/api/v1/scores/no_such_score", map[string]interface{}{})
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, domain.ErrUnknownScore, body["error"])
	details := body["details"].(map[string]interface{})
	assert.Equal(t, "no_such_score", details["score_id"])
}

func TestServer_ValidationError(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodPost, "/api/v1/scores/centor_score", map[string]interface{}{
		"tonsillar_exudate": "yes",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, domain.ErrValidation, body["error"])
	details := body["details"].(map[string]interface{})
	assert.Equal(t, "tender_cervical_nodes", details["field"])
}

func TestServer_CalculationError(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodPost, "/api/v1/scores/ldl_calculated", map[string]interface{}{
		"total_cholesterol": 120,
		"hdl_cholesterol":   150,
		"triglycerides":     100,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, domain.ErrCalculation, body["error"])
}

func TestServer_MalformedBody(t *testing.T) {
	server := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores/centor_score", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domain.ErrValidation, body["error"])
}

func TestServer_SecurityHeaders(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodGet, "/health", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestServer_CorrelationIDHeader(t *testing.T) {
	server := testServer()

	rec := doRequest(t, server, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "fixed-id")
	echo := httptest.NewRecorder()
	server.router.ServeHTTP(echo, req)
	assert.Equal(t, "fixed-id", echo.Header().Get("X-Correlation-ID"))
}
