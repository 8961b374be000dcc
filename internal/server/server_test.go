package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/carriertrack/internal/server"
	"github.com/tournevent/carriertrack/internal/telemetry"
	"github.com/tournevent/carriertrack/pkg/tracknum"
	"github.com/tournevent/carriertrack/pkg/tracknum/fedex"
	"github.com/tournevent/carriertrack/pkg/tracknum/ups"
	"github.com/tournevent/carriertrack/pkg/tracknum/usps"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Prometheus metrics register globally; one instance per test binary.
var testMetrics = telemetry.NewMetrics()

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	registry := tracknum.NewRegistry()
	registry.Register(ups.New())
	registry.Register(fedex.NewExpress())
	registry.Register(fedex.NewGround())
	registry.Register(usps.New())

	logger := otelzap.New(zap.NewNop())
	srv := server.New(server.Config{Port: 8080}, registry, logger, testMetrics)
	return srv.Handler()
}

func postGraphQL(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

func TestServer_Health(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_GraphQL_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	resp := decodeResponse(t, rec)
	errs, ok := resp["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestServer_GraphQL_InvalidJSON(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler, "invalid json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GraphQL_InvalidQuery(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler, `{"query": "query { classify(number:"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GraphQL_UnknownField(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler, `{"query": "query { shipments }"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GraphQL_HealthQuery(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler, `{"query": "query { health }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["health"])
}

func TestServer_GraphQL_CarriersQuery(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler, `{"query": "query { carriers { service carrier } }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	carriers, ok := data["carriers"].([]interface{})
	require.True(t, ok)
	assert.Len(t, carriers, 4)
}

func TestServer_GraphQL_ClassifyInlineArgument(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler,
		`{"query": "query { classify(number: \"961234567890121\") { valid carrier trackingUrl } }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp["data"].(map[string]interface{})
	result, ok := data["classify"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "fedex", result["carrier"])
	assert.Equal(t, "fedex_ground", result["service"])
	assert.Equal(t,
		"http://www.fedex.com/Tracking?tracknumbers=961234567890121",
		result["trackingUrl"])
}

func TestServer_GraphQL_ClassifyVariable(t *testing.T) {
	handler := newTestHandler(t)

	body := `{
		"query": "query Classify($number: String!) { classify(number: $number) { valid service } }",
		"variables": {"number": "9100012345678901234562"}
	}`
	rec := postGraphQL(t, handler, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp["data"].(map[string]interface{})
	result := data["classify"].(map[string]interface{})

	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "usps", result["service"])
}

func TestServer_GraphQL_ClassifyMissingVariable(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"query": "query Classify($number: String!) { classify(number: $number) { valid } }"}`
	rec := postGraphQL(t, handler, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GraphQL_ClassifyNoMatch(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler,
		`{"query": "query { classify(number: \"junk\") { valid carrier } }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp["data"].(map[string]interface{})
	result := data["classify"].(map[string]interface{})

	assert.Equal(t, false, result["valid"])
	_, hasCarrier := result["carrier"]
	assert.False(t, hasCarrier)
}

func TestServer_GraphQL_TrackingURLQuery(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler,
		`{"query": "query { trackingUrl(number: \"1Z999AA10123456786\") }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t,
		"http://wwwapps.ups.com/tracking/tracking.cgi?tracknum=1Z999AA10123456786",
		data["trackingUrl"])
}

func TestServer_GraphQL_TrackingURLNoMatch(t *testing.T) {
	handler := newTestHandler(t)

	rec := postGraphQL(t, handler, `{"query": "query { trackingUrl(number: \"junk\") }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp["data"].(map[string]interface{})
	assert.Nil(t, data["trackingUrl"])
}
