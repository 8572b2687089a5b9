package pipefyclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Pipefy: config.Pipefy{
			URL:      url,
			Token:    "test-token",
			PipeID:   "301",
			ReportID: "900",
		},
	}
}

func TestRequestExport(t *testing.T) {
	var receivedAuth string
	var receivedQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		receivedQuery = payload["query"]

		w.Write([]byte(`{"data":{"exportPipeReport":{"pipeReportExport":{"id":"5500"}}}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	exportID, err := client.RequestExport()
	require.NoError(t, err)

	assert.Equal(t, "5500", exportID)
	assert.Equal(t, "Bearer test-token", receivedAuth)
	assert.Contains(t, receivedQuery, "exportPipeReport(input: {pipeId: 301, pipeReportId: 900})")
}

func TestRequestExport_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"exportPipeReport":{}}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.RequestExport()
	assert.ErrorContains(t, err, "sem id do export")
}

func TestRequestExport_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.RequestExport()
	assert.Error(t, err)
}

func TestGetExport(t *testing.T) {
	var receivedQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		receivedQuery = payload["query"]

		w.Write([]byte(`{"data":{"pipeReportExport":{"fileURL":"https://files.pipefy.com/report.xlsx","state":"done","startedAt":"2024-01-01T10:00:00Z","requestedBy":{"id":"7"}}}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	export, err := client.GetExport("5500")
	require.NoError(t, err)

	assert.Contains(t, receivedQuery, "pipeReportExport(id: 5500)")
	assert.Equal(t, "done", export.State)
	assert.Equal(t, "https://files.pipefy.com/report.xlsx", export.FileURL)
	assert.Equal(t, "7", export.RequestedBy.ID)
}

func TestGetExport_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GetExport("5500")
	assert.ErrorContains(t, err, "sem dados")
}
