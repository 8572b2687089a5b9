package meta

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzmath/alert-system-for-meta-ads/infrastructure/integrator/meta/metaclient"
	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:         url,
			AccessToken: "test-token",
			AdAccountID: "1234567890",
		},
	}
}

func TestFetchTodaySpend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_1234567890/insights", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "ad", query.Get("level"))
		assert.Equal(t, "true", query.Get("use_account_attribution_setting"))
		assert.Equal(t, "campaign_id,adset_id,ad_name,spend", query.Get("fields"))
		assert.Equal(t, "today", query.Get("date_preset"))
		assert.Equal(t, "test-token", query.Get("access_token"))

		w.Write([]byte(`{"data":[
			{"campaign_id":"C1","adset_id":"A1","ad_name":"Ad1","spend":"150.00","date_start":"2024-01-01","date_stop":"2024-01-01"},
			{"campaign_id":"C2","adset_id":"A2","ad_name":"Ad2","spend":"invalido","date_start":"2024-01-01","date_stop":"2024-01-01"}
		]}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	records := integrator.FetchTodaySpend()

	// A linha com gasto não numérico é descartada com aviso
	require.Len(t, records, 1)
	assert.Equal(t, "C1", records[0].CampaignID)
	assert.Equal(t, "A1", records[0].AdsetID)
	assert.Equal(t, "Ad1", records[0].AdName)
	assert.Equal(t, 150.00, records[0].Spend)
	assert.Equal(t, "C1-A1-Ad1", records[0].UTMCampaign)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestFetchTodaySpend_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"token expirado"}}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	// Dia sem dados é um resultado válido: a falha vira lista vazia
	records := integrator.FetchTodaySpend()
	assert.Empty(t, records)
}

func TestFetchTodaySpend_EmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	records := integrator.FetchTodaySpend()
	assert.Empty(t, records)
}
