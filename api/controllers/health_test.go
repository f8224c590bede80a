package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pricepulse-au/pricepulse-backend/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	handler := HealthLive(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Data struct {
			Status string `json:"status"`
			Env    string `json:"env"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "ok", payload.Data.Status)
	require.Equal(t, "test", payload.Data.Env)
}

func TestHealthReadyReportsCatalogCounts(t *testing.T) {
	provider := &stubProvider{products: sampleProducts()}
	handler := HealthReady(testConfig(), provider, nil)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Data struct {
			Status   string         `json:"status"`
			Catalogs map[string]int `json:"catalogs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "ok", payload.Data.Status)
	require.Equal(t, 3, payload.Data.Catalogs["stub"])
}

func TestListRetailersInComparisonOrder(t *testing.T) {
	handler := ListRetailers()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/retailers", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Data struct {
			Retailers []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"retailers"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 3, payload.Data.Total)
	require.Equal(t, "jbhifi", payload.Data.Retailers[0].ID)
	require.Equal(t, "JB Hi-Fi", payload.Data.Retailers[0].Name)
	require.Equal(t, "goodguys", payload.Data.Retailers[1].ID)
	require.Equal(t, "harveynorman", payload.Data.Retailers[2].ID)
}
