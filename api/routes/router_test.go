package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/internal/feed"
	"github.com/pricepulse-au/pricepulse-backend/pkg/config"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
	"github.com/pricepulse-au/pricepulse-backend/pkg/metrics"
)

const feedFixture = `Name,Screen Size,JB Hi-Fi,Good Guys,Harvey Norman,URL,Description,Specs,Dimensions
LG OLED evo C4 65,65 inch,"$3,295",3195,$3290,https://example.com/c4,Self-lit OLED,OLED evo panel,1441 x 826 x 45 mm
LG QNED86 75,75 inch,2495,N/A,2395,https://example.com/qned,Mini LED backlight,QNED colour,1675 x 964 x 30 mm
`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tvs.csv")
	require.NoError(t, os.WriteFile(path, []byte(feedFixture), 0o644))

	cfg := &config.Config{
		App:   config.AppConfig{Env: "test", Port: "0"},
		Feed:  config.FeedConfig{Path: path},
		Deals: config.DealsConfig{Limit: 8},
		CORS:  config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: &strings.Builder{}})

	registry := prometheus.NewRegistry()
	source, err := feed.NewFileSource(path)
	require.NoError(t, err)
	feedProvider, err := catalog.NewFeedProvider(source, logg, metrics.NewFeedMetrics(registry))
	require.NoError(t, err)

	return NewRouter(cfg, logg, registry, catalog.NewFixtureProvider(), feedProvider)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK, get(t, router, "/health/live").Code)
	require.Equal(t, http.StatusOK, get(t, router, "/health/ready").Code)
}

func TestRouterServesFixtureCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/products")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 12, payload.Data.Total)
}

func TestRouterServesFeedCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/tvs")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			Products []struct {
				ID string `json:"id"`
			} `json:"products"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 2, payload.Data.Total)

	detail := get(t, router, "/api/v1/tvs/"+payload.Data.Products[0].ID)
	require.Equal(t, http.StatusOK, detail.Code)
}

func TestRouterTVDeals(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/tvs/deals")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterNotFoundProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/products/does-not-exist")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestRouterExposesMetrics(t *testing.T) {
	router := newTestRouter(t)

	// Touch the feed so the load counters have been exercised.
	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/tvs").Code)

	rec := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "catalog_load_success")
}

func TestRouterRetailers(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/retailers")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "JB Hi-Fi")
}
