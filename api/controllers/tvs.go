package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pricepulse-au/pricepulse-backend/api/responses"
	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/internal/ranking"
	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	pkgerrors "github.com/pricepulse-au/pricepulse-backend/pkg/errors"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
)

// ListTVs serves the feed-sourced TV catalog. The feed view supports search
// and sort only; category and brand are fixed at ingestion.
func ListTVs(provider catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		filter := ranking.Filter{Search: strings.TrimSpace(r.URL.Query().Get("q"))}
		sortKey, err := enums.ParseSortKey(strings.TrimSpace(r.URL.Query().Get("sort")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
			return
		}

		products := provider.Load(r.Context())
		ranked := ranking.Rank(products, filter, sortKey)
		responses.WriteSuccess(w, toListResponse(ranked))
	}
}

// GetTV serves one feed-sourced record by its lg-N id.
func GetTV(provider catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		provider.Load(r.Context())
		id := chi.URLParam(r, "id")
		product, ok := provider.GetByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "tv not found"))
			return
		}
		responses.WriteSuccess(w, toProductResponse(*product))
	}
}
