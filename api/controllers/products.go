package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pricepulse-au/pricepulse-backend/api/responses"
	"github.com/pricepulse-au/pricepulse-backend/api/validators"
	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/internal/ranking"
	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	pkgerrors "github.com/pricepulse-au/pricepulse-backend/pkg/errors"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
	"github.com/pricepulse-au/pricepulse-backend/pkg/types"
)

type productResponse struct {
	types.Product
	BestPrice        types.RankedQuote `json:"best_price"`
	BestPriceDisplay string            `json:"best_price_display"`
}

type listResponse struct {
	Products []productResponse `json:"products"`
	Total    int               `json:"total"`
}

func toProductResponse(p types.Product) productResponse {
	best := p.Prices.Best()
	return productResponse{
		Product:          p,
		BestPrice:        best,
		BestPriceDisplay: types.FormatPrice(best.Price),
	}
}

func toListResponse(products []types.Product) listResponse {
	out := listResponse{Products: make([]productResponse, 0, len(products)), Total: len(products)}
	for _, p := range products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	return out
}

// ListProducts serves the showcase catalog with query-driven filtering and
// sorting.
func ListProducts(provider catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		filter, sortKey, err := filterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := provider.Load(r.Context())
		ranked := ranking.Rank(products, filter, sortKey)
		responses.WriteSuccess(w, toListResponse(ranked))
	}
}

// GetProduct serves a single record with its ranked quote.
func GetProduct(provider catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		provider.Load(r.Context())
		id := chi.URLParam(r, "id")
		product, ok := provider.GetByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, toProductResponse(*product))
	}
}

type searchRequest struct {
	Category string   `json:"category,omitempty" validate:"omitempty,oneof=tv laptop headphones appliances gaming"`
	Brands   []string `json:"brands,omitempty"`
	Query    string   `json:"query,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Sort     string   `json:"sort,omitempty" validate:"omitempty,oneof=lowest savings newest"`
}

// SearchProducts is the POST variant of ListProducts for clients that send
// structured filter payloads.
func SearchProducts(provider catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var payload searchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := ranking.Filter{
			Category: enums.ProductCategory(payload.Category),
			Brands:   payload.Brands,
			Search:   payload.Query,
		}
		if payload.MaxPrice != nil {
			ceiling := decimal.NewFromFloat(*payload.MaxPrice)
			filter.MaxPrice = &ceiling
		}

		sortKey, err := enums.ParseSortKey(payload.Sort)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
			return
		}

		products := provider.Load(r.Context())
		ranked := ranking.Rank(products, filter, sortKey)
		responses.WriteSuccess(w, toListResponse(ranked))
	}
}

func filterFromQuery(r *http.Request) (ranking.Filter, enums.SortKey, error) {
	var filter ranking.Filter

	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			return filter, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		filter.Category = category
	}

	for _, brand := range r.URL.Query()["brand"] {
		if trimmed := strings.TrimSpace(brand); trimmed != "" {
			filter.Brands = append(filter.Brands, trimmed)
		}
	}

	filter.Search = strings.TrimSpace(r.URL.Query().Get("q"))

	ceiling, err := validators.ParseQueryDecimal(r, "max_price")
	if err != nil {
		return filter, "", err
	}
	filter.MaxPrice = ceiling

	sortKey, err := enums.ParseSortKey(strings.TrimSpace(r.URL.Query().Get("sort")))
	if err != nil {
		return filter, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
	}
	return filter, sortKey, nil
}
