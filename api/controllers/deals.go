package controllers

import (
	"net/http"

	"github.com/pricepulse-au/pricepulse-backend/api/responses"
	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/internal/ranking"
	pkgerrors "github.com/pricepulse-au/pricepulse-backend/pkg/errors"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
	"github.com/pricepulse-au/pricepulse-backend/pkg/types"
)

type dealResponse struct {
	ranking.Deal
	BestPrice        types.RankedQuote `json:"best_price"`
	BestPriceDisplay string            `json:"best_price_display"`
	SavingsDisplay   string            `json:"savings_display"`
}

type dealsListResponse struct {
	Deals []dealResponse `json:"deals"`
	Total int            `json:"total"`
}

func toDealsResponse(deals []ranking.Deal) dealsListResponse {
	out := dealsListResponse{Deals: make([]dealResponse, 0, len(deals)), Total: len(deals)}
	for _, d := range deals {
		best := d.Prices.Best()
		out.Deals = append(out.Deals, dealResponse{
			Deal:             d,
			BestPrice:        best,
			BestPriceDisplay: types.FormatPrice(best.Price),
			SavingsDisplay:   types.FormatPrice(d.Savings),
		})
	}
	return out
}

// HotDeals serves the top discounts from the showcase catalog, measured
// against each product's RRP.
func HotDeals(provider catalog.Provider, logg *logger.Logger, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := provider.Load(r.Context())
		deals := ranking.HotDeals(products, limit)
		responses.WriteSuccess(w, toDealsResponse(deals))
	}
}

// TVDeals serves the top discounts from the feed catalog, measured as the
// spread between the highest and lowest retailer quote.
func TVDeals(provider catalog.Provider, logg *logger.Logger, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := provider.Load(r.Context())
		deals := ranking.FeedHotDeals(products, limit)
		responses.WriteSuccess(w, toDealsResponse(deals))
	}
}
