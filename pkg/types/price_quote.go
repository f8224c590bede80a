package types

import (
	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// PriceQuote holds the per-retailer prices for a single product. All three
// fields are always present; zero means "not stocked by this retailer",
// never free.
type PriceQuote struct {
	JBHiFi       decimal.Decimal `json:"jbhifi"`
	GoodGuys     decimal.Decimal `json:"goodguys"`
	HarveyNorman decimal.Decimal `json:"harveynorman"`
}

// RankedQuote is the derived best-offer view of a PriceQuote.
type RankedQuote struct {
	Retailer     enums.Retailer  `json:"retailer"`
	RetailerName string          `json:"retailer_name"`
	Price        decimal.Decimal `json:"price"`
	MaxPrice     decimal.Decimal `json:"max_price"`
	Savings      decimal.Decimal `json:"savings"`
}

// ByRetailer returns the price for the given retailer, zero for unknown ids.
func (q PriceQuote) ByRetailer(r enums.Retailer) decimal.Decimal {
	switch r {
	case enums.RetailerJBHiFi:
		return q.JBHiFi
	case enums.RetailerGoodGuys:
		return q.GoodGuys
	case enums.RetailerHarveyNorman:
		return q.HarveyNorman
	}
	return decimal.Zero
}

// Min returns the lowest of the three prices, zeros included.
func (q PriceQuote) Min() decimal.Decimal {
	min := q.JBHiFi
	if q.GoodGuys.LessThan(min) {
		min = q.GoodGuys
	}
	if q.HarveyNorman.LessThan(min) {
		min = q.HarveyNorman
	}
	return min
}

// Max returns the highest of the three prices, zeros included.
func (q PriceQuote) Max() decimal.Decimal {
	max := q.JBHiFi
	if q.GoodGuys.GreaterThan(max) {
		max = q.GoodGuys
	}
	if q.HarveyNorman.GreaterThan(max) {
		max = q.HarveyNorman
	}
	return max
}

// Savings returns max minus min over all three prices.
func (q PriceQuote) Savings() decimal.Decimal {
	return q.Max().Sub(q.Min())
}

// PositiveValues returns the strictly positive prices in retailer order.
func (q PriceQuote) PositiveValues() []decimal.Decimal {
	var out []decimal.Decimal
	for _, retailer := range enums.Retailers() {
		if price := q.ByRetailer(retailer); price.GreaterThan(decimal.Zero) {
			out = append(out, price)
		}
	}
	return out
}

// HasPositive reports whether at least one retailer stocks the product.
func (q PriceQuote) HasPositive() bool {
	return len(q.PositiveValues()) > 0
}

// Best returns the ranked view of the quote. Ties resolve to the first
// retailer in canonical order.
func (q PriceQuote) Best() RankedQuote {
	retailers := enums.Retailers()
	best := retailers[0]
	bestPrice := q.ByRetailer(best)
	maxPrice := bestPrice
	for _, retailer := range retailers[1:] {
		price := q.ByRetailer(retailer)
		if price.LessThan(bestPrice) {
			best = retailer
			bestPrice = price
		}
		if price.GreaterThan(maxPrice) {
			maxPrice = price
		}
	}
	return RankedQuote{
		Retailer:     best,
		RetailerName: best.DisplayName(),
		Price:        bestPrice,
		MaxPrice:     maxPrice,
		Savings:      maxPrice.Sub(bestPrice),
	}
}
