package ranking

import (
	"sort"
	"strings"

	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	"github.com/pricepulse-au/pricepulse-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Filter describes catalog predicates. All set predicates must match
// (logical AND); zero values mean "no constraint".
type Filter struct {
	Category enums.ProductCategory
	Brands   []string
	Search   string
	MaxPrice *decimal.Decimal
}

func (f Filter) matches(p types.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if len(f.Brands) > 0 {
		found := false
		for _, brand := range f.Brands {
			if brand == p.Brand {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	// The ceiling applies to the minimum of the three prices; an all-zero
	// quote has min 0 and passes trivially.
	if f.MaxPrice != nil && p.Prices.Min().GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// Rank returns a newly allocated, filtered, ordered view of the catalog.
// Sorting is stable, so records with equal keys keep their input order.
// SortKeyNewest leaves input order untouched; the snapshot feed carries no
// recency signal to sort on.
func Rank(products []types.Product, f Filter, key enums.SortKey) []types.Product {
	out := make([]types.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}

	switch key {
	case enums.SortKeyLowest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Prices.Min().LessThan(out[j].Prices.Min())
		})
	case enums.SortKeySavings:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Prices.Savings().GreaterThan(out[j].Prices.Savings())
		})
	}
	return out
}

// Deal pairs a product with its computed savings for a deals rail.
type Deal struct {
	types.Product
	Savings        decimal.Decimal `json:"savings"`
	SavingsPercent decimal.Decimal `json:"savings_percent"`
}

var hundred = decimal.NewFromInt(100)

// HotDeals ranks showcase-catalog deals by discount off the recommended
// retail price: (rrp - min) / rrp * 100, zeros participating in min.
// Products without a positive RRP are excluded, as is anything at or above
// RRP. Results are sorted by percent descending and truncated to limit.
func HotDeals(products []types.Product, limit int) []Deal {
	deals := make([]Deal, 0, len(products))
	for _, p := range products {
		percent := decimal.Zero
		if p.RRP != nil && p.RRP.GreaterThan(decimal.Zero) {
			percent = p.RRP.Sub(p.Prices.Min()).Div(*p.RRP).Mul(hundred)
		}
		if !percent.GreaterThan(decimal.Zero) {
			continue
		}
		deals = append(deals, Deal{
			Product:        p,
			Savings:        p.Prices.Savings(),
			SavingsPercent: percent,
		})
	}
	sortDeals(deals)
	return truncate(deals, limit)
}

// FeedHotDeals ranks feed-catalog deals by the spread between retailers,
// over strictly positive prices only: savings = max - min of the positive
// prices, percent = savings / max * 100. A product needs at least two
// positive prices to qualify.
func FeedHotDeals(products []types.Product, limit int) []Deal {
	deals := make([]Deal, 0, len(products))
	for _, p := range products {
		positive := p.Prices.PositiveValues()
		if len(positive) < 2 {
			continue
		}
		min, max := positive[0], positive[0]
		for _, price := range positive[1:] {
			if price.LessThan(min) {
				min = price
			}
			if price.GreaterThan(max) {
				max = price
			}
		}
		savings := max.Sub(min)
		percent := savings.Div(max).Mul(hundred)
		if !percent.GreaterThan(decimal.Zero) {
			continue
		}
		deals = append(deals, Deal{
			Product:        p,
			Savings:        savings,
			SavingsPercent: percent,
		})
	}
	sortDeals(deals)
	return truncate(deals, limit)
}

func sortDeals(deals []Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].SavingsPercent.GreaterThan(deals[j].SavingsPercent)
	})
}

func truncate(deals []Deal, limit int) []Deal {
	if limit > 0 && len(deals) > limit {
		return deals[:limit]
	}
	return deals
}
