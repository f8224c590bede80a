package types

import (
	"time"

	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is the canonical catalog record. Instances are immutable once a
// catalog load completes; consumers only ever receive copies or read-only
// slices of them.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	ScreenSize  string                `json:"screen_size,omitempty"`
	Image       string                `json:"image"`
	Images      []string              `json:"images,omitempty"`
	Category    enums.ProductCategory `json:"category"`
	Brand       string                `json:"brand"`
	Prices      PriceQuote            `json:"prices"`
	RRP         *decimal.Decimal      `json:"rrp,omitempty"`
	ProductURL  string                `json:"product_url,omitempty"`
	Description string                `json:"description,omitempty"`
	AllSpecs    string                `json:"all_specs,omitempty"`
	Dimensions  string                `json:"dimensions,omitempty"`
	Specs       string                `json:"specs,omitempty"`
	LastUpdated time.Time             `json:"last_updated"`
}
