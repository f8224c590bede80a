package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/pricepulse-au/pricepulse-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseQueryDecimal parses an optional decimal query parameter. A missing
// or blank parameter returns nil.
func ParseQueryDecimal(r *http.Request, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must not be negative").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}
