package enums

import "fmt"

// SortKey selects the ordering applied to a filtered catalog view.
type SortKey string

const (
	SortKeyLowest  SortKey = "lowest"
	SortKeySavings SortKey = "savings"
	// SortKeyNewest is accepted but currently leaves input order untouched.
	// There is no recency signal in the snapshot feed to sort on.
	SortKeyNewest SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortKeyLowest,
	SortKeySavings,
	SortKeyNewest,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input selects
// the lowest-price ordering.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyLowest, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
