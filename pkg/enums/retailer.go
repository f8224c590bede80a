package enums

import "fmt"

// Retailer identifies one of the three tracked sellers. The declaration
// order is the canonical tie-break order for best-price reporting.
type Retailer string

const (
	RetailerJBHiFi       Retailer = "jbhifi"
	RetailerGoodGuys     Retailer = "goodguys"
	RetailerHarveyNorman Retailer = "harveynorman"
)

var orderedRetailers = []Retailer{
	RetailerJBHiFi,
	RetailerGoodGuys,
	RetailerHarveyNorman,
}

// Retailers returns the retailers in canonical order.
func Retailers() []Retailer {
	out := make([]Retailer, len(orderedRetailers))
	copy(out, orderedRetailers)
	return out
}

// String implements fmt.Stringer.
func (r Retailer) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Retailer.
func (r Retailer) IsValid() bool {
	for _, candidate := range orderedRetailers {
		if candidate == r {
			return true
		}
	}
	return false
}

// DisplayName returns the customer-facing retailer name.
func (r Retailer) DisplayName() string {
	switch r {
	case RetailerJBHiFi:
		return "JB Hi-Fi"
	case RetailerGoodGuys:
		return "The Good Guys"
	case RetailerHarveyNorman:
		return "Harvey Norman"
	}
	return string(r)
}

// HomepageURL returns the retailer storefront URL.
func (r Retailer) HomepageURL() string {
	switch r {
	case RetailerJBHiFi:
		return "https://jbhifi.com.au"
	case RetailerGoodGuys:
		return "https://thegoodguys.com.au"
	case RetailerHarveyNorman:
		return "https://harveynorman.com.au"
	}
	return ""
}

// ParseRetailer converts raw input into a Retailer.
func ParseRetailer(value string) (Retailer, error) {
	for _, candidate := range orderedRetailers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid retailer %q", value)
}
