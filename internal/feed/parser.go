package feed

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	"github.com/pricepulse-au/pricepulse-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// PlaceholderImage stands in until the feed carries real product imagery.
const PlaceholderImage = "https://images.unsplash.com/photo-1593784991095-a205069470b6?w=800&q=80"

const (
	feedBrand        = "LG"
	idPrefix         = "lg-"
	fieldCount       = 9
	specPreviewRunes = 100
)

// CleanPrice turns a raw feed price cell into a decimal. It is total:
// empty cells, the "N/A" token, and anything that fails numeric parsing
// after stripping "$", ",", and whitespace all map to zero. Negative
// values that do parse are passed through unclamped.
func CleanPrice(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "N/A" {
		return decimal.Zero
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)
	if cleaned == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// splitLine splits one feed line on unquoted commas. A doubled quote inside
// a quoted field is a literal quote; an unterminated quote closes at end of
// line. Every field is trimmed.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// ParseProducts parses raw feed text into catalog records. The first
// non-blank line is treated as a header and discarded without inspection;
// blank lines are skipped and do not advance row ids. It returns the
// retained records plus the count of data rows dropped by the record
// filter (empty name or no positive price).
func ParseProducts(raw string) ([]types.Product, int) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil, 0
	}

	now := time.Now()
	var products []types.Product
	dropped := 0
	for i, line := range lines[1:] {
		product := buildRecord(line, i+1, now)
		if product == nil {
			dropped++
			continue
		}
		products = append(products, *product)
	}
	return products, dropped
}

func buildRecord(line string, row int, ingestedAt time.Time) *types.Product {
	fields := splitLine(line)
	at := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	name := at(0)
	screenSize := at(1)
	prices := types.PriceQuote{
		JBHiFi:       CleanPrice(at(2)),
		GoodGuys:     CleanPrice(at(3)),
		HarveyNorman: CleanPrice(at(4)),
	}

	if name == "" || !prices.HasPositive() {
		return nil
	}

	allSpecs := at(7)
	specs := ""
	if screenSize != "" {
		specs = screenSize + " Screen"
	} else {
		specs = truncateRunes(allSpecs, specPreviewRunes)
	}

	return &types.Product{
		ID:          idPrefix + strconv.Itoa(row),
		Name:        name,
		ScreenSize:  screenSize,
		Image:       PlaceholderImage,
		Images:      []string{PlaceholderImage},
		Category:    enums.ProductCategoryTV,
		Brand:       feedBrand,
		Prices:      prices,
		ProductURL:  at(5),
		Description: at(6),
		AllSpecs:    allSpecs,
		Dimensions:  at(8),
		Specs:       specs,
		LastUpdated: ingestedAt,
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
