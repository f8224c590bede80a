package catalog

import (
	"time"

	"github.com/pricepulse-au/pricepulse-backend/pkg/enums"
	"github.com/pricepulse-au/pricepulse-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Fixture-sourced records are trusted as-is: unlike the feed path, there is
// no drop filter on name or prices.
func fixtureProducts(now time.Time) []types.Product {
	return []types.Product{
		{
			ID:       "1",
			Name:     `Samsung 65" QLED 4K Smart TV`,
			Image:    "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=800&q=80", 3),
			Category: enums.ProductCategoryTV,
			Brand:    "Samsung",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(1899),
				GoodGuys:     decimal.NewFromInt(1849),
				HarveyNorman: decimal.NewFromInt(1995),
			},
			RRP:         rrp(2299),
			Specs:       "Quantum Processor 4K, HDR10+, 120Hz",
			LastUpdated: now,
		},
		{
			ID:       "2",
			Name:     "Apple AirPods Pro (2nd Gen)",
			Image:    "https://images.unsplash.com/photo-1606841837239-c5a1a4a07af7?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1606841837239-c5a1a4a07af7?w=800&q=80", 2),
			Category: enums.ProductCategoryHeadphones,
			Brand:    "Apple",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(399),
				GoodGuys:     decimal.NewFromInt(379),
				HarveyNorman: decimal.NewFromInt(399),
			},
			RRP:         rrp(449),
			Specs:       "Active Noise Cancellation, Spatial Audio",
			LastUpdated: now,
		},
		{
			ID:       "3",
			Name:     `MacBook Air M2 13" 256GB`,
			Image:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=800&q=80", 2),
			Category: enums.ProductCategoryLaptop,
			Brand:    "Apple",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(1799),
				GoodGuys:     decimal.NewFromInt(1749),
				HarveyNorman: decimal.NewFromInt(1849),
			},
			RRP:         rrp(1999),
			Specs:       "M2 chip, 8GB RAM, Midnight",
			LastUpdated: now,
		},
		{
			ID:       "4",
			Name:     "Sony WH-1000XM5 Wireless Headphones",
			Image:    "https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=800&q=80", 2),
			Category: enums.ProductCategoryHeadphones,
			Brand:    "Sony",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(549),
				GoodGuys:     decimal.NewFromInt(499),
				HarveyNorman: decimal.NewFromInt(549),
			},
			RRP:         rrp(599),
			Specs:       "Industry-leading noise cancellation, 30hr battery",
			LastUpdated: now,
		},
		{
			ID:       "5",
			Name:     `LG 55" OLED C3 4K Smart TV`,
			Image:    "https://images.unsplash.com/photo-1593784991095-a205069470b6?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1593784991095-a205069470b6?w=800&q=80", 2),
			Category: enums.ProductCategoryTV,
			Brand:    "LG",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(2499),
				GoodGuys:     decimal.NewFromInt(2399),
				HarveyNorman: decimal.NewFromInt(2549),
			},
			RRP:         rrp(2799),
			Specs:       "OLED evo, a9 Gen6 AI Processor, 120Hz",
			LastUpdated: now,
		},
		{
			ID:       "6",
			Name:     "Dell XPS 15 Laptop",
			Image:    "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=800&q=80", 2),
			Category: enums.ProductCategoryLaptop,
			Brand:    "Dell",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(2899),
				GoodGuys:     decimal.NewFromInt(2799),
				HarveyNorman: decimal.NewFromInt(2949),
			},
			RRP:         rrp(3199),
			Specs:       "Intel i7, 16GB RAM, 512GB SSD, RTX 3050",
			LastUpdated: now,
		},
		{
			ID:       "7",
			Name:     "PlayStation 5 Console",
			Image:    "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=800&q=80", 2),
			Category: enums.ProductCategoryGaming,
			Brand:    "Sony",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(799),
				GoodGuys:     decimal.NewFromInt(799),
				HarveyNorman: decimal.NewFromInt(799),
			},
			RRP:         rrp(799),
			Specs:       "Disc Edition, 825GB SSD",
			LastUpdated: now,
		},
		{
			ID:       "8",
			Name:     "Dyson V15 Detect Vacuum",
			Image:    "https://images.unsplash.com/photo-1558317374-067fb5f30001?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1558317374-067fb5f30001?w=800&q=80", 2),
			Category: enums.ProductCategoryAppliances,
			Brand:    "Dyson",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(1299),
				GoodGuys:     decimal.NewFromInt(1199),
				HarveyNorman: decimal.NewFromInt(1349),
			},
			RRP:         rrp(1499),
			Specs:       "Laser detection, 60min runtime",
			LastUpdated: now,
		},
		{
			ID:       "9",
			Name:     "Bose QuietComfort 45",
			Image:    "https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80", 2),
			Category: enums.ProductCategoryHeadphones,
			Brand:    "Bose",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(499),
				GoodGuys:     decimal.NewFromInt(449),
				HarveyNorman: decimal.NewFromInt(499),
			},
			RRP:         rrp(549),
			Specs:       "Noise cancelling, 24hr battery",
			LastUpdated: now,
		},
		{
			ID:       "10",
			Name:     `Samsung 43" 4K Smart TV`,
			Image:    "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=800&q=80", 2),
			Category: enums.ProductCategoryTV,
			Brand:    "Samsung",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(699),
				GoodGuys:     decimal.NewFromInt(649),
				HarveyNorman: decimal.NewFromInt(749),
			},
			RRP:         rrp(899),
			Specs:       "Crystal UHD, HDR, Smart Hub",
			LastUpdated: now,
		},
		{
			ID:       "11",
			Name:     `HP Pavilion 15.6" Laptop`,
			Image:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=800&q=80", 2),
			Category: enums.ProductCategoryLaptop,
			Brand:    "HP",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(1299),
				GoodGuys:     decimal.NewFromInt(1199),
				HarveyNorman: decimal.NewFromInt(1349),
			},
			RRP:         rrp(1499),
			Specs:       "Intel i5, 8GB RAM, 512GB SSD",
			LastUpdated: now,
		},
		{
			ID:       "12",
			Name:     "Breville Barista Express",
			Image:    "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=800&q=80",
			Images:   imageSet("https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=800&q=80", 2),
			Category: enums.ProductCategoryAppliances,
			Brand:    "Breville",
			Prices: types.PriceQuote{
				JBHiFi:       decimal.NewFromInt(899),
				GoodGuys:     decimal.NewFromInt(849),
				HarveyNorman: decimal.NewFromInt(949),
			},
			RRP:         rrp(1099),
			Specs:       "Built-in grinder, 15 bar pressure",
			LastUpdated: now,
		},
	}
}

func rrp(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}

func imageSet(url string, count int) []string {
	images := make([]string, count)
	for i := range images {
		images[i] = url
	}
	return images
}
