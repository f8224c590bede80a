package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pricepulse-au/pricepulse-backend/internal/feed"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
	"github.com/pricepulse-au/pricepulse-backend/pkg/metrics"
	"github.com/pricepulse-au/pricepulse-backend/pkg/types"
)

// Provider owns one catalog of product records. The record set is immutable
// once Load completes; all accessors hand out the same underlying slice and
// callers must not mutate it.
type Provider interface {
	// Load resolves the catalog, triggering ingestion on first use.
	// Ingestion failure degrades to an empty catalog, never an error.
	Load(ctx context.Context) []types.Product
	// GetAll returns the loaded catalog, empty before the first Load completes.
	GetAll() []types.Product
	// GetByID returns the record with the given id, or false on a miss.
	GetByID(id string) (*types.Product, bool)
	// Name identifies the catalog source in logs and metrics.
	Name() string
}

// FixtureProvider serves the built-in showcase catalog. It is fully loaded
// at construction time.
type FixtureProvider struct {
	products []types.Product
}

// NewFixtureProvider builds the fixture-backed catalog.
func NewFixtureProvider() *FixtureProvider {
	return &FixtureProvider{products: fixtureProducts(time.Now())}
}

func (p *FixtureProvider) Load(_ context.Context) []types.Product {
	return p.products
}

func (p *FixtureProvider) GetAll() []types.Product {
	return p.products
}

func (p *FixtureProvider) GetByID(id string) (*types.Product, bool) {
	return findByID(p.products, id)
}

func (p *FixtureProvider) Name() string {
	return "fixture"
}

// FeedProvider serves the catalog parsed from the external price feed. The
// first Load performs the fetch-and-parse; concurrent callers share that
// single in-flight load and all observe the identical resulting catalog.
type FeedProvider struct {
	source feed.Source
	logg   *logger.Logger
	feedM  *metrics.FeedMetrics

	flight singleflight.Group

	mu       sync.RWMutex
	loaded   bool
	products []types.Product
}

// NewFeedProvider builds a feed-backed catalog provider.
func NewFeedProvider(source feed.Source, logg *logger.Logger, feedM *metrics.FeedMetrics) (*FeedProvider, error) {
	if source == nil {
		return nil, fmt.Errorf("feed source required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &FeedProvider{
		source: source,
		logg:   logg,
		feedM:  feedM,
	}, nil
}

func (p *FeedProvider) Name() string {
	return "feed"
}

func (p *FeedProvider) Load(ctx context.Context) []types.Product {
	p.mu.RLock()
	if p.loaded {
		products := p.products
		p.mu.RUnlock()
		return products
	}
	p.mu.RUnlock()

	result, _, _ := p.flight.Do("load", func() (any, error) {
		return p.doLoad(ctx), nil
	})
	return result.([]types.Product)
}

func (p *FeedProvider) doLoad(ctx context.Context) []types.Product {
	// A caller that raced past the fast path after a completed flight must
	// not trigger a second fetch.
	p.mu.RLock()
	if p.loaded {
		products := p.products
		p.mu.RUnlock()
		return products
	}
	p.mu.RUnlock()

	start := time.Now()
	ctx = p.logg.WithCatalog(ctx, p.Name())

	raw, err := p.source.Fetch(ctx)
	if err != nil {
		ctx = p.logg.WithField(ctx, "fallback", "empty_catalog")
		p.logg.Error(ctx, "feed fetch failed", err)
		p.feedM.IncLoadFailure(p.Name())
		return p.store(nil)
	}

	products, droppedRows := feed.ParseProducts(raw)
	p.feedM.AddRowsParsed(p.Name(), len(products))
	p.feedM.AddRowsDropped(p.Name(), droppedRows)
	p.feedM.IncLoadSuccess(p.Name())
	p.feedM.ObserveLoadDuration(p.Name(), time.Since(start))

	ctx = p.logg.WithFields(ctx, map[string]any{
		"records":      len(products),
		"dropped_rows": droppedRows,
		"duration_ms":  time.Since(start).Milliseconds(),
	})
	p.logg.Info(ctx, "catalog loaded")

	return p.store(products)
}

func (p *FeedProvider) store(products []types.Product) []types.Product {
	if products == nil {
		products = []types.Product{}
	}
	p.mu.Lock()
	p.products = products
	p.loaded = true
	p.mu.Unlock()
	return products
}

func (p *FeedProvider) GetAll() []types.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.loaded {
		return []types.Product{}
	}
	return p.products
}

func (p *FeedProvider) GetByID(id string) (*types.Product, bool) {
	return findByID(p.GetAll(), id)
}

func findByID(products []types.Product, id string) (*types.Product, bool) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], true
		}
	}
	return nil, false
}
