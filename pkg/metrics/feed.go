package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FeedMetrics records catalog ingestion outcomes.
type FeedMetrics struct {
	duration    *prometheus.HistogramVec
	loadSuccess *prometheus.CounterVec
	loadFailure *prometheus.CounterVec
	rowsParsed  *prometheus.CounterVec
	rowsDropped *prometheus.CounterVec
}

// NewFeedMetrics registers the feed ingestion metrics on the provided registerer.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	if reg == nil {
		return &FeedMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Duration of catalog loads in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"catalog"})
	loadSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_load_success",
		Help: "Successful catalog loads.",
	}, []string{"catalog"})
	loadFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_load_failure",
		Help: "Catalog loads that fell back to an empty catalog.",
	}, []string{"catalog"})
	rowsParsed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_rows_parsed",
		Help: "Feed rows that produced a catalog record.",
	}, []string{"catalog"})
	rowsDropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_rows_dropped",
		Help: "Feed rows dropped by the record filter.",
	}, []string{"catalog"})
	reg.MustRegister(duration, loadSuccess, loadFailure, rowsParsed, rowsDropped)
	return &FeedMetrics{
		duration:    duration,
		loadSuccess: loadSuccess,
		loadFailure: loadFailure,
		rowsParsed:  rowsParsed,
		rowsDropped: rowsDropped,
	}
}

// ObserveLoadDuration records how long the named catalog took to load.
func (f *FeedMetrics) ObserveLoadDuration(catalog string, duration time.Duration) {
	if f == nil || f.duration == nil {
		return
	}
	f.duration.WithLabelValues(normalizeLabel(catalog)).Observe(duration.Seconds())
}

// IncLoadSuccess increments the success counter for the named catalog.
func (f *FeedMetrics) IncLoadSuccess(catalog string) {
	if f == nil || f.loadSuccess == nil {
		return
	}
	f.loadSuccess.WithLabelValues(normalizeLabel(catalog)).Inc()
}

// IncLoadFailure increments the failure counter for the named catalog.
func (f *FeedMetrics) IncLoadFailure(catalog string) {
	if f == nil || f.loadFailure == nil {
		return
	}
	f.loadFailure.WithLabelValues(normalizeLabel(catalog)).Inc()
}

// AddRowsParsed adds to the parsed-row counter for the named catalog.
func (f *FeedMetrics) AddRowsParsed(catalog string, n int) {
	if f == nil || f.rowsParsed == nil || n <= 0 {
		return
	}
	f.rowsParsed.WithLabelValues(normalizeLabel(catalog)).Add(float64(n))
}

// AddRowsDropped adds to the dropped-row counter for the named catalog.
func (f *FeedMetrics) AddRowsDropped(catalog string, n int) {
	if f == nil || f.rowsDropped == nil || n <= 0 {
		return
	}
	f.rowsDropped.WithLabelValues(normalizeLabel(catalog)).Add(float64(n))
}

func normalizeLabel(catalog string) string {
	if catalog == "" {
		return "unknown"
	}
	return catalog
}
