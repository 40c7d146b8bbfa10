// Package metrics counts what a scrape run did and writes the counters as
// a node_exporter textfile, so cron-driven runs can be monitored.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rotisserie/eris"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// Recorder holds the run's metrics in its own registry. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Summary
	cacheLookups  *prometheus.CounterVec
	pages         *prometheus.CounterVec
	failures      *prometheus.CounterVec
	lastSuccess   prometheus.Gauge
}

// New creates a Recorder with every metric registered.
func New() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	r.fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "senat",
		Name:      "fetches_total",
		Help:      "Requests sent to the Senate website by method and outcome",
	}, []string{"method", "outcome"})
	r.fetchDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "senat",
		Name:      "fetch_duration_seconds",
		Help:      "Time spent on requests to the Senate website",
	})
	r.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "senat",
		Name:      "cache_lookups_total",
		Help:      "Page cache lookups by result",
	}, []string{"result"})
	r.pages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "senat",
		Name:      "pages_collected_total",
		Help:      "Pages walked by paginated collectors",
	}, []string{"resource"})
	r.failures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "senat",
		Name:      "entity_failures_total",
		Help:      "Entities that could not be built, by error kind",
	}, []string{"kind"})
	r.lastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "senat",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the last run that finished without error",
	})

	r.registry.MustRegister(
		r.fetches, r.fetchDuration, r.cacheLookups,
		r.pages, r.failures, r.lastSuccess,
	)
	return r
}

// ObserveFetch implements fetcher.Observer.
func (r *Recorder) ObserveFetch(method, _ string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var te *scrapeerr.TransportError
		if errors.As(err, &te) && te.Transient() {
			outcome = "transient_error"
		}
	}
	r.fetches.WithLabelValues(method, outcome).Inc()
	r.fetchDuration.Observe(elapsed.Seconds())
}

// ObserveCache implements fetcher.Observer.
func (r *Recorder) ObserveCache(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// ObservePage counts one page of a paginated resource.
func (r *Recorder) ObservePage(resource string) {
	if r == nil {
		return
	}
	r.pages.WithLabelValues(resource).Inc()
}

// ObserveFailure counts an entity dropped in continue-on-error mode.
func (r *Recorder) ObserveFailure(err error) {
	if r == nil || err == nil {
		return
	}
	r.failures.WithLabelValues(string(scrapeerr.KindOf(err))).Inc()
}

// MarkSuccess stamps the end of a successful run.
func (r *Recorder) MarkSuccess(at time.Time) {
	if r == nil {
		return
	}
	r.lastSuccess.Set(float64(at.Unix()))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return eris.Wrapf(prometheus.WriteToTextfile(path, r.registry), "metrics: write %s", path)
}
