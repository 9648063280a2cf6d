package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry API.
// Tracks request counts/latency and bulk transfer volume.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ImportedRows     prometheus.Counter
	ImportFailures   prometheus.Counter
	ExportedRows     prometheus.Counter
	ReferenceFailure *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reurb_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reurb_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		ImportedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "reurb_imported_registrations_total",
			Help: "Total number of registrations created by spreadsheet imports",
		}),
		ImportFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "reurb_import_failures_total",
			Help: "Total number of spreadsheet imports rolled back",
		}),
		ExportedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "reurb_exported_registrations_total",
			Help: "Total number of registrations written to spreadsheet exports",
		}),
		ReferenceFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reurb_reference_table_load_failures_total",
			Help: "Reference tables that could not be loaded for a valuation listing",
		}, []string{"table"}),
	}
}

// ObserveRequest records one finished HTTP request.
// Call with time.Now() at the start of the request. All methods are no-ops
// on a nil *Metrics.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddImported(n int) {
	if m == nil {
		return
	}
	m.ImportedRows.Add(float64(n))
}

func (m *Metrics) IncrementImportFailures() {
	if m == nil {
		return
	}
	m.ImportFailures.Inc()
}

func (m *Metrics) AddExported(n int) {
	if m == nil {
		return
	}
	m.ExportedRows.Add(float64(n))
}

func (m *Metrics) IncrementReferenceFailure(table string) {
	if m == nil {
		return
	}
	m.ReferenceFailure.WithLabelValues(table).Inc()
}
