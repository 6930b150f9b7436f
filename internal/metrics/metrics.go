// Package metrics defines the Prometheus collectors shared by the address
// book shell and the payments worker. A nil *Metrics is valid and records
// nothing, so callers that run without a registry need no special casing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "addressbook"

// Outcomes recorded for executed commands.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Results recorded for consumed payment events.
const (
	EventAppended  = "appended"
	EventDuplicate = "duplicate"
	EventFailed    = "failed"
	EventInvalid   = "invalid"
)

type Metrics struct {
	CommandsTotal        *prometheus.CounterVec
	MonthsMarkedTotal    prometheus.Counter
	PublishFailuresTotal prometheus.Counter
	EventsProcessedTotal *prometheus.CounterVec
	LedgerRowsTotal      prometheus.Counter
	LedgerAppendSeconds  prometheus.Histogram

	reg prometheus.Registerer
}

// New registers every collector on reg. Registering twice on the same
// registry panics, as with any promauto collector.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		CommandsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands executed, by command word and outcome.",
		}, []string{"command", "outcome"}),
		MonthsMarkedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "months_marked_total",
			Help:      "Paid months recorded through markpaid.",
		}),
		PublishFailuresTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_publish_failures_total",
			Help:      "Payment events that could not be published to the broker.",
		}),
		EventsProcessedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_events_processed_total",
			Help:      "Payment events consumed by the worker, by result.",
		}, []string{"result"}),
		LedgerRowsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_rows_appended_total",
			Help:      "Rows appended to the payment ledger.",
		}),
		LedgerAppendSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_append_duration_seconds",
			Help:      "Latency of ledger append calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveCommand(word, outcome string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(word, outcome).Inc()
}

func (m *Metrics) AddMonthsMarked(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.MonthsMarkedTotal.Add(float64(n))
}

func (m *Metrics) IncPublishFailure() {
	if m == nil {
		return
	}
	m.PublishFailuresTotal.Inc()
}

func (m *Metrics) ObserveEvent(result string) {
	if m == nil {
		return
	}
	m.EventsProcessedTotal.WithLabelValues(result).Inc()
}

// ObserveLedgerAppend records one append call that wrote rows rows.
func (m *Metrics) ObserveLedgerAppend(rows int, took time.Duration) {
	if m == nil {
		return
	}
	m.LedgerAppendSeconds.Observe(took.Seconds())
	m.LedgerRowsTotal.Add(float64(rows))
}

// TrackSize exposes the current value of size as a gauge, e.g. the number
// of event ids held by the dedupe cache.
func (m *Metrics) TrackSize(name, help string, size func() int) {
	if m == nil {
		return
	}
	promauto.With(m.reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, func() float64 { return float64(size()) })
}
