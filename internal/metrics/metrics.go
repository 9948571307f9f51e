package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	EntriesReceived   Counter
	Flushes           Counter
	StreamConnections Counter

	HTTPRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := newCounter(name, help, labels)
	prometheus.MustRegister(c.counter)
	return c
}

func newCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		EntriesReceived: NewPrometheusCounter(
			"log_entries_received_total",
			"Number of log lines received from node streams",
			[]string{"level"},
		),
		Flushes: NewPrometheusCounter(
			"log_flushes_total",
			"Number of batch flushes into viewer storage",
			[]string{"status"},
		),
		StreamConnections: NewPrometheusCounter(
			"log_stream_connections_total",
			"Node log stream connection outcomes",
			[]string{"status"},
		),
		HTTPRequests: NewPrometheusCounter(
			"http_requests_total",
			"Number of viewer API requests",
			[]string{"method", "status"},
		),
	}
}

// NewTestCounters registers on a private registry so tests can build as many
// counter sets as they need.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	entries := newCounter("log_entries_received_total", "Number of log lines received from node streams", []string{"level"})
	flushes := newCounter("log_flushes_total", "Number of batch flushes into viewer storage", []string{"status"})
	connections := newCounter("log_stream_connections_total", "Node log stream connection outcomes", []string{"status"})
	requests := newCounter("http_requests_total", "Number of viewer API requests", []string{"method", "status"})

	reg.MustRegister(entries.counter, flushes.counter, connections.counter, requests.counter)

	return &Counters{
		EntriesReceived:   entries,
		Flushes:           flushes,
		StreamConnections: connections,
		HTTPRequests:      requests,
	}
}
