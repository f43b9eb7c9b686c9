package rvsdg

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional set of counters tracking a Context's construction
// activity: how many nodes were actually allocated, how many construction
// calls were satisfied by the interning table instead, and how many edges
// (input-port links) were made. A nil *Metrics is always a safe no-op —
// Context never requires one.
//
// Modeled on yesoreyeram-thaiyyal/backend/pkg/telemetry's pattern of an
// optionally-wired observability provider the hot path calls
// unconditionally; here the "hot path" is node construction and linkage
// rather than workflow-node execution.
type Metrics struct {
	NodesCreated  prometheus.Counter
	NodesInterned prometheus.Counter
	EdgesLinked   prometheus.Counter
}

// NewMetrics builds a Metrics with three counters registered against reg.
// Passing a nil reg (or discarding the returned Metrics) is fine: callers
// that don't want metrics simply never construct one and leave
// Config.Metrics nil.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		NodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rvsdg_nodes_created_total",
			Help:      "Number of nodes actually allocated (interning misses and when interning is disabled).",
		}),
		NodesInterned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rvsdg_nodes_interned_total",
			Help:      "Number of construction calls satisfied by the interning table instead of allocating.",
		}),
		EdgesLinked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rvsdg_edges_linked_total",
			Help:      "Number of input-port links made, via construction or ConnectPorts.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.NodesCreated, m.NodesInterned, m.EdgesLinked)
	}
	return m
}

func (m *Metrics) nodeCreated() {
	if m != nil && m.NodesCreated != nil {
		m.NodesCreated.Inc()
	}
}

func (m *Metrics) nodeInterned() {
	if m != nil && m.NodesInterned != nil {
		m.NodesInterned.Inc()
	}
}

func (m *Metrics) edgeLinked() {
	if m != nil && m.EdgesLinked != nil {
		m.EdgesLinked.Inc()
	}
}
