package backend

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"automates-desktop/internal/proc"
)

// Metrics counts backend lifecycle events. A nil *Metrics records nothing.
type Metrics struct {
	launches *prometheus.CounterVec
	probes   *prometheus.CounterVec
	kills    *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "launcher"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.launches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_launches_total",
			Help:      "Backend launch attempts by result",
		},
		[]string{"result"},
	)

	m.probes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_health_probes_total",
			Help:      "Readiness probes by result",
		},
		[]string{"result"},
	)

	m.kills = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_kills_total",
			Help:      "Shutdown kill attempts by result",
		},
		[]string{"result"},
	)

	m.registry.MustRegister(m.launches, m.probes, m.kills)
	return m
}

func (m *Metrics) recordLaunch(err error) {
	if m == nil {
		return
	}
	m.launches.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) recordProbe(ready bool) {
	if m == nil {
		return
	}
	r := "not_ready"
	if ready {
		r = "ready"
	}
	m.probes.WithLabelValues(r).Inc()
}

func (m *Metrics) recordKill(err error) {
	if m == nil {
		return
	}
	r := result(err)
	if errors.Is(err, proc.ErrNoChild) {
		r = "empty"
	}
	m.kills.WithLabelValues(r).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Summary maps "name{label=value}" to a counter value.
type Summary map[string]float64

// Summary gathers the current counter values.
func (m *Metrics) Summary() (Summary, error) {
	out := Summary{}
	if m == nil {
		return out, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			key := mf.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			out[key] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

func (s Summary) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(strconv.FormatFloat(s[k], 'f', -1, 64))
	}
	return b.String()
}
