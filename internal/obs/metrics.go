package obs

import (
	"sort"
	"strings"
	"sync"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system, and must
// be safe for concurrent use.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// TestMeter accumulates measurements in memory so tests can assert
// on what the server emitted.
type TestMeter struct {
	mu         sync.Mutex
	counters   map[string]float64
	histograms map[string][]float64
}

func (m *TestMeter) Counter(name string, value float64, labels ...Label) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counters == nil {
		m.counters = make(map[string]float64)
	}
	m.counters[seriesKey(name, labels)] += value
}

func (m *TestMeter) Histogram(name string, value float64, labels ...Label) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.histograms == nil {
		m.histograms = make(map[string][]float64)
	}
	k := seriesKey(name, labels)
	m.histograms[k] = append(m.histograms[k], value)
}

// CounterValue returns the accumulated counter for the exact name
// and label set, or 0 if it was never emitted.
func (m *TestMeter) CounterValue(name string, labels ...Label) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[seriesKey(name, labels)]
}

// HistogramCount returns how many observations a histogram received.
func (m *TestMeter) HistogramCount(name string, labels ...Label) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.histograms[seriesKey(name, labels)])
}

// seriesKey identifies one series regardless of label order.
func seriesKey(name string, labels []Label) string {
	if len(labels) == 0 {
		return name
	}
	ls := make([]string, 0, len(labels))
	for _, l := range labels {
		ls = append(ls, l.Key+"="+l.Value)
	}
	sort.Strings(ls)
	return name + "{" + strings.Join(ls, ",") + "}"
}
