package prometheus

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bytepress/bytepress/internal/stats"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, m := range metrics {
		if m.GetName() != name {
			continue
		}
		if c := m.GetMetric()[0].GetCounter(); c != nil {
			return c.GetValue()
		}
		if g := m.GetMetric()[0].GetGauge(); g != nil {
			return g.GetValue()
		}
		if h := m.GetMetric()[0].GetHistogram(); h != nil {
			return float64(h.GetSampleCount())
		}
	}
	t.Fatalf("metric %q not found in registry", name)
	return 0
}

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter(stats.MetricCompressOps, 1)
	c.IncCounter(stats.MetricCompressOps, 2)

	if got := gatherValue(t, reg, stats.MetricCompressOps); got != 3 {
		t.Errorf("counter = %v, want 3", got)
	}
}

func TestCollector_GaugeAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge("bytepress_test_gauge", 42)
	if got := gatherValue(t, reg, "bytepress_test_gauge"); got != 42 {
		t.Errorf("gauge = %v, want 42", got)
	}

	c.ObserveHistogram(stats.MetricCompressionRatio, 2.5)
	c.ObserveHistogram(stats.MetricCompressionRatio, 3.5)
	if got := gatherValue(t, reg, stats.MetricCompressionRatio); got != 2 {
		t.Errorf("histogram sample count = %v, want 2", got)
	}
}

func TestCollector_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: stats.MetricErrors,
		Help: stats.MetricErrors,
	})
	reg.MustRegister(existing)
	existing.Add(100)

	// The collector must adopt the pre-registered metric, not panic.
	c := New(reg)
	c.IncCounter(stats.MetricErrors, 5)

	if got := gatherValue(t, reg, stats.MetricErrors); got != 105 {
		t.Errorf("counter = %v, want 105", got)
	}
}

func TestCollector_ConcurrentAccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IncCounter(stats.MetricBytesIn, 1)
			}
		}()
	}
	wg.Wait()

	if got := gatherValue(t, reg, stats.MetricBytesIn); got != 1000 {
		t.Errorf("counter = %v, want 1000", got)
	}
}
