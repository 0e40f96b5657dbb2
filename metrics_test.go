package flexvec

import (
	"strings"
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v, err := New[int](mustConfig(t, WithBaseline(4)))
	if err != nil {
		t.Fatal(err)
	}

	// Initial state
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}
	m := v.Metrics()
	if m.Size != 0 || m.Capacity != 0 || m.Dynamic {
		t.Errorf("Initial Metrics = %s, want empty", m)
	}

	for i := range 5 {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}

	m = v.Metrics()
	if m.Size != 5 {
		t.Errorf("Metrics.Size = %d, want 5", m.Size)
	}
	if m.Capacity != 6 {
		t.Errorf("Metrics.Capacity = %d, want 6", m.Capacity)
	}
	if m.Reallocations != 2 {
		t.Errorf("Metrics.Reallocations = %d, want 2", m.Reallocations)
	}
	if m.FrontGap+m.Size+m.BackGap != m.Capacity {
		t.Errorf("gaps %d/%d do not add up to capacity %d", m.FrontGap, m.BackGap, m.Capacity)
	}
	if !m.Dynamic {
		t.Error("Metrics.Dynamic should be true after growth")
	}
	if m.Utilization != v.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", m.Utilization, v.Utilization())
	}
	if m.Teardowns != 0 {
		t.Errorf("Metrics.Teardowns = %d, want 0", m.Teardowns)
	}
}

func TestMetricsAfterFree(t *testing.T) {
	v := mustOf(t, DefaultConfig(), 1, 2, 3)
	v.Free()

	m := v.Metrics()
	if m.Size != 0 {
		t.Errorf("Size after Free = %d, want 0", m.Size)
	}
	if m.Capacity != 0 {
		t.Errorf("Capacity after Free = %d, want 0", m.Capacity)
	}
	if m.Utilization != 0 {
		t.Errorf("Utilization after Free = %f, want 0", m.Utilization)
	}
	// Counters survive
	if m.Reallocations == 0 {
		t.Error("Reallocations should not reset on Free")
	}
}

func TestUtilizationEdgeCases(t *testing.T) {
	full := mustOf(t, mustConfig(t, WithStorage(Embedded), WithBaseline(4)), 1, 2, 3, 4)
	if full.Utilization() != 1 {
		t.Errorf("Full vector Utilization = %f, want 1", full.Utilization())
	}

	half := mustOf(t, mustConfig(t, WithStorage(Embedded), WithBaseline(4)), 1, 2)
	if half.Utilization() != 0.5 {
		t.Errorf("Half vector Utilization = %f, want 0.5", half.Utilization())
	}
}

func TestMetricsString(t *testing.T) {
	v := mustOf(t, mustConfig(t, WithStorage(Embedded), WithBaseline(4), WithPlacement(Back)), 1)
	got := v.Metrics().String()
	for _, want := range []string{"size: 1", "cap: 4", "gaps: 3/0", "usage: 25.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Metrics.String() = %q, missing %q", got, want)
		}
	}
}

func BenchmarkMetrics(b *testing.B) {
	v := mustOf(b, DefaultConfig(), 1, 2, 3)

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Metrics()
		}
	})

	b.Run("Utilization", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Utilization()
		}
	})
}
