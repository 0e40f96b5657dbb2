package flexvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/flexvec/internal/lifetime"
)

func mustConfig(t testing.TB, opts ...Option) Config {
	t.Helper()
	cfg, err := NewConfig(opts...)
	require.NoError(t, err)
	return cfg
}

func mustOf(t testing.TB, cfg Config, values ...int) *Vector[int] {
	t.Helper()
	v, err := Of(cfg, values...)
	require.NoError(t, err)
	return v
}

func contents(v *Vector[int]) []int {
	return slices.Clone(v.Data())
}

func objValues(v *Vector[lifetime.Obj]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x.Value)
	}
	return out
}

// checkLayout asserts the bookkeeping invariants every configuration
// maintains.
func checkLayout[T any](t testing.TB, v *Vector[T]) {
	t.Helper()
	b := v.Bounds()
	require.LessOrEqual(t, v.Len(), v.Cap(), "size exceeds capacity")
	require.GreaterOrEqual(t, b.DataBegin, 0)
	require.LessOrEqual(t, b.DataEnd, b.Capacity)
	require.Equal(t, b.Capacity, v.FrontGap()+v.Len()+v.BackGap(), "gaps do not add up")

	cfg := v.Config()
	switch cfg.Placement {
	case Front:
		require.Equal(t, 0, b.DataBegin, "front placement must start at 0")
	case Back:
		require.Equal(t, b.Capacity, b.DataEnd, "back placement must end at capacity")
	}
	switch cfg.Storage {
	case Embedded:
		require.Equal(t, cfg.Baseline, v.Cap())
		require.False(t, v.IsDynamic())
	case Fixed:
		require.LessOrEqual(t, v.Cap(), cfg.Baseline)
	case Buffered:
		require.GreaterOrEqual(t, v.Cap(), cfg.Baseline)
	}

	// Slots outside the run hold zero values.
	var zero T
	slots := v.s.block()
	for i := range slots {
		if i >= b.DataBegin && i < b.DataEnd {
			continue
		}
		require.Equal(t, zero, slots[i], "slot %d outside the run is not cleared", i)
	}
}

// checkTracker asserts the tracker saw no double destruction or use of
// dead elements, and that exactly live elements are alive.
func checkTracker(t testing.TB, tr *lifetime.Tracker, live int) {
	t.Helper()
	require.Zero(t, tr.Duplicates, "duplicate destruction: %s", tr)
	require.Zero(t, tr.Invalid, "use of dead element: %s", tr)
	require.Equal(t, live, tr.Live(), "live count: %s", tr)
}
