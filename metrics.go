package flexvec

import "fmt"

// Metrics contains statistical information about a container.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Slots in the active block
	FrontGap      int     // Free slots before the run
	BackGap       int     // Free slots after the run
	Dynamic       bool    // Whether a dynamic block is held
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
	Reallocations uint64  // Blocks replaced (growth, shrink, promotion, demotion)
	Recenters     uint64  // Middle-placement recenters
	Shifts        uint64  // In-block run relocations
	Teardowns     uint64  // Failed operations that emptied the container
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the container has no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.s.capacity()
	if c == 0 {
		return 0
	}
	return float64(v.s.size()) / float64(c)
}

// Metrics returns a snapshot of container statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.s.size(),
		Capacity:      v.s.capacity(),
		FrontGap:      v.s.frontGap(),
		BackGap:       v.s.backGap(),
		Dynamic:       v.s.isDynamic(),
		Utilization:   v.Utilization(),
		Reallocations: v.s.stats.reallocations,
		Recenters:     v.s.stats.recenters,
		Shifts:        v.s.stats.shifts,
		Teardowns:     v.s.stats.teardowns,
	}
}

func (m Metrics) String() string {
	return fmt.Sprintf(
		"Metrics{size: %d, cap: %d, gaps: %d/%d, dynamic: %t, usage: %.1f%%, reallocs: %d, recenters: %d, shifts: %d, teardowns: %d}",
		m.Size, m.Capacity, m.FrontGap, m.BackGap, m.Dynamic, m.Utilization*100,
		m.Reallocations, m.Recenters, m.Shifts, m.Teardowns,
	)
}
