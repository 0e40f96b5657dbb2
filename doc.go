// Package flexvec implements a contiguous sequence container whose memory
// behaviour is chosen per container through a Config.
//
// # Overview
//
// A Vector keeps its elements in one contiguous run inside a capacity
// block. Three independent choices describe the container:
//
//   - Storage: where the block lives. Embedded keeps a fixed number of
//     slots inside the container, Fixed allocates a bounded block on
//     first use, Variable grows a dynamic block without bound, and
//     Buffered starts in an in-object buffer and spills to a dynamic
//     block when it overflows.
//   - Placement: where the run sits in the block. Front packs it at
//     offset 0, Back against the end, and Middle keeps free space on both
//     sides so either end can grow cheaply.
//   - Growth: how a dynamic block is enlarged. Linear adds a constant,
//     exponential multiplies by a factor, and the default grows by half.
//
// # Basic Usage
//
//	cfg, err := flexvec.NewConfig(
//		flexvec.WithPlacement(flexvec.Middle),
//		flexvec.WithBaseline(32),
//	)
//	if err != nil {
//		return err
//	}
//	v, err := flexvec.New[int](cfg)
//	if err != nil {
//		return err
//	}
//	_ = v.PushBack(1)
//	_ = v.PushFront(0)
//
// # Element Operations
//
// Plain Go values need nothing extra. Types that must observe their own
// construction and destruction install an Ops implementation with
// NewWithOps. Ops may fail; when a multi-element algorithm such as an
// insertion shift fails part way, every live element is destroyed and the
// container is left empty but usable. Reallocation copies instead of
// moving when moves may fail, so a failed growth leaves the container as
// it was.
//
// # Transfers
//
// CopyFrom, MoveFrom, CloneWith and Take work between containers of any
// two configurations. A destination that can own the source's dynamic
// block takes it (duplicating it for a copy) and realigns the run in one
// shift; otherwise the elements are rebuilt one by one in the
// destination's own capacity. A moved-from container is always empty.
//
// # Performance Characteristics
//
//   - Index access: O(1)
//   - Push at the growing end: O(1) amortized
//   - Push at either end with Middle placement: O(1) amortized
//   - Insert or erase in the interior: O(distance to the nearer movable end)
//   - Swap of two dynamic blocks: O(1)
//
// # Thread Safety
//
// A Vector is not safe for concurrent use.
//
// # Metrics and Monitoring
//
// Every Vector counts its structural events:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// Attach a Logger with WithLogger to receive reallocation, recentering and
// teardown events through log/slog.
package flexvec
