package flexvec

import (
	"fmt"

	"github.com/pavanmanishd/flexvec/internal/conv"
)

// block is a capacity block: a run of slots owned by exactly one
// container. Slots outside the owner's data region hold zero values and
// are treated as uninitialized.
//
// Dynamic blocks are acquired and released explicitly. Embedded blocks
// are created with the container and live as long as it does.
type block[T any] struct {
	slots    []T
	embedded bool
}

// newEmbedded returns the in-object block of a container.
func newEmbedded[T any](n int) block[T] {
	return block[T]{slots: make([]T, n), embedded: true}
}

// acquire allocates a dynamic block of exactly n slots.
func acquire[T any](n, limit int) (b block[T], err error) {
	if n < 0 || n > limit {
		return block[T]{}, lengthExceeded(n, limit)
	}
	if n == 0 {
		return block[T]{}, nil
	}
	if !conv.MulFits(n, int(sizeOf[T]()), maxAllocBytes) {
		return block[T]{}, allocationFailure("%d slots of %d bytes exceed the address space", n, sizeOf[T]())
	}
	defer func() {
		// makeslice panics with a runtime error when the request cannot
		// be satisfied; surface it as an allocation failure.
		if r := recover(); r != nil {
			b = block[T]{}
			err = allocationFailure("acquire %d slots: %v", n, r)
		}
	}()
	return block[T]{slots: make([]T, n)}, nil
}

// release returns a dynamic block to the runtime. Releasing an empty or
// embedded block is a no-op. The caller must have destroyed every live
// element first.
func (b *block[T]) release() {
	if b.embedded {
		return
	}
	b.slots = nil
}

// take transfers ownership of a dynamic block, leaving b empty.
func (b *block[T]) take() block[T] {
	if b.embedded {
		panic("flexvec: embedded block cannot change owner")
	}
	out := *b
	*b = block[T]{}
	return out
}

func (b *block[T]) live() bool {
	return b.slots != nil
}

func (b *block[T]) capacity() int {
	return len(b.slots)
}

func (b block[T]) String() string {
	kind := "dynamic"
	if b.embedded {
		kind = "embedded"
	}
	return fmt.Sprintf("block{%s, cap: %d}", kind, len(b.slots))
}
