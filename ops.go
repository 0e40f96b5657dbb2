package flexvec

// Ops describes how a container constructs, relocates and destroys its
// elements. Containers built without Ops treat T as plain data: copies
// and moves are assignments, destruction zeroes the slot, and nothing
// can fail.
//
// Construct operations write into a slot that holds no live element.
// Assign operations overwrite a live element. Destroy ends the lifetime
// of a live element; the container zeroes the slot afterwards.
//
// A construct that fails must leave dst without a live element. An assign
// that fails leaves dst live.
type Ops[T any] interface {
	Copy(dst, src *T) error
	Move(dst, src *T) error
	CopyAssign(dst, src *T) error
	MoveAssign(dst, src *T) error
	Destroy(p *T)
	// MoveIsSafe reports whether Move and MoveAssign never fail. When it
	// returns false, relocating algorithms copy instead of moving so a
	// failure leaves the source intact.
	MoveIsSafe() bool
}

// lifecycle dispatches element operations, taking a plain-value fast
// path when no Ops is installed.
type lifecycle[T any] struct {
	ops Ops[T]
}

func (l lifecycle[T]) copyConstruct(dst, src *T) error {
	if l.ops == nil {
		*dst = *src
		return nil
	}
	return l.ops.Copy(dst, src)
}

func (l lifecycle[T]) moveConstruct(dst, src *T) error {
	if l.ops == nil {
		*dst = *src
		return nil
	}
	return l.ops.Move(dst, src)
}

func (l lifecycle[T]) copyAssign(dst, src *T) error {
	if l.ops == nil {
		*dst = *src
		return nil
	}
	return l.ops.CopyAssign(dst, src)
}

func (l lifecycle[T]) moveAssign(dst, src *T) error {
	if l.ops == nil {
		*dst = *src
		return nil
	}
	return l.ops.MoveAssign(dst, src)
}

func (l lifecycle[T]) destroy(p *T) {
	if l.ops != nil {
		l.ops.Destroy(p)
	}
	var zero T
	*p = zero
}

func (l lifecycle[T]) destroyRange(slots []T) {
	if l.ops == nil {
		clear(slots)
		return
	}
	for i := range slots {
		l.destroy(&slots[i])
	}
}

// discard ends the lifetime of values the container took ownership of
// but never stored. Plain values are left as they are.
func (l lifecycle[T]) discard(values []T) {
	if l.ops == nil {
		return
	}
	l.destroyRange(values)
}

// relocator is the pair of operations a relocating algorithm uses. It is
// chosen once per algorithm from MoveIsSafe.
type relocator[T any] struct {
	construct func(dst, src *T) error
	assign    func(dst, src *T) error
	moving    bool
}

func (l lifecycle[T]) relocator() relocator[T] {
	if l.ops == nil || l.ops.MoveIsSafe() {
		return relocator[T]{construct: l.moveConstruct, assign: l.moveAssign, moving: true}
	}
	return relocator[T]{construct: l.copyConstruct, assign: l.copyAssign}
}

// adopt moves an owned value into the empty slot dst and ends the
// temporary's lifetime. On failure the temporary is destroyed too.
func (l lifecycle[T]) adopt(dst, tmp *T) error {
	if l.ops == nil {
		*dst = *tmp
		return nil
	}
	var err error
	if l.ops.MoveIsSafe() {
		err = l.ops.Move(dst, tmp)
	} else {
		err = l.ops.Copy(dst, tmp)
	}
	l.destroy(tmp)
	return err
}
