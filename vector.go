package flexvec

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"
)

// Vector is a contiguous sequence whose storage, placement and growth are
// fixed by its Config. Not goroutine-safe: a Vector is a single-owner
// value and callers must synchronize shared use.
//
// Functions that accept element values take ownership of them. On
// success the value lives in the vector; on failure it is destroyed.
type Vector[T any] struct {
	s storage[T]
}

// Bounds describes where the live run sits inside the capacity block.
type Bounds struct {
	DataBegin int
	DataEnd   int
	Capacity  int
}

// New creates an empty Vector for plain values.
func New[T any](cfg Config) (*Vector[T], error) {
	return NewWithOps[T](cfg, nil)
}

// NewWithOps creates an empty Vector whose elements are managed by ops.
// A nil ops treats T as plain data.
func NewWithOps[T any](cfg Config, ops Ops[T]) (*Vector[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Vector[T]{s: newStorage[T](cfg, ops)}, nil
}

// Of creates a Vector holding values.
func Of[T any](cfg Config, values ...T) (*Vector[T], error) {
	return OfWithOps[T](cfg, nil, values...)
}

// OfWithOps creates a Vector managed by ops holding values. On failure
// every value has been destroyed.
func OfWithOps[T any](cfg Config, ops Ops[T], values ...T) (*Vector[T], error) {
	v, err := NewWithOps[T](cfg, ops)
	if err != nil {
		return nil, err
	}
	if err := v.Append(values...); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

// Config returns the vector's configuration.
func (v *Vector[T]) Config() Config { return v.s.cfg }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.s.size() }

// Cap returns the number of slots in the active capacity block.
func (v *Vector[T]) Cap() int { return v.s.capacity() }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.s.size() == 0 }

// IsDynamic reports whether the vector currently owns a dynamic block.
func (v *Vector[T]) IsDynamic() bool { return v.s.isDynamic() }

// MaxSize returns the largest length the vector's configuration allows.
func (v *Vector[T]) MaxSize() int { return v.s.limit }

// FrontGap returns the number of free slots before the first element.
func (v *Vector[T]) FrontGap() int { return v.s.frontGap() }

// BackGap returns the number of free slots after the last element.
func (v *Vector[T]) BackGap() int { return v.s.backGap() }

// Bounds returns the live run's offsets within the capacity block.
func (v *Vector[T]) Bounds() Bounds {
	return Bounds{DataBegin: v.s.begin, DataEnd: v.s.end, Capacity: v.s.capacity()}
}

// At returns the element at index i without checking it against Len.
func (v *Vector[T]) At(i int) T {
	return v.s.block()[v.s.begin+i]
}

// Ref returns a pointer to the element at index i without checking it
// against Len. The pointer is valid until the next mutation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.s.block()[v.s.begin+i]
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.s.size() {
		var zero T
		return zero, indexOutOfRange(i, v.s.size())
	}
	return v.At(i), nil
}

// Set assigns val to the element at index i.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.s.size() {
		v.s.life.destroy(&val)
		return indexOutOfRange(i, v.s.size())
	}
	err := v.s.life.moveAssign(v.Ref(i), &val)
	v.s.life.destroy(&val)
	if err != nil {
		return elementFailure(err, "set")
	}
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) { return v.Get(0) }

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) { return v.Get(v.s.size() - 1) }

// Data returns the live elements as a slice backed by the vector's
// block. It is valid until the next mutation.
func (v *Vector[T]) Data() []T {
	return v.s.block()[v.s.begin:v.s.end:v.s.end]
}

// PushBack appends val.
func (v *Vector[T]) PushBack(val T) error {
	if err := v.s.ensureRoom(); err != nil {
		v.s.life.destroy(&val)
		return err
	}
	return v.s.addBack(&val)
}

// PushFront prepends val.
func (v *Vector[T]) PushFront(val T) error {
	if err := v.s.ensureRoom(); err != nil {
		v.s.life.destroy(&val)
		return err
	}
	return v.s.addFront(&val)
}

// EmplaceBack appends the value built by ctor. If ctor fails the vector
// is left unchanged.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) error {
	return v.InsertFunc(v.s.size(), ctor)
}

// EmplaceFront prepends the value built by ctor. If ctor fails the vector
// is left unchanged.
func (v *Vector[T]) EmplaceFront(ctor func() (T, error)) error {
	return v.InsertFunc(0, ctor)
}

// Insert places val before the element at index i. i may equal Len.
func (v *Vector[T]) Insert(i int, val T) error {
	if i < 0 || i > v.s.size() {
		v.s.life.destroy(&val)
		return indexOutOfRange(i, v.s.size())
	}
	if err := v.s.ensureRoom(); err != nil {
		v.s.life.destroy(&val)
		return err
	}
	return v.s.addAt(v.s.begin+i, &val)
}

// InsertFunc places the value built by ctor before index i. ctor runs
// before any element moves.
func (v *Vector[T]) InsertFunc(i int, ctor func() (T, error)) error {
	if i < 0 || i > v.s.size() {
		return indexOutOfRange(i, v.s.size())
	}
	val, err := ctor()
	if err != nil {
		return elementFailure(err, "construct")
	}
	return v.Insert(i, val)
}

// Append adds values at the back, growing at most once.
func (v *Vector[T]) Append(values ...T) error {
	used, err := v.s.appendN(len(values), func(i int, dst *T) error {
		return v.s.life.adopt(dst, &values[i])
	})
	if err != nil {
		v.s.life.discard(values[used:])
	}
	return err
}

// Erase removes the element at index i.
func (v *Vector[T]) Erase(i int) error {
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [i, j).
func (v *Vector[T]) EraseRange(i, j int) error {
	if i < 0 || j > v.s.size() || i > j {
		return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d), size %d", i, j, v.s.size())
	}
	return v.s.erase(v.s.begin+i, v.s.begin+j)
}

// PopFront removes the first element.
func (v *Vector[T]) PopFront() error {
	if v.s.size() == 0 {
		return indexOutOfRange(0, 0)
	}
	return v.s.popFront()
}

// PopBack removes the last element.
func (v *Vector[T]) PopBack() error {
	if v.s.size() == 0 {
		return indexOutOfRange(0, 0)
	}
	return v.s.popBack()
}

// Resize grows or shrinks the vector to n elements. New elements are
// copies of fill.
func (v *Vector[T]) Resize(n int, fill T) error {
	defer v.s.life.destroy(&fill)
	size := v.s.size()
	switch {
	case n < 0 || n > v.s.limit:
		return lengthExceeded(n, v.s.limit)
	case n < size:
		return v.s.erase(v.s.begin+n, v.s.end)
	case n > size:
		_, err := v.s.appendN(n-size, func(_ int, dst *T) error {
			return v.s.life.copyConstruct(dst, &fill)
		})
		return err
	}
	return nil
}

// Clear removes every element. A Buffered vector returns to its buffer;
// other storage keeps its capacity.
func (v *Vector[T]) Clear() { v.s.clear() }

// Free removes every element and releases the dynamic block, if any.
func (v *Vector[T]) Free() { v.s.free() }

// Reserve makes room for at least n elements.
func (v *Vector[T]) Reserve(n int) error { return v.s.reserve(n) }

// ShrinkToFit releases unused capacity where the storage mode allows.
func (v *Vector[T]) ShrinkToFit() error { return v.s.shrinkToFit() }

// Swap exchanges contents with o, which must share v's configuration.
func (v *Vector[T]) Swap(o *Vector[T]) error { return v.s.swap(&o.s) }

// CopyFrom replaces v's elements with copies of src's. src may use a
// different configuration.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error { return v.s.copyFrom(&src.s) }

// MoveFrom replaces v's elements with src's and leaves src empty. src may
// use a different configuration.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error { return v.s.moveFrom(&src.s) }

// Clone returns a copy of v with the same configuration.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(v.s.cfg)
}

// CloneWith returns a copy of v laid out according to cfg.
func (v *Vector[T]) CloneWith(cfg Config) (*Vector[T], error) {
	out, err := NewWithOps[T](cfg, v.s.life.ops)
	if err != nil {
		return nil, err
	}
	if err := out.CopyFrom(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Take returns a new vector laid out according to cfg that holds src's
// elements, leaving src empty.
func Take[T any](cfg Config, src *Vector[T]) (*Vector[T], error) {
	out, err := NewWithOps[T](cfg, src.s.life.ops)
	if err != nil {
		return nil, err
	}
	if err := out.MoveFrom(src); err != nil {
		return nil, err
	}
	return out, nil
}

// All returns an iterator over index-value pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Data() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := v.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Data() {
			if !yield(x) {
				return
			}
		}
	}
}

// EqualFunc reports whether v and o hold equal elements in the same
// order, using eq to compare.
func (v *Vector[T]) EqualFunc(o *Vector[T], eq func(a, b T) bool) bool {
	a, b := v.Data(), o.Data()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.Data())
}
