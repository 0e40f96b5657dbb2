package flexvec

import (
	"github.com/cockroachdb/errors"
)

// counters are the structural events a container has gone through.
type counters struct {
	reallocations uint64
	recenters     uint64
	shifts        uint64
	teardowns     uint64
}

// storage owns a container's capacity and the data region inside it.
// Embedded and Buffered storage carry an in-object block; Fixed,
// Variable and the overflow side of Buffered own a dynamic block.
type storage[T any] struct {
	cfg   Config
	life  lifecycle[T]
	log   *Logger
	limit int

	embed block[T]
	heap  block[T]

	begin, end int
	stats      counters
}

func newStorage[T any](cfg Config, ops Ops[T]) storage[T] {
	s := storage[T]{
		cfg:   cfg,
		life:  lifecycle[T]{ops: ops},
		log:   cfg.Logger,
		limit: cfg.maxSizeFor(sizeOf[T]()),
	}
	if cfg.embeds() {
		s.embed = newEmbedded[T](cfg.Baseline)
	}
	s.resetEmpty()
	return s
}

// block returns the slots of the active capacity block.
func (s *storage[T]) block() []T {
	if s.heap.live() {
		return s.heap.slots
	}
	return s.embed.slots
}

func (s *storage[T]) capacity() int { return len(s.block()) }
func (s *storage[T]) isDynamic() bool { return s.heap.live() }

// holdsEmbedded reports whether the live elements sit in in-object slots.
func (s *storage[T]) holdsEmbedded() bool {
	return s.cfg.Storage == Embedded || (s.cfg.Storage == Buffered && !s.heap.live())
}

// ensureRoom makes sure one more element fits.
func (s *storage[T]) ensureRoom() error {
	if s.size() < s.capacity() {
		return nil
	}
	return s.growFor(s.size() + 1)
}

// growFor grows the capacity to hold need elements, following the growth
// policy. Fixed-capacity modes fail instead of growing past their bound.
func (s *storage[T]) growFor(need int) error {
	if need > s.limit {
		return lengthExceeded(need, s.limit)
	}
	cur := s.capacity()
	switch s.cfg.Storage {
	case Embedded:
		return allocationFailure("embedded capacity %d cannot hold %d elements", cur, need)
	case Fixed:
		if need > s.cfg.Baseline {
			return allocationFailure("fixed capacity %d cannot hold %d elements", s.cfg.Baseline, need)
		}
		return s.reallocate(s.cfg.Baseline)
	}
	next := s.cfg.Grow(cur)
	for next < need {
		next = s.cfg.Grow(next)
	}
	return s.reallocate(min(next, s.limit))
}

// reserveFor makes room for n elements the way a run of insertions
// would: growth follows the growth policy rather than jumping to exactly n.
func (s *storage[T]) reserveFor(n int) error {
	if n <= s.capacity() {
		return nil
	}
	return s.growFor(n)
}

// reserve makes room for at least n elements.
func (s *storage[T]) reserve(n int) error {
	if n <= s.capacity() {
		return nil
	}
	if n > s.limit {
		return lengthExceeded(n, s.limit)
	}
	switch s.cfg.Storage {
	case Embedded:
		return allocationFailure("reserve %d exceeds embedded capacity %d", n, s.cfg.Baseline)
	case Fixed:
		if n > s.cfg.Baseline {
			return allocationFailure("reserve %d exceeds fixed capacity %d", n, s.cfg.Baseline)
		}
		return s.reallocate(s.cfg.Baseline)
	}
	return s.reallocate(max(n, s.cfg.Baseline))
}

// reallocate moves the run into a new dynamic block of exactly newCap
// slots, placed where the placement mode puts a run of that size. The old
// block is released only after the new one is fully populated.
func (s *storage[T]) reallocate(newCap int) error {
	size := s.size()
	if newCap < size {
		return errors.AssertionFailedf("reallocate to %d below size %d", newCap, size)
	}
	nb, err := acquire[T](newCap, s.limit)
	if err != nil {
		return err
	}
	at := s.cfg.FrontGap(newCap, size)
	oldCap := s.capacity()
	rel := s.life.relocator()
	if err := transferRun(rel, s.life, nb.slots, at, s.life, s.block()[s.begin:s.end]); err != nil {
		nb.release()
		err = elementFailure(err, "reallocate")
		if rel.moving {
			// Moved-from sources are not guaranteed usable.
			s.teardown(err, [2]int{s.begin, s.end})
		}
		return err
	}
	promoted := !s.heap.live() && s.cfg.Storage == Buffered
	s.heap.release()
	s.heap = nb
	s.begin, s.end = at, at+size
	s.stats.reallocations++
	if promoted {
		s.log.promote(s.cfg, size, newCap)
	} else {
		s.log.reallocate(s.cfg, oldCap, newCap, size)
	}
	return nil
}

// demote moves a Buffered run from its dynamic block back into the
// in-object buffer and releases the block.
func (s *storage[T]) demote() error {
	size := s.size()
	at := s.cfg.FrontGap(s.embed.capacity(), size)
	rel := s.life.relocator()
	if err := transferRun(rel, s.life, s.embed.slots, at, s.life, s.heap.slots[s.begin:s.end]); err != nil {
		err = elementFailure(err, "demote")
		if rel.moving {
			s.teardown(err, [2]int{s.begin, s.end})
		}
		return err
	}
	oldCap := s.heap.capacity()
	s.heap.release()
	s.begin, s.end = at, at+size
	s.stats.reallocations++
	s.log.demote(s.cfg, size, oldCap)
	return nil
}

// shrinkToFit drops unused capacity.
func (s *storage[T]) shrinkToFit() error {
	size := s.size()
	if size == s.capacity() {
		return nil
	}
	switch s.cfg.Storage {
	case Embedded:
		return nil
	case Buffered:
		if !s.heap.live() {
			return nil
		}
		if size <= s.cfg.Baseline {
			return s.demote()
		}
		return s.reallocate(size)
	}
	if size == 0 {
		s.free()
		return nil
	}
	return s.reallocate(size)
}

// clear destroys every element. A Buffered container falls back to its
// buffer; other dynamic blocks are kept.
func (s *storage[T]) clear() {
	if s.cfg.Storage == Buffered && s.heap.live() {
		s.free()
		return
	}
	s.destroyAll()
}

// free destroys every element and releases the dynamic block.
func (s *storage[T]) free() {
	if s.begin < s.end {
		s.life.destroyRange(s.block()[s.begin:s.end])
	}
	s.heap.release()
	s.resetEmpty()
}

// parcel is a run detached from its container during a swap.
type parcel[T any] struct {
	blk        block[T]
	begin, end int
	scratch    bool
}

// swap exchanges contents with o. Two dynamic blocks trade owners in
// O(1); when either side holds its elements in in-object slots the
// elements are relocated. A failed swap leaves both containers empty.
func (s *storage[T]) swap(o *storage[T]) error {
	if s == o {
		return nil
	}
	if !s.cfg.sameLayout(o.cfg) {
		return errors.Wrapf(ErrInvalidConfig, "swap between %s and %s", s.cfg, o.cfg)
	}
	if !s.holdsEmbedded() && !o.holdsEmbedded() {
		s.heap, o.heap = o.heap, s.heap
		s.begin, o.begin = o.begin, s.begin
		s.end, o.end = o.end, s.end
		return nil
	}

	// Scratch space is acquired up front so an allocation failure leaves
	// both containers untouched.
	sa, err := s.scratch()
	if err != nil {
		return err
	}
	sb, err := o.scratch()
	if err != nil {
		sa.release()
		return err
	}

	pa, err := s.detach(sa)
	if err != nil {
		sb.release()
		return err
	}
	pb, err := o.detach(sb)
	if err != nil {
		s.drop(pa)
		return err
	}
	if err := s.attach(pb); err != nil {
		s.drop(pa)
		return err
	}
	return o.attach(pa)
}

func (s *storage[T]) scratch() (block[T], error) {
	if s.heap.live() {
		return block[T]{}, nil
	}
	return acquire[T](s.size(), s.limit)
}

// detach hands the run over as a parcel and leaves s empty.
func (s *storage[T]) detach(scratch block[T]) (parcel[T], error) {
	if s.heap.live() {
		p := parcel[T]{begin: s.begin, end: s.end}
		p.blk = s.heap.take()
		s.resetEmpty()
		return p, nil
	}
	size := s.size()
	if err := transferRun(s.life.relocator(), s.life, scratch.slots, 0, s.life, s.block()[s.begin:s.end]); err != nil {
		scratch.release()
		err = elementFailure(err, "swap")
		s.teardown(err, [2]int{s.begin, s.end})
		return parcel[T]{}, err
	}
	s.resetEmpty()
	return parcel[T]{blk: scratch, begin: 0, end: size, scratch: true}, nil
}

// attach installs a parcel into the empty container s.
func (s *storage[T]) attach(p parcel[T]) error {
	if !p.scratch {
		s.heap = p.blk
		s.begin, s.end = p.begin, p.end
		return nil
	}
	size := p.end - p.begin
	slots := s.block()
	at := s.cfg.FrontGap(len(slots), size)
	err := transferRun(s.life.relocator(), s.life, slots, at, s.life, p.blk.slots[p.begin:p.end])
	if err != nil {
		s.drop(p)
		err = elementFailure(err, "swap")
		s.stats.teardowns++
		s.log.teardown(s.cfg, err)
		return err
	}
	p.blk.release()
	s.begin, s.end = at, at+size
	return nil
}

// drop destroys a parcel's elements and releases its block.
func (s *storage[T]) drop(p parcel[T]) {
	if p.begin < p.end {
		s.life.destroyRange(p.blk.slots[p.begin:p.end])
	}
	p.blk.release()
}
