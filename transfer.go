package flexvec

// Transfers between containers of possibly different configuration.
//
// The destination decides the strategy:
//  1. If it cannot own the source's dynamic block (it is Embedded or
//     Fixed, the source holds no dynamic block, or the block does not
//     suit it), every element is constructed into the destination's own
//     capacity in order.
//  2. If the placement modes match, the destination takes the source's
//     block: directly on move, after duplicating it on copy.
//  3. Otherwise the destination takes the block and moves the run to
//     where its placement mode expects it in a single shift.

// canAdopt reports whether s may take ownership of src's dynamic block.
func (s *storage[T]) canAdopt(src *storage[T]) bool {
	if !src.heap.live() || src.heap.capacity() > s.limit {
		return false
	}
	switch s.cfg.Storage {
	case Variable:
		return true
	case Buffered:
		// A Buffered container never holds a dynamic block smaller than
		// its buffer.
		return src.heap.capacity() > s.cfg.Baseline
	}
	return false
}

// prepare checks that n elements fit s and acquires a replacement block
// when its capacity is too small. Nothing is touched on failure.
func (s *storage[T]) prepare(n int) (block[T], error) {
	if n > s.limit {
		return block[T]{}, lengthExceeded(n, s.limit)
	}
	if n <= s.capacity() {
		return block[T]{}, nil
	}
	switch s.cfg.Storage {
	case Embedded:
		return block[T]{}, allocationFailure("embedded capacity %d cannot hold %d elements", s.cfg.Baseline, n)
	case Fixed:
		if n > s.cfg.Baseline {
			return block[T]{}, allocationFailure("fixed capacity %d cannot hold %d elements", s.cfg.Baseline, n)
		}
		return acquire[T](s.cfg.Baseline, s.limit)
	}
	return acquire[T](max(n, s.cfg.Baseline), s.limit)
}

// install replaces s's contents with an empty region in nb (or in its
// current block when nb is not live).
func (s *storage[T]) install(nb block[T]) {
	s.destroyAll()
	if nb.live() {
		s.heap.release()
		s.heap = nb
		s.stats.reallocations++
	}
	s.resetEmpty()
}

// copyFrom replaces the contents of s with copies of src's elements.
func (s *storage[T]) copyFrom(src *storage[T]) error {
	if s == src {
		return nil
	}
	n := src.size()
	from := src.block()[src.begin:src.end]

	if s.canAdopt(src) {
		nb, err := acquire[T](src.heap.capacity(), s.limit)
		if err != nil {
			return err
		}
		at := s.cfg.FrontGap(nb.capacity(), n)
		if s.cfg.Placement == src.cfg.Placement {
			at = src.begin
		}
		for i := range from {
			if err := s.life.copyConstruct(&nb.slots[at+i], &from[i]); err != nil {
				s.life.destroyRange(nb.slots[at : at+i])
				nb.release()
				return elementFailure(err, "copy")
			}
		}
		s.destroyAll()
		s.heap.release()
		s.heap = nb
		s.begin, s.end = at, at+n
		s.stats.reallocations++
		return nil
	}

	nb, err := s.prepare(n)
	if err != nil {
		return err
	}
	s.install(nb)
	slots := s.block()
	at := s.cfg.FrontGap(len(slots), n)
	for i := range from {
		if err := s.life.copyConstruct(&slots[at+i], &from[i]); err != nil {
			err = elementFailure(err, "copy")
			s.teardown(err, [2]int{at, at + i})
			return err
		}
	}
	s.begin, s.end = at, at+n
	return nil
}

// moveFrom replaces the contents of s with src's elements and leaves src
// empty. Moved-from elements are destroyed during the transfer, and a
// Fixed or Variable source gives up its dynamic block.
func (s *storage[T]) moveFrom(src *storage[T]) error {
	if s == src {
		return nil
	}
	n := src.size()

	if s.canAdopt(src) {
		s.destroyAll()
		s.heap.release()
		b, e := src.begin, src.end
		s.heap = src.heap.take()
		src.resetEmpty()
		s.begin, s.end = b, e
		if s.cfg.Placement == src.cfg.Placement {
			return nil
		}
		target := s.cfg.FrontGap(s.heap.capacity(), n)
		if err := s.shift(b, e, target-b); err != nil {
			s.teardown(err)
			return err
		}
		s.begin, s.end = target, target+n
		return nil
	}

	nb, err := s.prepare(n)
	if err != nil {
		return err
	}
	s.install(nb)
	slots := s.block()
	at := s.cfg.FrontGap(len(slots), n)
	rel := s.life.relocator()
	if err := transferRun(rel, s.life, slots, at, src.life, src.block()[src.begin:src.end]); err != nil {
		err = elementFailure(err, "move")
		s.resetEmpty()
		if rel.moving {
			src.teardown(err, [2]int{src.begin, src.end})
		}
		return err
	}
	s.begin, s.end = at, at+n
	src.end = src.begin
	src.free()
	return nil
}
