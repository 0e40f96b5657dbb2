package flexvec

// side names the end of the data region a placement operation grows or
// shrinks.
type side uint8

const (
	backSide side = iota
	frontSide
)

func (sd side) String() string {
	if sd == frontSide {
		return "front"
	}
	return "back"
}

func (s *storage[T]) size() int     { return s.end - s.begin }
func (s *storage[T]) frontGap() int { return s.begin }
func (s *storage[T]) backGap() int  { return s.capacity() - s.end }

// resetEmpty positions an empty data region at the placement's
// zero-size split.
func (s *storage[T]) resetEmpty() {
	s.begin = s.cfg.FrontGap(s.capacity(), 0)
	s.end = s.begin
}

// pickSide chooses which part of the run moves to open or close a gap at
// pos. Front and Back placement can only move their free end. Middle
// moves the side with fewer elements, the back on a tie.
func (s *storage[T]) pickSide(frontCount, backCount int) side {
	switch s.cfg.Placement {
	case Front:
		return backSide
	case Back:
		return frontSide
	}
	if frontCount < backCount {
		return frontSide
	}
	return backSide
}

func (s *storage[T]) addBack(tmp *T) error  { return s.addAt(s.end, tmp) }
func (s *storage[T]) addFront(tmp *T) error { return s.addAt(s.begin, tmp) }

// addAt places the owned temporary tmp before the element at absolute
// offset pos. It requires size < capacity. tmp is fully built before any
// element moves, so a failing constructor never reaches this point.
func (s *storage[T]) addAt(pos int, tmp *T) error {
	sd := s.pickSide(pos-s.begin, s.end-pos)
	gap := s.backGap()
	if sd == frontSide {
		gap = s.frontGap()
	}
	if gap == 0 {
		// Only Middle placement can run out of room on its chosen side
		// while the block still has free slots.
		delta, err := s.recenter(sd)
		if err != nil {
			s.life.destroy(tmp)
			return err
		}
		pos += delta
	}

	slots := s.block()
	if sd == backSide {
		if pos < s.end {
			if err := s.shift(pos, s.end, 1); err != nil {
				s.life.destroy(tmp)
				s.teardown(err, [2]int{s.begin, pos})
				return err
			}
		}
		s.end++
		if err := s.life.adopt(&slots[pos], tmp); err != nil {
			err = elementFailure(err, "insert")
			s.teardown(err, [2]int{s.begin, pos}, [2]int{pos + 1, s.end})
			return err
		}
		return nil
	}

	if pos > s.begin {
		if err := s.shift(s.begin, pos, -1); err != nil {
			s.life.destroy(tmp)
			s.teardown(err, [2]int{pos, s.end})
			return err
		}
	}
	s.begin--
	if err := s.life.adopt(&slots[pos-1], tmp); err != nil {
		err = elementFailure(err, "insert")
		s.teardown(err, [2]int{s.begin, pos - 1}, [2]int{pos, s.end})
		return err
	}
	return nil
}

// recenter redistributes the gaps of a Middle run so that the side about
// to receive an element has room, moving the whole run in one shift. The
// target split is the placement's split for size+1 elements, with the
// receiving side's slot added on its side. It returns how far the run
// moved.
func (s *storage[T]) recenter(sd side) (int, error) {
	size := s.size()
	target := s.cfg.FrontGap(s.capacity(), size+1)
	if sd == frontSide {
		target++
	}
	delta := target - s.begin
	if delta == 0 {
		return 0, nil
	}
	if err := s.shift(s.begin, s.end, delta); err != nil {
		s.teardown(err)
		return 0, err
	}
	s.begin += delta
	s.end += delta
	s.stats.recenters++
	s.log.recenter(s.cfg, sd, size, s.begin, s.backGap())
	return delta, nil
}

// erase destroys the elements in [first, last) and closes the gap by
// shifting the shorter neighbouring side inward, the back on a tie.
func (s *storage[T]) erase(first, last int) error {
	n := last - first
	if n <= 0 {
		return nil
	}
	slots := s.block()
	sd := s.pickSide(first-s.begin, s.end-last)
	s.life.destroyRange(slots[first:last])

	if sd == backSide {
		if err := s.shift(last, s.end, -n); err != nil {
			s.teardown(err, [2]int{s.begin, first})
			return err
		}
		s.end -= n
		return nil
	}
	if err := s.shift(s.begin, first, n); err != nil {
		s.teardown(err, [2]int{last, s.end})
		return err
	}
	s.begin += n
	return nil
}

// popFront destroys the first element. It is O(1) unless the run is
// packed against the front.
func (s *storage[T]) popFront() error {
	if s.cfg.Placement == Front {
		return s.erase(s.begin, s.begin+1)
	}
	s.life.destroy(&s.block()[s.begin])
	s.begin++
	return nil
}

// popBack destroys the last element. It is O(1) unless the run is
// packed against the back.
func (s *storage[T]) popBack() error {
	if s.cfg.Placement == Back {
		return s.erase(s.end-1, s.end)
	}
	s.end--
	s.life.destroy(&s.block()[s.end])
	return nil
}

// destroyAll destroys every live element and resets the region.
func (s *storage[T]) destroyAll() {
	if s.begin < s.end {
		s.life.destroyRange(s.block()[s.begin:s.end])
	}
	s.resetEmpty()
}

// appendN grows the run by count elements at the back, each built by
// construct into an empty slot. Room is made with a single shift when the
// back gap is short, so Back and Middle placement stay linear. It reports
// how many times construct was called; a failing construct empties the
// container.
func (s *storage[T]) appendN(count int, construct func(i int, dst *T) error) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	if err := s.reserveFor(s.size() + count); err != nil {
		return 0, err
	}
	if s.backGap() < count {
		target := s.cfg.FrontGap(s.capacity(), s.size()+count)
		if s.cfg.Placement == Front {
			target = 0
		}
		delta := target - s.begin
		if err := s.shift(s.begin, s.end, delta); err != nil {
			s.teardown(err)
			return 0, err
		}
		s.begin += delta
		s.end += delta
	}
	slots := s.block()
	for i := 0; i < count; i++ {
		if err := construct(i, &slots[s.end]); err != nil {
			err = elementFailure(err, "append")
			s.teardown(err, [2]int{s.begin, s.end})
			return i + 1, err
		}
		s.end++
	}
	return count, nil
}
