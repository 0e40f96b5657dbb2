package flexvec

// shift moves the live run [lo, hi) of the active block by n slots,
// toward higher offsets when n > 0.
//
// The nearest min(|n|, hi-lo) elements are constructed into the newly
// reached slots first, the rest slide over by assignment, and the
// vacated slots are destroyed last. If any construction or assignment
// fails, every element the shift owns (the original run and whatever it
// already constructed) is destroyed before the error is returned. The
// caller is responsible for live elements outside [lo, hi).
func (s *storage[T]) shift(lo, hi, n int) error {
	if n == 0 || lo == hi {
		return nil
	}
	slots := s.block()
	rel := s.life.relocator()
	k := min(abs(n), hi-lo)
	s.stats.shifts++

	if n > 0 {
		for i := hi - 1; i >= hi-k; i-- {
			if err := rel.construct(&slots[i+n], &slots[i]); err != nil {
				s.life.destroyRange(slots[i+n+1 : hi+n])
				s.life.destroyRange(slots[lo:hi])
				return elementFailure(err, "shift construct")
			}
		}
		for i := hi - k - 1; i >= lo; i-- {
			if err := rel.assign(&slots[i+n], &slots[i]); err != nil {
				// k == n here, so the constructed tail is contiguous with the run.
				s.life.destroyRange(slots[lo : hi+n])
				return elementFailure(err, "shift assign")
			}
		}
		s.life.destroyRange(slots[lo : lo+k])
		return nil
	}

	m := -n
	for i := lo; i < lo+k; i++ {
		if err := rel.construct(&slots[i-m], &slots[i]); err != nil {
			s.life.destroyRange(slots[lo-m : i-m])
			s.life.destroyRange(slots[lo:hi])
			return elementFailure(err, "shift construct")
		}
	}
	for i := lo + k; i < hi; i++ {
		if err := rel.assign(&slots[i-m], &slots[i]); err != nil {
			s.life.destroyRange(slots[lo-m : hi])
			return elementFailure(err, "shift assign")
		}
	}
	s.life.destroyRange(slots[hi-k : hi])
	return nil
}

// teardown empties the container after a failed multi-element
// operation. The spans are live ranges the failed step did not own.
func (s *storage[T]) teardown(err error, spans ...[2]int) {
	slots := s.block()
	for _, sp := range spans {
		if sp[0] < sp[1] {
			s.life.destroyRange(slots[sp[0]:sp[1]])
		}
	}
	s.resetEmpty()
	s.stats.teardowns++
	s.log.teardown(s.cfg, err)
}

// transferRun relocates every element of src into dst starting at at,
// then destroys the sources. On failure the partially built destination
// is destroyed and src is left live.
func transferRun[T any](rel relocator[T], dstLife lifecycle[T], dst []T, at int, srcLife lifecycle[T], src []T) error {
	for i := range src {
		if err := rel.construct(&dst[at+i], &src[i]); err != nil {
			dstLife.destroyRange(dst[at : at+i])
			return err
		}
	}
	srcLife.destroyRange(src)
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
