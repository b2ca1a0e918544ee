package indic

// tagPositions assigns the final visual position to every code point of the
// syllable. Everything in front of the base is pre-base and nukta and halant
// travel with their predecessor. A relocated Ra becomes Reph.
func (s *syllable) tagPositions() error {
	p := s.p
	n := len(s.cps)
	if cap(s.tags) >= n {
		s.tags = s.tags[:n]
	} else {
		s.tags = make([]Position, n)
	}
	for i := 0; i < s.base; i++ {
		s.tags[i] = Pre
	}
	s.tags[s.base] = Base
	for i := s.base + 1; i < n; i++ {
		s.tags[i] = p.Position(s.cps[i])
		if s.isNuktaOrHalant(s.cps[i]) {
			s.tags[i] = Inherit
		}
	}
	if s.reph > 0 {
		// It might have moved. If the base search stopped at a trailing
		// control, no Ra follows the base and the index from the Reph
		// relocation stays.
		s.findReph()
		if err := s.invariant(s.reph < n, s.reph, "Reph out of range"); err != nil {
			return err
		}
		s.tags[s.reph] = Reph
		if s.reph+1 < n {
			s.tags[s.reph+1] = Inherit
		}
	}
	return nil
}

// reorderMarks sorts the code points following the base by the profile's
// ordering rules. Each rule moves all of its matches, in their input
// order, to the front of the unsorted suffix. A match drags a following
// Inherit-tagged code point along.
func (s *syllable) reorderMarks() {
	uc, tags := s.cps, s.tags
	n := len(uc)
	c := &s.p.consts
	fixed := s.base + 1
	if fixed < n && c.Nukta != 0 && uc[fixed] == c.Nukta {
		fixed++
	}
	if fixed < n && uc[fixed] == c.Halant {
		fixed++
	}
	if fixed < n && uc[fixed] == ZWJ {
		fixed++
	}
	for _, rule := range s.p.order {
		if fixed >= n-1 {
			break
		}
		for i := fixed; i < n; i++ {
			if s.p.Form(uc[i]) != rule.Form || tags[i] != rule.Position {
				continue
			}
			k := 1
			if i < n-1 && tags[i+1] == Inherit {
				k = 2
			}
			moveBlock(uc, i, k, fixed)
			moveBlock(tags, i, k, fixed)
			fixed += k
		}
	}
	if s.reph > 0 {
		s.findReph()
	}
}

// findReph sets the Reph index to the last Ra following the base.
func (s *syllable) findReph() {
	for i := s.base + 1; i < len(s.cps); i++ {
		if s.p.IsRa(s.cps[i]) {
			s.reph = i
		}
	}
}

func (s *syllable) isNuktaOrHalant(r rune) bool {
	c := &s.p.consts
	return r == c.Halant || (c.Nukta != 0 && r == c.Nukta)
}

// moveBlock moves the k elements starting at from to position to, with
// to <= from. The elements in between shift right by k.
func moveBlock[T any](x []T, from, k, to int) {
	if to >= from {
		return
	}
	var tmp [2]T
	copy(tmp[:k], x[from:from+k])
	copy(x[to+k:from+k], x[to:from])
	copy(x[to:to+k], tmp[:k])
}
