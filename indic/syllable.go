package indic

import "slices"

// ShapeOptions tunes [ShapeSyllable].
type ShapeOptions struct {
	// Strict turns failed consistency checks into panics. Use it during
	// development of new profiles.
	Strict bool
	// KeepTrailingZWNJ re-emits a trailing ZWNJ after the reordered
	// syllable. By default it is dropped.
	KeepTrailingZWNJ bool
}

// Syllable is a reordered syllable.
type Syllable struct {
	Text      []rune     // code points in reordered sequence
	Positions []Position // visual position of each code point of Text
	Base      int        // index of the base consonant (or a trailing joiner) in Text
	Reph      int        // index of the Reph Ra in Text, or -1
	Stripped  bool       // a trailing ZWNJ has been removed
}

// syllable is the working state while reordering one syllable.
type syllable struct {
	p      *Profile
	cps    []rune
	tags   []Position
	base   int
	reph   int
	strict bool
}

func newSyllable(p *Profile, input []rune, opts ShapeOptions) (*syllable, bool) {
	s := &syllable{
		p:      p,
		cps:    make([]rune, len(input), len(input)+3),
		reph:   -1,
		strict: opts.Strict,
	}
	copy(s.cps, input)
	stripped := false
	if n := len(s.cps); n > 1 && s.cps[n-1] == ZWNJ {
		s.cps = s.cps[:n-1]
		stripped = true
	}
	return s, stripped
}

// ShapeSyllable reorders a single syllable, as delimited by [NextBoundary].
//
// The input is not modified. The result contains the input code points in
// reordered sequence, with multi-part matras replaced by their parts. A
// trailing ZWNJ is removed from the syllable.
//
// ShapeSyllable fails with a [ShapingError] if a split matra is missing from
// the profile's split table, or if an internal check fails (see
// [ShapeOptions.Strict]). Clients should use the input unchanged in this case.
func ShapeSyllable(p *Profile, input []rune, opts ShapeOptions) (Syllable, error) {
	if len(input) == 0 {
		return Syllable{Reph: -1}, nil
	}
	s, stripped := newSyllable(p, input, opts)
	if len(s.cps) == 1 {
		s.tags = []Position{Base}
	} else {
		if err := s.resolveBase(); err != nil {
			return Syllable{}, err
		}
		if err := s.tagPositions(); err != nil {
			return Syllable{}, err
		}
		s.reorderMarks()
	}
	out := s.result(stripped)
	if stripped && opts.KeepTrailingZWNJ {
		out.Text = append(out.Text, ZWNJ)
		out.Positions = append(out.Positions, None)
	}
	tracer().Debugf("syllable %U -> %U (base=%d, reph=%d)", input, out.Text, out.Base, out.Reph)
	return out, nil
}

// ResolveBase runs the base consonant resolution of [ShapeSyllable] only:
// halant and Reph relocation, matra splitting and pre-base matra movement.
// Post-base marks are not sorted and Positions is nil.
func ResolveBase(p *Profile, input []rune, opts ShapeOptions) (Syllable, error) {
	if len(input) == 0 {
		return Syllable{Reph: -1}, nil
	}
	s, stripped := newSyllable(p, input, opts)
	if len(s.cps) > 1 {
		if err := s.resolveBase(); err != nil {
			return Syllable{}, err
		}
	}
	out := s.result(stripped)
	out.Positions = nil
	return out, nil
}

func (s *syllable) result(stripped bool) Syllable {
	return Syllable{
		Text:      slices.Clip(s.cps),
		Positions: slices.Clip(s.tags),
		Base:      s.base,
		Reph:      s.reph,
		Stripped:  stripped,
	}
}

// invariant reports a failed consistency check. In strict mode it panics.
func (s *syllable) invariant(ok bool, offset int, msg string) error {
	if ok {
		return nil
	}
	if s.strict {
		assert(false, "indic: "+msg)
	}
	tracer().Errorf("syllable %U: %s", s.cps, msg)
	return &ShapingError{Kind: ErrInvariant, Offset: offset, Issue: msg}
}
