package indic

// resolveBase finds the base consonant of a syllable and moves halant,
// Reph and matras into place. It runs only for syllables starting with a
// consonant or an independent vowel.
func (s *syllable) resolveBase() error {
	p := s.p
	c := &p.consts
	uc := s.cps
	n := len(uc)
	if f := p.Form(uc[0]); f != Consonant && f != IndependentVowel {
		return nil
	}
	//
	// Find the base consonant: starting from the end of the syllable, move
	// backwards until a consonant is found that does not have a below-base or
	// post-base form (post-base forms have to follow below-base forms), or
	// arrive at the first consonant.
	// If the syllable starts with Ra+Halant, Ra is excluded from candidates.
	beginsWithRa := p.Has(HasReph) && n > 2 && p.IsRa(uc[0]) && uc[1] == c.Halant
	if beginsWithRa && p.Form(uc[2]) == Control {
		beginsWithRa = false
	}
	base := 0
	if beginsWithRa {
		base = 2
	}
	lastConsonant, matra := 0, -1
	for i := base; i < n; i++ {
		switch p.Form(uc[i]) {
		case Consonant:
			lastConsonant = i
		case Matra:
			if matra < 0 {
				matra = i
			}
		}
	}
	chain := Post
	for i := n - 1; i > base; i-- {
		if f := p.Form(uc[i]); f != Consonant && f != Control {
			continue
		}
		cpos := p.Position(uc[i])
		if chain == Post && cpos == Post {
			continue
		}
		if (chain == Post || chain == Below) && cpos == Below {
			chain = Below
			continue
		}
		base = i
		break
	}
	//
	// If the base consonant is not the last one, move the halant from the base
	// consonant to the last one.
	if lastConsonant > base {
		halantPos := 0
		next := s.at(base + 2)
		if s.at(base+1) == c.Halant && next != c.Ra[0] && next != c.Ya && next != c.Ba {
			halantPos = base + 1
		} else if c.Nukta != 0 && s.at(base+1) == c.Nukta && next == c.Halant {
			halantPos = base + 2
		}
		if halantPos > 0 {
			h := uc[halantPos]
			copy(uc[halantPos:lastConsonant], uc[halantPos+1:lastConsonant+1])
			uc[lastConsonant] = h
			tracer().Debugf("moved halant from %d to %d", halantPos, lastConsonant)
		}
	}
	//
	// If the syllable starts with Ra+Halant, move this combination so that it
	// follows either the post-base matra (if any) or the base consonant.
	matraPos := None
	if matra > 0 {
		matraPos = p.Position(uc[matra])
	}
	if beginsWithRa && base != 0 {
		to := base + 1
		if to < n && c.Nukta != 0 && uc[to] == c.Nukta {
			to++
		}
		if to < n && uc[to] == c.Halant {
			to++
		}
		if to < n && uc[to] == ZWJ {
			to++
		}
		if to < n-1 && uc[to] == c.Ra[0] && uc[to+1] == c.Halant {
			to += 2
		}
		if matraPos == Post || matraPos == Split {
			to = matra + 1
			matra -= 2
		}
		if err := s.invariant(to >= 2 && to <= n, to, "Reph target out of range"); err != nil {
			return err
		}
		ra, halant := uc[0], uc[1]
		copy(uc[:to-2], uc[2:to])
		uc[to-2], uc[to-1] = ra, halant
		base -= 2
		s.reph = to - 2
		tracer().Debugf("moved Ra+Halant to %d", s.reph)
	}
	//
	// Split two- or three-part matras into their parts. All pre-base matras
	// need to be at the beginning of the syllable, so move them there now.
	if matraPos == Split {
		grown, err := p.SplitMatra(s.cps, matra)
		if err != nil {
			return err
		}
		s.cps = grown
		uc = s.cps
		matraPos = p.Position(uc[matra]) // three-part matras
	}
	if matraPos == Pre {
		m := uc[matra]
		copy(uc[1:matra+1], uc[:matra])
		uc[0] = m
		base++
	}
	// A trailing control may be taken as base and be pushed past the end by a
	// pre-base matra. Nothing follows the base then.
	if base >= len(s.cps) {
		base = len(s.cps) - 1
	}
	s.base = base
	return s.invariant(base >= 0, base, "base out of range")
}

// at returns the code point at position i or 0 if i is out of range.
func (s *syllable) at(i int) rune {
	if i < 0 || i >= len(s.cps) {
		return 0
	}
	return s.cps[i]
}
