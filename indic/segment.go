package indic

import "iter"

// NextBoundary finds the end of the syllable starting at text[start]. It
// returns an index b with start < b <= end. An empty range (start >= end)
// yields start+1, which lies past end.
//
// Syllables are of the form
//
//	(Consonant Nukta? Halant)* Consonant Matra? VowelMark? StressMark?
//	(Consonant Nukta? Halant)* Consonant Halant
//	IndependentVowel VowelMark? StressMark?
//
// Invalid combinations produce syllable boundaries as well, so every call
// makes progress.
func NextBoundary(p *Profile, text []rune, start, end int) int {
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return start + 1
	}
	uc := text[start:end]
	pos := 0
	state := p.Form(uc[pos])
	pos++
	if state != Consonant && state != IndependentVowel && state != Other {
		return start + pos
	}
	for pos < len(uc) {
		newState := p.Form(uc[pos])
		if !p.continues(uc, pos, state, newState) {
			if newState == Control {
				pos++ // a control ends its syllable
			}
			break
		}
		if newState != Control {
			state = newState
		}
		pos++
	}
	return start + pos
}

// continues decides whether the code point uc[pos] of form next extends the
// syllable which is in state.
func (p *Profile) continues(uc []rune, pos int, state, next Form) bool {
	switch next {
	case Control:
		return state == Halant
	case Consonant:
		return state == Halant
	case Halant:
		if state == Nukta || state == Consonant {
			return true
		}
		return pos == 1 && p.halantAfterVowel(uc[0])
	case Nukta:
		return state == Consonant
	case StressMark:
		if state == VowelMark {
			return true
		}
		return p.vowelMarkContinues(uc, pos, state)
	case VowelMark:
		return p.vowelMarkContinues(uc, pos, state)
	case Matra:
		return p.matraContinues(uc, pos, state)
	case LengthMark:
		return state == Matra
	}
	return false // IndependentVowel, Invalid, Other
}

func (p *Profile) vowelMarkContinues(uc []rune, pos int, state Form) bool {
	if state == Matra || state == LengthMark || state == IndependentVowel {
		return true
	}
	return p.matraContinues(uc, pos, state)
}

func (p *Profile) matraContinues(uc []rune, pos int, state Form) bool {
	switch state {
	case Consonant, Nukta, Matra:
		return true
	}
	return p.matraAfterVowel(uc[pos-1], uc[pos])
}

// Syllables iterates over the syllables of the script runs of text. Code
// points outside the profile's script block form single-element spans.
func Syllables(p *Profile, text []rune) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		start := 0
		for start < len(text) {
			end := start + 1
			if p.InBlock(text[start]) {
				end = NextBoundary(p, text, start, len(text))
			}
			if !yield(start, end) {
				return
			}
			start = end
		}
	}
}
