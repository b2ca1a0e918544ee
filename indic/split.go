package indic

import "slices"

// SplitMatra replaces the multi-part matra at buf[index] by its parts and
// returns the grown buffer. The buffer grows by one or two code points,
// depending on the profile's split table entry.
//
// A matra without a split table entry means that either the profile is
// corrupt or the code point has been misclassified as split; SplitMatra
// returns a [ShapingError] of kind [ErrMalformedMatra] and leaves buf alone.
func (p *Profile) SplitMatra(buf []rune, index int) ([]rune, error) {
	if index < 0 || index >= len(buf) {
		return buf, &ShapingError{
			Kind:   ErrInvariant,
			Offset: index,
			Issue:  "split position out of range",
		}
	}
	sm, ok := p.SplitFor(buf[index])
	if !ok {
		return buf, &ShapingError{
			Kind:      ErrMalformedMatra,
			Offset:    index,
			CodePoint: buf[index],
			Issue:     "matra has no entry in the split table",
		}
	}
	tracer().Debugf("split matra %#U into %d parts", sm.Matra, sm.Growth()+1)
	return slices.Replace(buf, index, index+1, sm.parts()...), nil
}
