package indic

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// CheckCanonicalSplits verifies that every split table entry equals the
// canonical decomposition of its matra, for matras which have one.
// Matras without a canonical decomposition are not checked.
func (p *Profile) CheckCanonicalSplits() error {
	for _, sm := range p.splits {
		d := norm.NFD.PropertiesString(string(sm.Matra)).Decomposition()
		if len(d) == 0 {
			continue
		}
		if nfd := []rune(string(d)); !slices.Equal(nfd, sm.parts()) {
			return errShaper(fmt.Sprintf("profile %q: split of %#U is %U, canonical decomposition is %U",
				p.name, sm.Matra, sm.parts(), nfd))
		}
	}
	return nil
}
