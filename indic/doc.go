/*
Package indic implements syllable segmentation and syllable reordering for
Indic scripts.

Shaping an Indic syllable starts long before any glyph substitution happens:
the code points of a syllable have to be brought into an order which the
OpenType lookups of a font expect. This package covers that step:

  - code points are classified by a script [Profile] into a grammatical [Form]
    and a visual [Position],
  - a run of code points is split into syllables ([NextBoundary], [Syllables]),
  - each syllable is rewritten by [ShapeSyllable]: the base consonant is
    resolved, halant and Reph (Ra+Halant) are relocated, multi-part matras
    are split into their parts, and post-base marks are sorted by the
    profile's ordering rules.

The algorithm is data driven. Everything script specific lives in a
[Profile]; package otbengali provides the profile for Bengali. Adding another
script means providing another profile, not changing this package.

Profiles are immutable after construction and may be shared between
goroutines. All shaping state is local to a single call.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package indic

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the indic package namespace.
func tracer() tracing.Trace {
	return tracing.Select("indic.shape")
}

// errShaper wraps a message as a user-facing shaping error.
func errShaper(x string) error {
	return fmt.Errorf("Indic syllable shaping: %s", x)
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
