/*
Package otreorder provides the reordering pipeline in front of OpenType glyph
substitution for Indic scripts.

A [Pipeline] takes a run of code points, copies code points outside of its
script block verbatim, splits the script runs into syllables and reorders
each syllable with package indic. The complete reordered run is then handed
to a [GlyphSubstitution] stage, which may ask to be called again ([Retry]).

	pipe := otreorder.New(otbengali.Profile(), otreorder.Options{})
	res, err := pipe.Reorder([]rune(text))
	if err != nil || !res.Applied {
	    // use text as is
	}

A run without any code point of the profile's script is not transformed;
[Result.Applied] is false in this case and [Pipeline.ReorderBuffer] returns 0.
*/
package otreorder

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the otreorder package namespace.
func tracer() tracing.Trace {
	return tracing.Select("indic.reorder")
}

var (
	// ErrNilProfile indicates that a pipeline has been created without a profile.
	ErrNilProfile = errors.New("otreorder: nil script profile")
	// ErrNoMatchingProfile indicates that no registered profile matches a selection context.
	ErrNoMatchingProfile = errors.New("otreorder: no profile matches selection context")
	// ErrSubstitutionFatal indicates that the glyph substitution stage failed.
	ErrSubstitutionFatal = errors.New("otreorder: glyph substitution failed")
	// ErrBufferTooSmall indicates that an output buffer cannot hold the reordered run.
	ErrBufferTooSmall = errors.New("otreorder: output buffer too small")
)
