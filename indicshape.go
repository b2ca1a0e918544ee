/*
Package indicshape reorders Indic text in preparation for OpenType shaping.

OpenType fonts for Indic scripts expect the code points of a syllable in a
certain order: pre-base vowel signs in front of the base consonant, a Reph
after the base, post-base marks sorted. This module performs that step.

▪︎ Package indic holds the script independent algorithm: syllable
segmentation, base consonant resolution, matra splitting and mark ordering.

▪︎ Package indic/otbengali provides the profile for the Bengali script.

▪︎ Package otreorder wraps everything into a pipeline which feeds a glyph
substitution stage.

This package offers convenience functions for the common case of short
strings.

# Status

Bengali is the only script profile so far.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package indicshape

import (
	"sync"

	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/indicshape/indic/otbengali"
	"github.com/npillmayer/indicshape/otreorder"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indic'
func tracer() tracing.Trace {
	return tracing.Select("indic")
}

var defaultRegistry = sync.OnceValue(func() *indic.Registry {
	return indic.NewRegistry(otbengali.Profile())
})

// DefaultRegistry returns a registry holding all script profiles of this
// module.
func DefaultRegistry() *indic.Registry {
	return defaultRegistry()
}

// ReorderString detects the script of text and reorders it.
//
// If no profile matches text, or text cannot be reordered, text is returned
// unchanged; in the latter case together with the error.
func ReorderString(text string) (string, error) {
	runes := []rune(text)
	p, ok := DefaultRegistry().Detect(runes)
	if !ok {
		tracer().Debugf("no script profile for %q", text)
		return text, nil
	}
	res, err := otreorder.New(p, otreorder.Options{}).Reorder(runes)
	if err != nil || !res.Applied {
		return text, err
	}
	return string(res.Text), nil
}
