package otbengali

import (
	"slices"
	"sync"

	gtlang "github.com/go-text/typesetting/language"
	"github.com/npillmayer/indicshape/indic"
	"golang.org/x/text/language"
)

// Script is the ISO 15924 identifier of the Bengali script.
var Script = language.MustParseScript("Beng")

// Definition returns the definition the Bengali profile is built from.
// Clients may use it as a starting point for derived profiles; the
// returned tables are copies.
func Definition() indic.Definition {
	return indic.Definition{
		Name:       "bengali",
		Script:     Script,
		TextScript: gtlang.Bengali,
		First:      blockFirst,
		Forms:      slices.Clone(bengaliForms[:]),
		Positions:  slices.Clone(bengaliPositions[:]),
		Order:      slices.Clone(bengaliOrder),
		Properties: indic.HasReph | indic.HasSplit,
		Constants: indic.Constants{
			Ra:     []rune{LetterRa, LetterAssameseRa},
			Ba:     LetterBa,
			Ya:     LetterYa,
			Halant: SignVirama,
			Nukta:  SignNukta,
		},
		Splits: slices.Clone(bengaliSplits),
		Exceptions: indic.Exceptions{
			// Vowel A/E + Halant + Ya
			HalantAfterVowel: []rune{LetterA, LetterE},
			// Independent A + vowel sign AA
			MatraAfterVowel: [][2]rune{{LetterA, SignAA}},
		},
	}
}

var profile = sync.OnceValue(func() *indic.Profile {
	p, err := indic.NewProfile(Definition())
	if err != nil {
		panic(err)
	}
	if err := p.CheckCanonicalSplits(); err != nil {
		panic(err)
	}
	return p
})

// Profile returns the Bengali profile. It is built on first use and shared
// afterwards.
func Profile() *indic.Profile {
	return profile()
}
