package indic

// Form is the grammatical category of a code point, as used by the syllable
// grammar.
type Form uint8

const (
	Invalid Form = iota // not assigned within the script block
	Consonant
	Nukta
	Halant
	Matra // dependent vowel sign
	VowelMark
	StressMark
	IndependentVowel
	LengthMark
	Control // ZWJ, ZWNJ
	Other
)

// UnknownForm is used for code points the script block reserves without
// assigning a grammatical role.
const UnknownForm = Invalid

var formNames = [...]string{
	"Invalid", "Consonant", "Nukta", "Halant", "Matra", "VowelMark",
	"StressMark", "IndependentVowel", "LengthMark", "Control", "Other",
}

func (f Form) String() string {
	if int(f) < len(formNames) {
		return formNames[f]
	}
	return "Form(?)"
}

// Position is the visual class of a code point relative to the base consonant
// of its syllable.
//
// The table positions None, Pre, Above, Below, Post and Split come from a
// profile's classification table. Base, Reph and Inherit are assigned while a
// syllable is reordered.
type Position uint8

const (
	None Position = iota
	Pre
	Above
	Below
	Post
	Split // multi-part matra, will be split into its parts
	Base
	Reph
	Vattu
	Inherit // travels with the preceding code point
)

var positionNames = [...]string{
	"None", "Pre", "Above", "Below", "Post", "Split", "Base", "Reph", "Vattu", "Inherit",
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "Position(?)"
}

// Code points with a fixed classification across scripts.
const (
	ZWNJ         rune = '\u200C'
	ZWJ          rune = '\u200D'
	DottedCircle rune = '\u25CC'
)
