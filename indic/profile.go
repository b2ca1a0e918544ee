package indic

import (
	"fmt"
	"slices"

	gtlang "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
)

// Properties is a bit set of script features relevant for reordering.
type Properties uint8

const (
	HasReph  Properties = 1 << iota // Ra+Halant at syllable start forms a Reph
	HasSplit                        // script has multi-part matras
)

// OrderingRule selects code points by form and (tagged) position. The ordered
// list of rules of a profile determines the final order of post-base marks.
type OrderingRule struct {
	Form     Form
	Position Position
}

// SplitMatra maps a multi-part matra to its parts. Parts[2] is zero for
// two-part matras.
type SplitMatra struct {
	Matra rune
	Parts [3]rune
}

// Growth is the number of code points a split adds to a syllable.
func (sm SplitMatra) Growth() int {
	if sm.Parts[2] == 0 {
		return 1
	}
	return 2
}

// parts returns the non-zero parts of a split matra.
func (sm SplitMatra) parts() []rune {
	return sm.Parts[:sm.Growth()+1]
}

// Constants holds the code points the reordering rules refer to by identity.
type Constants struct {
	Ra     []rune // Ra and its variants; Ra[0] is the standard Ra
	Ba     rune
	Ya     rune
	Halant rune
	Nukta  rune
}

// Exceptions holds script specific relaxations of the syllable grammar.
type Exceptions struct {
	// HalantAfterVowel lists independent vowels which may be directly followed
	// by a halant (vowel + halant + consonant ligatures).
	HalantAfterVowel []rune
	// MatraAfterVowel lists (independent vowel, matra) pairs which stay within
	// one syllable.
	MatraAfterVowel [][2]rune
}

// Definition collects the data of a script profile. It is the input for
// [NewProfile].
type Definition struct {
	Name       string          // human readable name, e.g. "bengali"
	Script     language.Script // ISO 15924 script identifier
	TextScript gtlang.Script   // Unicode script property, for script detection
	First      rune            // first code point of the script block
	Forms      []Form          // one entry per block code point
	Positions  []Position      // one entry per block code point
	Order      []OrderingRule
	Properties Properties
	Constants  Constants
	Splits     []SplitMatra
	Exceptions Exceptions
}

// Profile is the immutable, script specific data driving segmentation and
// reordering. Profiles are created once with [NewProfile] and are safe for
// concurrent use.
type Profile struct {
	name       string
	script     language.Script
	textScript gtlang.Script
	first      rune
	last       rune
	forms      []Form
	positions  []Position
	order      []OrderingRule
	props      Properties
	consts     Constants
	splits     []SplitMatra
	exc        Exceptions
}

// NewProfile checks a profile definition and creates an immutable profile
// from it. All slices are copied.
func NewProfile(def Definition) (*Profile, error) {
	n := len(def.Forms)
	if n == 0 {
		return nil, errShaper("profile has an empty classification table")
	}
	if len(def.Positions) != n {
		return nil, errShaper(fmt.Sprintf("profile %q: %d forms but %d positions",
			def.Name, n, len(def.Positions)))
	}
	if len(def.Constants.Ra) == 0 || def.Constants.Halant == 0 {
		return nil, errShaper(fmt.Sprintf("profile %q: Ra and Halant are required", def.Name))
	}
	p := &Profile{
		name:       def.Name,
		script:     def.Script,
		textScript: def.TextScript,
		first:      def.First,
		last:       def.First + rune(n) - 1,
		forms:      slices.Clone(def.Forms),
		positions:  slices.Clone(def.Positions),
		order:      slices.Clone(def.Order),
		props:      def.Properties,
		splits:     slices.Clone(def.Splits),
	}
	p.consts = def.Constants
	p.consts.Ra = slices.Clone(def.Constants.Ra)
	p.exc.HalantAfterVowel = slices.Clone(def.Exceptions.HalantAfterVowel)
	p.exc.MatraAfterVowel = slices.Clone(def.Exceptions.MatraAfterVowel)
	for i, sm := range p.splits {
		if i > 0 && p.splits[i-1].Matra >= sm.Matra {
			return nil, errShaper(fmt.Sprintf("profile %q: split table not sorted at %#U",
				def.Name, sm.Matra))
		}
		if sm.Parts[0] == 0 || sm.Parts[1] == 0 {
			return nil, errShaper(fmt.Sprintf("profile %q: split matra %#U has less than two parts",
				def.Name, sm.Matra))
		}
		if p.Position(sm.Matra) != Split {
			return nil, errShaper(fmt.Sprintf("profile %q: split matra %#U is not classified as split",
				def.Name, sm.Matra))
		}
	}
	if len(p.splits) > 0 && !p.Has(HasSplit) {
		tracer().Infof("profile %q has a split table but no split property", def.Name)
	}
	return p, nil
}

// Name returns the profile's name.
func (p *Profile) Name() string { return p.name }

// Script returns the ISO 15924 script identifier of the profile.
func (p *Profile) Script() language.Script { return p.script }

// TextScript returns the Unicode script the profile's block belongs to.
func (p *Profile) TextScript() gtlang.Script { return p.textScript }

// Block returns the first and the last code point of the script block.
func (p *Profile) Block() (first, last rune) { return p.first, p.last }

// Has reports whether all properties in prop are set for the profile.
func (p *Profile) Has(prop Properties) bool { return p.props&prop == prop }

// Constants returns a copy of the profile's constants.
func (p *Profile) Constants() Constants {
	c := p.consts
	c.Ra = slices.Clone(p.consts.Ra)
	return c
}

// OrderingRules returns a copy of the profile's ordering rules.
func (p *Profile) OrderingRules() []OrderingRule {
	return slices.Clone(p.order)
}

// InBlock reports whether r belongs to the profile's script block.
func (p *Profile) InBlock(r rune) bool {
	return r >= p.first && r <= p.last
}

// Form classifies a code point grammatically. Form is total: code points
// outside the script block are classified as consonant (dotted circle),
// control (joiners) or other.
func (p *Profile) Form(r rune) Form {
	if !p.InBlock(r) {
		switch r {
		case DottedCircle:
			return Consonant
		case ZWNJ, ZWJ:
			return Control
		}
		return Other
	}
	return p.forms[r-p.first]
}

// Position returns the visual class of a code point. Code points outside the
// script block have position None.
func (p *Profile) Position(r rune) Position {
	if !p.InBlock(r) {
		return None
	}
	return p.positions[r-p.first]
}

// IsRa reports whether r is one of the profile's Ra variants.
func (p *Profile) IsRa(r rune) bool {
	return slices.Contains(p.consts.Ra, r)
}

// SplitFor looks up the split table entry for a matra.
func (p *Profile) SplitFor(matra rune) (SplitMatra, bool) {
	i, found := slices.BinarySearchFunc(p.splits, matra, func(sm SplitMatra, r rune) int {
		return int(sm.Matra) - int(r)
	})
	if !found {
		return SplitMatra{}, false
	}
	return p.splits[i], true
}

// Splits returns a copy of the profile's split table.
func (p *Profile) Splits() []SplitMatra {
	return slices.Clone(p.splits)
}

// MaxGrowth returns the worst-case number of code points reordering text may
// add. Callers providing fixed output buffers should reserve
// len(text)+MaxGrowth(text)+1 slots.
func (p *Profile) MaxGrowth(text []rune) int {
	growth := 0
	for _, r := range text {
		if p.Position(r) == Split {
			if sm, ok := p.SplitFor(r); ok {
				growth += sm.Growth()
			} else {
				growth += 2
			}
		}
	}
	return growth
}

// ContainsScript reports whether any code point of text belongs to the
// script block.
func (p *Profile) ContainsScript(text []rune) bool {
	return slices.ContainsFunc(text, p.InBlock)
}

func (p *Profile) halantAfterVowel(r rune) bool {
	return slices.Contains(p.exc.HalantAfterVowel, r)
}

func (p *Profile) matraAfterVowel(vowel, matra rune) bool {
	return slices.Contains(p.exc.MatraAfterVowel, [2]rune{vowel, matra})
}

func (p *Profile) String() string {
	return fmt.Sprintf("profile(%s, %s, %#U..%#U)", p.name, p.script, p.first, p.last)
}
