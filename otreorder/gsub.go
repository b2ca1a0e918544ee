package otreorder

// Status is the outcome of one glyph substitution pass.
type Status uint8

const (
	Done  Status = iota // substitution is complete
	Retry               // substitution wants to run again on its own output
	Fatal               // substitution failed, the run must not be used
)

func (s Status) String() string {
	switch s {
	case Done:
		return "Done"
	case Retry:
		return "Retry"
	case Fatal:
		return "Fatal"
	}
	return "Status(?)"
}

// GlyphSubstitution is the stage following reordering.
//
// Substitute receives the complete reordered run and returns the run after
// substitution. Implementations must not remove semantic content and must
// accept their own output as input, as they are called again when they
// report [Retry].
type GlyphSubstitution interface {
	Substitute(run []rune) ([]rune, Status)
}

// SubstitutionFunc adapts a function to the GlyphSubstitution interface.
type SubstitutionFunc func(run []rune) ([]rune, Status)

// Substitute calls f(run).
func (f SubstitutionFunc) Substitute(run []rune) ([]rune, Status) {
	return f(run)
}

// NoSubstitution is a substitution stage which leaves the run alone.
type NoSubstitution struct{}

// Substitute returns run unchanged.
func (NoSubstitution) Substitute(run []rune) ([]rune, Status) {
	return run, Done
}
