package indic

import (
	"sync"

	gtlang "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// SelectionContext carries the segment metadata used to select a profile.
type SelectionContext struct {
	Direction bidi.Direction
	Script    language.Script // unicode.org/iso15924/iso15924-codes.html
}

// Registry maps script identifiers to profiles. A registry is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[language.Script]*Profile
	order    []*Profile // registration order, for detection
}

// NewRegistry creates a registry holding the given profiles. Nil entries
// are ignored.
func NewRegistry(profiles ...*Profile) *Registry {
	reg := &Registry{profiles: make(map[language.Script]*Profile)}
	for _, p := range profiles {
		reg.Register(p)
	}
	return reg
}

// Register adds a profile, replacing any profile registered for the same
// script.
func (reg *Registry) Register(p *Profile) {
	if p == nil {
		return
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if old, ok := reg.profiles[p.script]; ok {
		tracer().Infof("replacing profile %s for script %s", old.name, p.script)
		for i, q := range reg.order {
			if q == old {
				reg.order = append(reg.order[:i], reg.order[i+1:]...)
				break
			}
		}
	}
	reg.profiles[p.script] = p
	reg.order = append(reg.order, p)
}

// Lookup returns the profile for an ISO 15924 script identifier.
func (reg *Registry) Lookup(script language.Script) (*Profile, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	p, ok := reg.profiles[script]
	return p, ok
}

// Select returns the profile matching ctx. Indic profiles are written left
// to right, other directions never match.
func (reg *Registry) Select(ctx SelectionContext) (*Profile, bool) {
	if ctx.Direction != bidi.LeftToRight {
		return nil, false
	}
	return reg.Lookup(ctx.Script)
}

// Detect returns the profile for the first code point of text whose Unicode
// script has a registered profile.
func (reg *Registry) Detect(text []rune) (*Profile, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	for _, r := range text {
		s := gtlang.LookupScript(r)
		if s == gtlang.Common || s == gtlang.Inherited || s == gtlang.Unknown {
			continue
		}
		for _, p := range reg.order {
			if p.textScript == s || p.InBlock(r) {
				return p, true
			}
		}
	}
	return nil, false
}

// Scripts lists the scripts of all registered profiles in registration order.
func (reg *Registry) Scripts() []language.Script {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	scripts := make([]language.Script, len(reg.order))
	for i, p := range reg.order {
		scripts[i] = p.script
	}
	return scripts
}
