// Package fontload maps reordered code points to the glyphs of an OpenType
// font. It is used by the command line tools to check whether a font covers
// the output of the reordering step.
package fontload

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Font is an SFNT font together with its full name.
type Font struct {
	Name string
	sfnt *sfnt.Font
	buf  sfnt.Buffer
}

// Open reads and parses an OpenType font (TTF or OTF) from a file.
func Open(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses an OpenType font (TTF or OTF) from memory.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = "<unnamed>"
	}
	return &Font{Name: name, sfnt: f}, nil
}

// Glyphs maps a run of code points to glyphs using the font's cmap. Code
// points without a glyph map to 0 (.notdef) and are returned in missing.
//
// A Font is not safe for concurrent use.
func (f *Font) Glyphs(run []rune) (gids []sfnt.GlyphIndex, missing []rune, err error) {
	gids = make([]sfnt.GlyphIndex, len(run))
	for i, r := range run {
		if gids[i], err = f.sfnt.GlyphIndex(&f.buf, r); err != nil {
			return nil, nil, fmt.Errorf("fontload: cannot map %#U: %w", r, err)
		}
		if gids[i] == 0 {
			missing = append(missing, r)
		}
	}
	return gids, missing, nil
}
