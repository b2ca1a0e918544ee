package fontload

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestGlyphsReportsMissing(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("parsed font %s", f.Name)
	gids, missing, err := f.Glyphs([]rune{'a', 0x0995, 'b'})
	if err != nil {
		t.Fatal(err)
	}
	if len(gids) != 3 || gids[0] == 0 || gids[2] == 0 {
		t.Errorf("expected glyphs for Latin letters, have %v", gids)
	}
	if len(missing) != 1 || missing[0] != 0x0995 {
		t.Errorf("expected Bengali Ka to be missing, have %U", missing)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Errorf("expected error for invalid font data")
	}
	if _, err := Open("does/not/exist.ttf"); err == nil {
		t.Errorf("expected error for missing file")
	}
}
