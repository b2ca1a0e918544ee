package cpinput

import (
	"slices"
	"testing"
)

func TestParseAcceptsPrefixes(t *testing.T) {
	for _, list := range []string{
		"U+0995 U+09BF",
		"u+0995,u+09bf",
		"0x0995, 0X09BF",
		"0995\t09BF\n",
		"U+0995,0x09BF",
	} {
		runes, err := Parse(list)
		if err != nil {
			t.Errorf("%q: unexpected error %v", list, err)
			continue
		}
		if !slices.Equal(runes, []rune{0x0995, 0x09BF}) {
			t.Errorf("%q: expected [U+0995 U+09BF], have %U", list, runes)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, list := range []string{"U+", "0xZZ", "U+0995 Ka", "110000"} {
		if _, err := Parse(list); err == nil {
			t.Errorf("%q: expected error", list)
		}
	}
	if runes, err := Parse("  "); err != nil || len(runes) != 0 {
		t.Errorf("expected empty list for blank input, have %U, %v", runes, err)
	}
}
