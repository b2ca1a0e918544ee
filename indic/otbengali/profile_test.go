package otbengali

import (
	"strings"
	"testing"

	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/runenames"
)

func TestProfileIsShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indic.shape")
	defer teardown()
	//
	p := Profile()
	if p != Profile() {
		t.Errorf("expected profile to be built once")
	}
	if p.Name() != "bengali" || p.Script().String() != "Beng" {
		t.Errorf("unexpected profile %s", p)
	}
}

func TestTablesMatchCharacterNames(t *testing.T) {
	for r := blockFirst; r <= blockLast; r++ {
		name := runenames.Name(r)
		f := bengaliForms[r-blockFirst]
		switch {
		case f == indic.Consonant:
			if !strings.Contains(name, "LETTER") {
				t.Errorf("%#U (%s) classified as consonant", r, name)
			}
		case f == indic.Matra:
			if !strings.Contains(name, "VOWEL SIGN") {
				t.Errorf("%#U (%s) classified as matra", r, name)
			}
		case f == indic.Halant:
			if !strings.Contains(name, "VIRAMA") {
				t.Errorf("%#U (%s) classified as halant", r, name)
			}
		}
	}
}

func TestSplitTableIsSorted(t *testing.T) {
	for i := 1; i < len(bengaliSplits); i++ {
		if bengaliSplits[i-1].Matra >= bengaliSplits[i].Matra {
			t.Errorf("split table not sorted at index %d", i)
		}
	}
	for _, sm := range bengaliSplits {
		if bengaliPositions[sm.Matra-blockFirst] != indic.Split {
			t.Errorf("%#U is in the split table but not classified as split", sm.Matra)
		}
	}
}
