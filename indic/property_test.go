package indic_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/indicshape/indic/otbengali"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// alphabet for generated runs; joiners are listed twice to make them frequent
var alphabet = []rune{
	ka, kha, ra, ya, ba, otbengali.LetterAssameseRa,
	hal, hal, otbengali.SignNukta,
	aa, ii, uu, ee, oo, au,
	anu, otbengali.SignCandrabindu, otbengali.AULengthMark,
	otbengali.LetterA, otbengali.LetterE, otbengali.LetterI,
	indic.ZWJ, indic.ZWJ, indic.ZWNJ, indic.ZWNJ,
}

func randomRun(rnd *rand.Rand) []rune {
	run := make([]rune, 1+rnd.IntN(12))
	for i := range run {
		run[i] = alphabet[rnd.IntN(len(alphabet))]
	}
	return run
}

func TestShapeGeneratedSyllables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indic.shape")
	defer teardown()
	tracing.Select("indic.shape").SetTraceLevel(tracing.LevelError)
	//
	p := otbengali.Profile()
	rnd := rand.New(rand.NewPCG(4711, 2024))
	count := 0
	for range 3000 {
		text := randomRun(rnd)
		for start, end := range indic.Syllables(p, text) {
			if !p.InBlock(text[start]) {
				continue
			}
			in := text[start:end]
			syl, err := indic.ShapeSyllable(p, in, indic.ShapeOptions{Strict: true})
			if err != nil {
				t.Fatalf("syllable %U: %v", in, err)
			}
			checkReordered(t, p, in, syl)
			count++
		}
	}
	t.Logf("shaped %d generated syllables", count)
}

// checkReordered asserts that syl.Text is a permutation of in, with split
// matras replaced by their parts and a trailing ZWNJ removed.
func checkReordered(t *testing.T, p *indic.Profile, in []rune, syl indic.Syllable) {
	t.Helper()
	stripped := len(in) > 1 && in[len(in)-1] == indic.ZWNJ
	if syl.Stripped != stripped {
		t.Errorf("syllable %U: expected stripped=%v", in, stripped)
	}
	expected := slices.Clone(in)
	if stripped {
		expected = expected[:len(expected)-1]
	}
	growth := 0
	for _, sm := range p.Splits() {
		split := count(expected, sm.Matra) - count(syl.Text, sm.Matra)
		if split < 0 {
			t.Errorf("syllable %U: output %U has extra %#U", in, syl.Text, sm.Matra)
			return
		}
		for range split {
			i := slices.Index(expected, sm.Matra)
			expected = slices.Delete(expected, i, i+1)
			for _, part := range sm.Parts {
				if part != 0 {
					expected = append(expected, part)
				}
			}
		}
		growth += split * sm.Growth()
	}
	strippedCount := 0
	if stripped {
		strippedCount = 1
	}
	if len(syl.Text) != len(in)+growth-strippedCount {
		t.Errorf("syllable %U: length of %U is not %d+%d-%d", in, syl.Text, len(in), growth, strippedCount)
	}
	a, b := slices.Clone(expected), slices.Clone(syl.Text)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("syllable %U: output %U is not a permutation of the input", in, syl.Text)
	}
	if len(syl.Positions) != len(syl.Text) {
		t.Errorf("syllable %U: %d positions for %d code points", in, len(syl.Positions), len(syl.Text))
	}
	if syl.Base < 0 || syl.Base >= len(syl.Text) {
		t.Errorf("syllable %U: base %d out of range", in, syl.Base)
	}
	if syl.Reph >= len(syl.Text) {
		t.Errorf("syllable %U: Reph %d out of range", in, syl.Reph)
	}
}

func count(text []rune, r rune) int {
	n := 0
	for _, c := range text {
		if c == r {
			n++
		}
	}
	return n
}
