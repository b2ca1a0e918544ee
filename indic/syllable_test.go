package indic_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/indicshape/indic/otbengali"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type SyllableTestEnviron struct {
	suite.Suite
	bengali *indic.Profile
}

// listen for 'go test' command --> run test methods
func TestSyllableFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indic.shape")
	defer teardown()
	suite.Run(t, new(SyllableTestEnviron))
}

// run once, before test suite methods
func (env *SyllableTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.bengali = otbengali.Profile()
	tracing.Select("indic.shape").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *SyllableTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *SyllableTestEnviron) TestShapeSyllableScenarios() {
	P := func(pos ...indic.Position) []indic.Position { return pos }
	scenarios := []struct {
		name string
		in   []rune
		out  []rune
		pos  []indic.Position
		base int
		reph int
	}{
		{"single consonant", []rune{ka}, []rune{ka}, P(indic.Base), 0, -1},
		{"conjunct", []rune{ka, hal, ka}, []rune{ka, hal, ka},
			P(indic.Pre, indic.Pre, indic.Base), 2, -1},
		{"halant stays before last consonant", []rune{ka, hal, ka, uu}, []rune{ka, hal, ka, uu},
			P(indic.Pre, indic.Pre, indic.Base, indic.Below), 2, -1},
		{"Ya-phala", []rune{ka, hal, ya}, []rune{ka, hal, ya},
			P(indic.Base, indic.Inherit, indic.Post), 0, -1},
		{"Ba-phala", []rune{ka, hal, ba}, []rune{ka, hal, ba},
			P(indic.Base, indic.Inherit, indic.Below), 0, -1},
		{"halant moves to last consonant", []rune{ka, hal, otbengali.LetterAssameseRa},
			[]rune{ka, otbengali.LetterAssameseRa, hal},
			P(indic.Base, indic.Below, indic.Inherit), 0, -1},
		{"pre-base matra", []rune{ka, ii}, []rune{ii, ka}, P(indic.Pre, indic.Base), 1, -1},
		{"pre-base matra with mark", []rune{ka, ii, anu}, []rune{ii, ka, anu},
			P(indic.Pre, indic.Base, indic.Post), 1, -1},
		{"below matra first", []rune{ka, aa, uu}, []rune{ka, uu, aa},
			P(indic.Base, indic.Below, indic.Post), 0, -1},
		{"split O", []rune{ka, oo}, []rune{ee, ka, aa},
			P(indic.Pre, indic.Base, indic.Post), 1, -1},
		{"split AU", []rune{ka, au}, []rune{ee, ka, otbengali.AULengthMark},
			P(indic.Pre, indic.Base, indic.Post), 1, -1},
		{"Reph", []rune{ra, hal, ka, aa}, []rune{ka, ra, hal, aa},
			P(indic.Base, indic.Reph, indic.Inherit, indic.Post), 0, 1},
		{"Reph with split matra", []rune{ra, hal, ka, oo}, []rune{ee, ka, ra, hal, aa},
			P(indic.Pre, indic.Base, indic.Reph, indic.Inherit, indic.Post), 1, 2},
		{"pre-base matra before trailing ZWJ", []rune{ba, ee, indic.ZWJ}, []rune{ee, ba, indic.ZWJ},
			P(indic.Pre, indic.Pre, indic.Base), 2, -1},
		{"pre-base I before trailing ZWJ", []rune{ka, ii, indic.ZWJ}, []rune{ii, ka, indic.ZWJ},
			P(indic.Pre, indic.Pre, indic.Base), 2, -1},
		{"Reph before trailing ZWJ", []rune{ra, hal, kha, aa, indic.ZWJ}, []rune{kha, aa, ra, hal, indic.ZWJ},
			P(indic.Pre, indic.Pre, indic.Reph, indic.Inherit, indic.None), 2, 2},
	}
	for _, sc := range scenarios {
		input := slices.Clone(sc.in)
		syl, err := indic.ShapeSyllable(env.bengali, input, indic.ShapeOptions{Strict: true})
		env.Require().NoError(err, sc.name)
		env.Equal(sc.out, syl.Text, "%s: reordered text", sc.name)
		env.Equal(sc.pos, syl.Positions, "%s: positions", sc.name)
		env.Equal(sc.base, syl.Base, "%s: base", sc.name)
		env.Equal(sc.reph, syl.Reph, "%s: Reph", sc.name)
		env.Equal(sc.in, input, "%s: input must not be modified", sc.name)
		env.False(syl.Stripped, sc.name)
	}
}

func (env *SyllableTestEnviron) TestResolveBaseMovesReph() {
	syl, err := indic.ResolveBase(env.bengali, []rune{ra, hal, ka, aa}, indic.ShapeOptions{})
	env.Require().NoError(err)
	env.Equal([]rune{ka, aa, ra, hal}, syl.Text, "Ra+Halant should follow the post-base matra")
	env.Equal(0, syl.Base)
	env.Equal(2, syl.Reph)
	env.Nil(syl.Positions)
	//
	syl, err = indic.ResolveBase(env.bengali, []rune{ra, hal, ka}, indic.ShapeOptions{})
	env.Require().NoError(err)
	env.Equal([]rune{ka, ra, hal}, syl.Text, "Ra+Halant should follow the base")
	env.Equal(1, syl.Reph)
}

func (env *SyllableTestEnviron) TestRaBeforeControlIsNoReph() {
	in := []rune{ra, hal, indic.ZWJ, ka}
	syl, err := indic.ShapeSyllable(env.bengali, in, indic.ShapeOptions{})
	env.Require().NoError(err)
	env.Equal(-1, syl.Reph)
	env.Equal(3, syl.Base)
	env.Equal(in, syl.Text)
}

func (env *SyllableTestEnviron) TestOutputIsPermutation() {
	inputs := [][]rune{
		{ra, hal, ka, hal, ya, ii, anu},
		{ka, otbengali.SignNukta, hal, ka, uu, otbengali.SignCandrabindu},
		{ra, hal, ka, hal, ba, aa},
		{ka, hal, ka, hal, ka, uu},
	}
	for _, in := range inputs {
		end := indic.NextBoundary(env.bengali, in, 0, len(in))
		syl, err := indic.ShapeSyllable(env.bengali, in[:end], indic.ShapeOptions{Strict: true})
		env.Require().NoError(err)
		a, b := slices.Clone(in[:end]), slices.Clone(syl.Text)
		slices.Sort(a)
		slices.Sort(b)
		env.Equal(a, b, "output of %U is not a permutation of its input", in[:end])
		env.Len(syl.Positions, len(syl.Text))
		env.Equal(indic.Base, syl.Positions[syl.Base])
	}
}

func (env *SyllableTestEnviron) TestSplitGrowth() {
	syl, err := indic.ShapeSyllable(env.bengali, []rune{ka, hal, ka, au, anu}, indic.ShapeOptions{})
	env.Require().NoError(err)
	env.Len(syl.Text, 6, "a two-part matra grows the syllable by one")
	env.Equal(ee, syl.Text[0])
	env.Equal(2, env.bengali.MaxGrowth([]rune{ka, au, ka, oo, ka, aa}))
}

func (env *SyllableTestEnviron) TestTrailingZWNJ() {
	in := []rune{ka, ii, indic.ZWNJ}
	syl, err := indic.ShapeSyllable(env.bengali, in, indic.ShapeOptions{})
	env.Require().NoError(err)
	env.Equal([]rune{ii, ka}, syl.Text)
	env.True(syl.Stripped)
	//
	syl, err = indic.ShapeSyllable(env.bengali, in, indic.ShapeOptions{KeepTrailingZWNJ: true})
	env.Require().NoError(err)
	env.Equal([]rune{ii, ka, indic.ZWNJ}, syl.Text)
	env.Equal([]indic.Position{indic.Pre, indic.Base, indic.None}, syl.Positions)
	//
	syl, err = indic.ShapeSyllable(env.bengali, []rune{indic.ZWNJ}, indic.ShapeOptions{})
	env.Require().NoError(err)
	env.Equal([]rune{indic.ZWNJ}, syl.Text, "a lone ZWNJ is kept")
	env.False(syl.Stripped)
}

func (env *SyllableTestEnviron) TestEmptySyllable() {
	syl, err := indic.ShapeSyllable(env.bengali, nil, indic.ShapeOptions{})
	env.NoError(err)
	env.Empty(syl.Text)
	env.Equal(-1, syl.Reph)
}

func (env *SyllableTestEnviron) TestMalformedMatra() {
	def := otbengali.Definition()
	def.Splits = nil
	p, err := indic.NewProfile(def)
	env.Require().NoError(err)
	_, err = indic.ShapeSyllable(p, []rune{ka, oo}, indic.ShapeOptions{})
	env.Require().Error(err)
	env.True(errors.Is(err, indic.ErrMalformed), "expected malformed matra error, have %v", err)
	var serr *indic.ShapingError
	env.Require().True(errors.As(err, &serr))
	env.Equal(oo, serr.CodePoint)
	env.Equal(1, serr.Offset)
}

func (env *SyllableTestEnviron) TestSplitMatraDirect() {
	buf := make([]rune, 2, 8)
	buf[0], buf[1] = ka, au
	grown, err := env.bengali.SplitMatra(buf, 1)
	env.Require().NoError(err)
	env.Equal([]rune{ka, ee, otbengali.AULengthMark}, grown)
	_, err = env.bengali.SplitMatra(buf, 5)
	env.True(errors.Is(err, indic.ErrBroken))
	_, err = env.bengali.SplitMatra([]rune{ka, aa}, 1)
	env.True(errors.Is(err, indic.ErrMalformed))
}
