package otbengali

import "github.com/npillmayer/indicshape/indic"

const (
	blockFirst rune = 0x0980
	blockLast  rune = 0x09FF
)

// short names to keep the tables readable
const (
	xx = indic.Invalid
	uu = indic.UnknownForm
	co = indic.Consonant
	nu = indic.Nukta
	ha = indic.Halant
	ma = indic.Matra
	vm = indic.VowelMark
	iv = indic.IndependentVowel
	ot = indic.Other
)

var bengaliForms = [blockLast - blockFirst + 1]indic.Form{
	/* 0980 */ xx, vm, vm, vm, xx, iv, iv, iv, iv, iv, iv, iv, iv, xx, xx, iv,
	/* 0990 */ iv, xx, xx, iv, iv, co, co, co, co, co, co, co, co, co, co, co,
	/* 09A0 */ co, co, co, co, co, co, co, co, co, xx, co, co, co, co, co, co,
	/* 09B0 */ co, xx, co, xx, xx, xx, co, co, co, co, uu, uu, nu, ot, ma, ma,
	/* 09C0 */ ma, ma, ma, ma, ma, xx, xx, ma, ma, xx, xx, ma, ma, ha, co, uu,
	/* 09D0 */ xx, xx, xx, xx, xx, xx, xx, vm, xx, xx, xx, xx, co, co, xx, co,
	/* 09E0 */ iv, iv, vm, vm, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot,
	/* 09F0 */ co, co, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot, ot,
}

const (
	no = indic.None
	pr = indic.Pre
	ab = indic.Above
	be = indic.Below
	po = indic.Post
	sp = indic.Split
)

var bengaliPositions = [blockLast - blockFirst + 1]indic.Position{
	/* 0980 */ no, ab, po, po, no, no, no, no, no, no, no, no, no, no, no, no,
	/* 0990 */ no, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no,
	/* 09A0 */ no, no, no, no, no, no, no, no, no, no, no, no, be, no, no, po,
	/* 09B0 */ be, no, no, no, no, no, no, no, no, no, no, no, be, no, po, pr,
	/* 09C0 */ po, be, be, be, be, no, no, pr, pr, no, no, sp, sp, be, no, no,
	/* 09D0 */ no, no, no, no, no, no, no, po, no, no, no, no, no, no, no, no,
	/* 09E0 */ no, no, be, be, no, no, no, no, no, no, no, no, no, no, no, no,
	/* 09F0 */ be, no, no, no, no, no, no, no, no, no, no, no, no, no, no, no,
}

// bengaliOrder is the sequence in which post-base code points are arranged.
var bengaliOrder = []indic.OrderingRule{
	{Form: indic.Consonant, Position: indic.Below},
	{Form: indic.Matra, Position: indic.Below},
	{Form: indic.Matra, Position: indic.Above},
	{Form: indic.Consonant, Position: indic.Reph},
	{Form: indic.VowelMark, Position: indic.Above},
	{Form: indic.Consonant, Position: indic.Post},
	{Form: indic.Matra, Position: indic.Post},
	{Form: indic.VowelMark, Position: indic.Post},
}

// Named code points of the Bengali block.
const (
	LetterA          rune = 0x0985
	LetterI          rune = 0x0987
	LetterE          rune = 0x098F
	LetterKa         rune = 0x0995
	LetterKha        rune = 0x0996
	LetterBa         rune = 0x09AC
	LetterYa         rune = 0x09AF
	LetterRa         rune = 0x09B0
	LetterAssameseRa rune = 0x09F0
	SignNukta        rune = 0x09BC
	SignAA           rune = 0x09BE
	SignI            rune = 0x09BF
	SignU            rune = 0x09C1
	SignE            rune = 0x09C7
	SignO            rune = 0x09CB
	SignAU           rune = 0x09CC
	SignVirama       rune = 0x09CD
	AULengthMark     rune = 0x09D7
	SignCandrabindu  rune = 0x0981
	SignAnusvara     rune = 0x0982
)

// bengaliSplits is sorted by matra.
var bengaliSplits = []indic.SplitMatra{
	{Matra: SignO, Parts: [3]rune{SignE, SignAA, 0}},
	{Matra: SignAU, Parts: [3]rune{SignE, AULengthMark, 0}},
}
