package otreorder

import (
	"io"
	"slices"

	"github.com/npillmayer/indicshape/indic"
)

// DefaultMaxRetries is the number of times a substitution stage reporting
// [Retry] is invoked again.
const DefaultMaxRetries = 10

// Options configures a pipeline. Zero values select defaults.
type Options struct {
	// Substitution is the stage run on the reordered text. If nil, the
	// reordered text is final.
	Substitution GlyphSubstitution
	// MaxRetries limits re-invocations of a substitution stage reporting
	// Retry. If zero, DefaultMaxRetries is used; negative values disable
	// re-invocation.
	MaxRetries int
	// Strict panics on failed internal consistency checks instead of
	// passing the run through unshaped.
	Strict bool
	// KeepTrailingZWNJ keeps a ZWNJ terminating a syllable. By default it
	// is dropped from the output.
	KeepTrailingZWNJ bool
}

func (o Options) maxRetries() int {
	switch {
	case o.MaxRetries == 0:
		return DefaultMaxRetries
	case o.MaxRetries < 0:
		return 0
	}
	return o.MaxRetries
}

// Pipeline reorders runs of text for one script profile. A pipeline holds no
// per-call state and may be used concurrently.
type Pipeline struct {
	profile *indic.Profile
	opts    Options
}

// New creates a pipeline for profile p. It panics if p is nil.
func New(p *indic.Profile, opts Options) *Pipeline {
	if p == nil {
		panic(ErrNilProfile)
	}
	return &Pipeline{profile: p, opts: opts}
}

// Select creates a pipeline for the profile of reg matching ctx.
func Select(reg *indic.Registry, ctx indic.SelectionContext, opts Options) (*Pipeline, error) {
	if reg == nil {
		return nil, ErrNilProfile
	}
	p, ok := reg.Select(ctx)
	if !ok {
		return nil, ErrNoMatchingProfile
	}
	return New(p, opts), nil
}

// Profile returns the script profile of the pipeline.
func (pipe *Pipeline) Profile() *indic.Profile {
	return pipe.profile
}

// Cluster describes where one syllable of the input ended up in the output.
type Cluster struct {
	Start, End int // span of the syllable in the input
	Offset     int // start of the reordered syllable in the output, before substitution
	indic.Syllable
}

// Result is the outcome of [Pipeline.Reorder].
type Result struct {
	// Text is the reordered run. If Applied is false or reordering failed, it
	// is the input.
	Text []rune
	// Applied is false if the input has no code point of the profile's script.
	Applied bool
	// Clusters lists the reordered syllables.
	Clusters []Cluster
	// SubstitutionCalls counts the invocations of the substitution stage.
	SubstitutionCalls int
	// RetryExhausted is set if the substitution stage still asked for a retry
	// when the retry limit was reached. Text holds the output of the last
	// invocation; it is accepted as final.
	RetryExhausted bool
}

// Reorder reorders a run of text.
//
// Code points outside the script block are copied verbatim, script runs are
// split into syllables and each syllable is reordered. The result is passed
// through the substitution stage.
//
// If a syllable cannot be reordered, Reorder returns the input in
// Result.Text together with an [*indic.ShapingError]. If the substitution
// stage fails, it returns [ErrSubstitutionFatal].
func (pipe *Pipeline) Reorder(text []rune) (Result, error) {
	p := pipe.profile
	if !p.ContainsScript(text) {
		tracer().Debugf("no %s code point in run of length %d", p.Name(), len(text))
		return Result{Text: text}, nil
	}
	shapeOpts := indic.ShapeOptions{
		Strict:           pipe.opts.Strict,
		KeepTrailingZWNJ: pipe.opts.KeepTrailingZWNJ,
	}
	out := make([]rune, 0, len(text)+p.MaxGrowth(text)+1)
	var clusters []Cluster
	start := 0
	for start < len(text) {
		if !p.InBlock(text[start]) {
			out = append(out, text[start])
			start++
			continue
		}
		end := indic.NextBoundary(p, text, start, len(text))
		syl, err := indic.ShapeSyllable(p, text[start:end], shapeOpts)
		if err != nil {
			tracer().Errorf("cannot reorder syllable %U: %v", text[start:end], err)
			return Result{Text: text}, err
		}
		clusters = append(clusters, Cluster{Start: start, End: end, Offset: len(out), Syllable: syl})
		out = append(out, syl.Text...)
		start = end
	}
	res := Result{Applied: true, Clusters: clusters}
	var err error
	if res.Text, err = pipe.substitute(out, &res); err != nil {
		return Result{Text: text, SubstitutionCalls: res.SubstitutionCalls}, err
	}
	tracer().Debugf("reordered %d code points into %d in %d syllables",
		len(text), len(res.Text), len(clusters))
	return res, nil
}

// substitute drives the substitution stage until it is done, fails, or the
// retry limit is reached.
func (pipe *Pipeline) substitute(run []rune, res *Result) ([]rune, error) {
	gsub := pipe.opts.Substitution
	if gsub == nil {
		return run, nil
	}
	run, status := gsub.Substitute(run)
	res.SubstitutionCalls++
	for retries := pipe.opts.maxRetries(); status == Retry && retries > 0; retries-- {
		run, status = gsub.Substitute(run)
		res.SubstitutionCalls++
	}
	switch status {
	case Fatal:
		tracer().Errorf("glyph substitution failed after %d call(s)", res.SubstitutionCalls)
		return nil, ErrSubstitutionFatal
	case Retry:
		// TODO: decide whether an exhausted retry loop should fail the run;
		// for now the last output is accepted and flagged.
		tracer().Infof("glyph substitution still requests retry after %d calls, accepting output",
			res.SubstitutionCalls)
		res.RetryExhausted = true
	}
	return run, nil
}

// ReorderBuffer reorders text into out and returns the length of the
// reordered run. If out has room left, a 0 terminator is written after the
// run; it is not counted.
//
// A result of 0 tells the caller to use text unchanged: either text has no
// code point of the profile's script (err is nil, out is untouched), or
// reordering failed (err is non-nil). Callers should size out with
// len(text)+Profile().MaxGrowth(text)+1.
func (pipe *Pipeline) ReorderBuffer(text []rune, out []rune) (int, error) {
	res, err := pipe.Reorder(text)
	if err != nil || !res.Applied {
		return 0, err
	}
	if len(res.Text) > len(out) {
		return 0, ErrBufferTooSmall
	}
	n := copy(out, res.Text)
	if n < len(out) {
		out[n] = 0
	}
	return n, nil
}

// ReorderString is a convenience variant of [Pipeline.Reorder] for strings.
// It returns s unchanged if s contains no code point of the pipeline's
// script or if reordering fails.
func (pipe *Pipeline) ReorderString(s string) (string, error) {
	res, err := pipe.Reorder([]rune(s))
	if err != nil || !res.Applied {
		return s, err
	}
	return string(res.Text), nil
}

// ReorderRunes reads src until io.EOF and reorders the complete input.
func (pipe *Pipeline) ReorderRunes(src io.RuneReader) (Result, error) {
	var text []rune
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return Result{Text: text}, err
		}
		text = append(text, r)
	}
	return pipe.Reorder(slices.Clip(text))
}
