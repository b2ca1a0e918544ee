package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/indicshape"
	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/indicshape/internal/cpinput"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

func main() {
	commando.
		SetExecutableName("indic-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for testing Indic syllable segmentation and reordering.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("reorder").
		SetDescription("Reorder text and print the code points in shaping order.").
		SetShortDescription("reorder text").
		AddArgument("text...", "text to reorder (variadic argument parts joined by comma by commando)", "").
		AddFlag("script,s", "script (ISO 15924, e.g. Beng); empty to detect", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0995,U+09BF)", commando.String, "-").
		AddFlag("font,f", "OpenType font file to map reordered code points to glyphs", commando.String, "-").
		AddFlag("keep-zwnj,k", "keep a ZWNJ terminating a syllable", commando.Bool, nil).
		AddFlag("strict", "panic on failed consistency checks", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runReorderCommand)

	commando.
		Register("syllables").
		SetDescription("Print the syllables of a text.").
		SetShortDescription("segment text").
		AddArgument("text...", "text to segment", "").
		AddFlag("script,s", "script (ISO 15924, e.g. Beng); empty to detect", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runSyllablesCommand)

	commando.
		Register("classify").
		SetDescription("Print form and position of every code point of a text.").
		SetShortDescription("classify code points").
		AddArgument("text...", "text to classify", "").
		AddFlag("script,s", "script (ISO 15924, e.g. Beng); empty to detect", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runClassifyCommand)

	commando.Parse(nil)
}

// --- Helpers ---------------------------------------------------------------

func setupTracing(verbose bool) {
	level := "Error"
	if verbose {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.indic":         level,
		"trace.indic.shape":   level,
		"trace.indic.reorder": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func mustSelectProfile(flag commando.FlagValue, input []rune) *indic.Profile {
	reg := indicshape.DefaultRegistry()
	s := mustFlagString(flag, "script")
	if s == "" {
		if p, ok := reg.Detect(input); ok {
			return p
		}
		fatalf("cannot detect script of input; use --script")
	}
	scr, err := language.ParseScript(s)
	if err != nil {
		fatalf("invalid script %q: %v", s, err)
	}
	p, ok := reg.Select(indic.SelectionContext{Direction: bidi.LeftToRight, Script: scr})
	if !ok {
		fatalf("no profile for script %s (have %v)", scr, reg.Scripts())
	}
	return p
}

func parseInput(textArg commando.ArgValue, cpFlag commando.FlagValue) ([]rune, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		return cpinput.Parse(cp)
	}
	text := strings.ReplaceAll(textArg.Value, ",", " ")
	if text == "" {
		return nil, errors.New("input text is empty")
	}
	return []rune(text), nil
}

func formatCodepoints(text []rune) string {
	parts := make([]string, len(text))
	for i, r := range text {
		parts[i] = fmt.Sprintf("%04X", r)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "indic-tools: "+format+"\n", args...)
	os.Exit(1)
}
