package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/indicshape/indic"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runSyllablesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	profile := mustSelectProfile(flags["script"], input)
	data := [][]string{{"Span", "Code points", "Forms"}}
	for start, end := range indic.Syllables(profile, input) {
		forms := make([]string, 0, end-start)
		for _, r := range input[start:end] {
			forms = append(forms, profile.Form(r).String())
		}
		data = append(data, []string{
			fmt.Sprintf("%d..%d", start, end),
			formatCodepoints(input[start:end]),
			strings.Join(forms, " "),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runClassifyCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	profile := mustSelectProfile(flags["script"], input)
	data := [][]string{{"Code point", "Name", "Form", "Position"}}
	for _, r := range input {
		data = append(data, []string{
			fmt.Sprintf("%U", r),
			runenames.Name(r),
			profile.Form(r).String(),
			profile.Position(r).String(),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
