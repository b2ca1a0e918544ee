package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/indicshape/internal/fontload"
	"github.com/npillmayer/indicshape/otreorder"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runReorderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	profile := mustSelectProfile(flags["script"], input)
	pipe := otreorder.New(profile, otreorder.Options{
		Strict:           mustFlagBool(flags["strict"], "strict"),
		KeepTrailingZWNJ: mustFlagBool(flags["keep-zwnj"], "keep-zwnj"),
	})
	res, err := pipe.Reorder(input)
	if err != nil {
		fatalf("reorder failed: %v", err)
	}
	if !res.Applied {
		pterm.Info.Printf("no %s code points, text unchanged\n", profile.Name())
	}
	data := [][]string{{"Input", "Output", "Base", "Reph", "Positions"}}
	for _, cl := range res.Clusters {
		reph := "-"
		if cl.Reph >= 0 {
			reph = strconv.Itoa(cl.Reph)
		}
		data = append(data, []string{
			formatCodepoints(input[cl.Start:cl.End]),
			formatCodepoints(cl.Text),
			strconv.Itoa(cl.Base),
			reph,
			formatPositions(cl.Positions),
		})
	}
	if len(res.Clusters) > 0 {
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	fmt.Println(formatCodepoints(res.Text))
	fontPath := mustFlagString(flags["font"], "font")
	if fontPath == "" {
		return
	}
	f, err := fontload.Open(fontPath)
	if err != nil {
		fatalf("cannot load font %s: %v", fontPath, err)
	}
	gids, missing, err := f.Glyphs(res.Text)
	if err != nil {
		fatalf("%v", err)
	}
	parts := make([]string, len(gids))
	for i, gid := range gids {
		parts[i] = strconv.Itoa(int(gid))
	}
	fmt.Printf("%s: [%s]\n", f.Name, strings.Join(parts, "|"))
	if len(missing) > 0 {
		pterm.Warning.Printf("no glyph for %s\n", formatCodepoints(missing))
	}
}

func formatPositions(pos []indic.Position) string {
	parts := make([]string, len(pos))
	for i, p := range pos {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
