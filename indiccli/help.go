package main

import "github.com/pterm/pterm"

func printHelp() {
	pterm.Println("Enter text to reorder it. Commands:")
	data := [][]string{
		{"Command", "Description"},
		{":script <ISO 15924>", "select script profile, e.g. :script Beng"},
		{":cp <codepoints>", "reorder code points, e.g. :cp U+09B0 U+09CD 0x0995 09BE"},
		{":classify <text>", "print form and position of code points"},
		{":zwnj on|off", "keep a ZWNJ terminating a syllable"},
		{":strict on|off", "panic on failed consistency checks"},
		{":names on|off", "print character names instead of code points"},
		{":quit", "leave the CLI"},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
