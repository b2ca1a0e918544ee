// Package cpinput parses code point lists entered on the command line.
package cpinput

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a list of hexadecimal code points separated by commas or
// white space. Each code point may carry a "U+" or "0x" prefix, in either
// case.
func Parse(list string) ([]rune, error) {
	parts := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		hex := p
		switch {
		case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"),
			strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
			hex = hex[2:]
		}
		u, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid codepoint %q: %w", p, err)
		}
		if u > 0x10FFFF {
			return nil, fmt.Errorf("invalid codepoint %q: out of range", p)
		}
		out = append(out, rune(u))
	}
	return out, nil
}
