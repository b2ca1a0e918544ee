package otreorder

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReorderUTF16 reorders text given as little-endian UTF-16 code units, as
// produced by many platform text APIs.
//
// It returns nil and no error if text has no code point of the pipeline's
// script; callers then use text unchanged. Otherwise the reordered run is
// returned UTF-16 encoded; its byte length may exceed len(text) because of
// split matras.
//
// Decoding is lossy for ill-formed input: an unpaired surrogate is replaced
// by U+FFFD and does not survive the round trip.
func (pipe *Pipeline) ReorderUTF16(text []byte) ([]byte, error) {
	decoded, err := utf16LE.NewDecoder().Bytes(text)
	if err != nil {
		return nil, err
	}
	res, err := pipe.Reorder([]rune(string(decoded)))
	if err != nil || !res.Applied {
		return nil, err
	}
	return utf16LE.NewEncoder().Bytes([]byte(string(res.Text)))
}
