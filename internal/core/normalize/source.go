package normalize

import "unicode/utf8"

// Raw is one input character with its byte position
type Raw struct {
	Offset int  // byte offset of the first byte in the input
	Rune   rune // decoded character
	Size   int  // encoded length in bytes
}

// Source yields raw characters in input order with strictly increasing offsets.
// Sources that can fail implement Err; the normalizer forwards it
type Source interface {
	Next() (Raw, bool)
}

// StringSource walks a Go string. Invalid bytes come out as utf8.RuneError with Size 1
type StringSource struct {
	s string
	i int
}

// FromString returns a Source over s
func FromString(s string) *StringSource { return &StringSource{s: s} }

// Next implements Source
func (s *StringSource) Next() (Raw, bool) {
	if s.i >= len(s.s) {
		return Raw{}, false
	}
	r, n := utf8.DecodeRuneInString(s.s[s.i:])
	c := Raw{Offset: s.i, Rune: r, Size: n}
	s.i += n
	return c, true
}

// PairSource replays (offset, rune) pairs, deriving each Size from the UTF-8 length
type PairSource struct {
	offsets []int
	runes   []rune
	i       int
}

// FromPairs returns a Source over parallel offset and rune slices.
// The shorter slice bounds the stream
func FromPairs(offsets []int, runes []rune) *PairSource {
	return &PairSource{offsets: offsets, runes: runes}
}

// Next implements Source
func (p *PairSource) Next() (Raw, bool) {
	if p.i >= len(p.offsets) || p.i >= len(p.runes) {
		return Raw{}, false
	}
	r := p.runes[p.i]
	size := utf8.RuneLen(r)
	if size < 0 {
		size = 1
	}
	c := Raw{Offset: p.offsets[p.i], Rune: r, Size: size}
	p.i++
	return c, true
}
