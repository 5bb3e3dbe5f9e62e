package normalize

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Exception is a (base, mark) pair with no canonical composition that some
// orthographies still treat as one letter. Each pair owns a private use codepoint
type Exception struct {
	Base rune
	Mark rune
	Rune rune
}

// exceptionBase is the first private use codepoint handed out
const exceptionBase = 0xE000

const (
	markGrave      = '\u0300'
	markAcute      = '\u0301'
	markCircumflex = '\u0302'
	markTilde      = '\u0303'
	markMacron     = '\u0304'
	markDiaeresis  = '\u0308'
	markCaron      = '\u030C'
	markLowLine    = '\u0332'
)

// order is part of the contract: codepoints are assigned sequentially
var exceptionPairs = [...][2]rune{
	{'ɛ', markAcute}, {'ɛ', markGrave}, {'ɛ', markCircumflex}, {'ɛ', markCaron},
	{'ɛ', markDiaeresis}, {'ɛ', markTilde}, {'ɛ', markMacron}, {'ɛ', markLowLine},

	{'ɔ', markAcute}, {'ɔ', markGrave}, {'ɔ', markCircumflex}, {'ɔ', markCaron},
	{'ɔ', markDiaeresis}, {'ɔ', markTilde}, {'ɔ', markMacron}, {'ɔ', markLowLine},

	{'ə', markAcute}, {'ə', markGrave}, {'ə', markCircumflex}, {'ə', markCaron}, {'ə', markTilde},

	{'ẹ', markAcute}, {'ẹ', markGrave}, {'ẹ', markMacron},
	{'ọ', markAcute}, {'ọ', markGrave}, {'ọ', markMacron},

	{'m', markGrave}, {'m', markMacron},

	{'ŋ', markAcute}, {'ŋ', markGrave}, {'ŋ', markMacron},
}

type pair struct{ base, mark rune }

var (
	exceptions     = make(map[pair]rune, len(exceptionPairs))
	exceptionsByPU = make(map[rune]pair, len(exceptionPairs))
)

func init() {
	for i, p := range exceptionPairs {
		pu := rune(exceptionBase + i)
		exceptions[pair{p[0], p[1]}] = pu
		exceptionsByPU[pu] = pair{p[0], p[1]}
	}
}

// Exceptions lists the exception table in assignment order
func Exceptions() []Exception {
	out := make([]Exception, len(exceptionPairs))
	for i, p := range exceptionPairs {
		out[i] = Exception{Base: p[0], Mark: p[1], Rune: rune(exceptionBase + i)}
	}
	return out
}

// Decompose reverses an exception codepoint into its base and mark
func Decompose(r rune) (base, mark rune, ok bool) {
	p, ok := exceptionsByPU[r]
	return p.base, p.mark, ok
}

// Compose merges base with one combining mark.
// Canonical composition wins and keeps the case of base. The exception table
// is consulted with the lowercased base, so an exception result is always the
// lowercase form. ok is false when neither applies and base is returned as is
func Compose(base, mark rune) (rune, bool) {
	if c, ok := composeCanonical(base, mark); ok {
		return c, true
	}
	if c, ok := exceptions[pair{unicode.ToLower(base), mark}]; ok {
		return c, true
	}
	return base, false
}

func composeCanonical(base, mark rune) (rune, bool) {
	var in, out [2 * utf8.UTFMax]byte
	src := utf8.AppendRune(in[:0], base)
	src = utf8.AppendRune(src, mark)
	dst := norm.NFC.Append(out[:0], src...)
	r, n := utf8.DecodeRune(dst)
	if r == utf8.RuneError || n != len(dst) {
		return 0, false
	}
	return r, true
}
