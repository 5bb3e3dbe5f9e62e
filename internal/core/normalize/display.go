package normalize

import (
	"strings"
	"unicode/utf8"
)

// Display renders normalized text for people:
// - exception codepoints are expanded back into base letter + combining mark
// - NUL, ASCII controls except '\n', '\r', '\t', DEL and C1 controls are dropped
// - invalid UTF-8 bytes are dropped
// Fast path returns s unchanged when nothing needs rewriting
func Display(s string) string {
	n := len(s)
	i := 0

	for i < n {
		b := s[i]
		if b < 0x20 {
			if b == '\n' || b == '\r' || b == '\t' {
				i++
				continue
			}
			break
		}
		if b == 0x7F {
			break
		}
		if b < 0x80 {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if r >= 0x80 && r <= 0x9F {
			break
		}
		if _, _, ok := Decompose(r); ok {
			break
		}
		i += size
	}
	if i == n {
		return s
	}

	var bldr strings.Builder
	bldr.Grow(n + 8)
	bldr.WriteString(s[:i])

	for i < n {
		c := s[i]
		if c < 0x20 {
			if c == '\n' || c == '\r' || c == '\t' {
				bldr.WriteByte(c)
			}
			i++
			continue
		}
		if c == 0x7F {
			i++
			continue
		}
		if c < 0x80 {
			bldr.WriteByte(c)
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
		case r >= 0x80 && r <= 0x9F:
		default:
			if base, mark, ok := Decompose(r); ok {
				bldr.WriteRune(base)
				bldr.WriteRune(mark)
			} else {
				bldr.WriteString(s[i : i+size])
			}
		}
		i += size
	}
	return bldr.String()
}
