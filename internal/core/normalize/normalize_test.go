package normalize

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"wordlang/internal/core/script"
)

func runes(cs []Char) string {
	out := make([]rune, len(cs))
	for i, c := range cs {
		out[i] = c.Rune
	}
	return string(out)
}

func TestComposesTrailingMark(t *testing.T) {
	cs := String("cafe\u0301")
	require.Len(t, cs, 4)
	assert.Equal(t, "café", runes(cs))
	assert.Equal(t, Char{Script: script.Latin, Offset: 4, Start: 3, End: 6, Rune: 'é'}, cs[3])
}

func TestComposesMarkRun(t *testing.T) {
	cs := String("u\u0308\u0301x")
	require.Len(t, cs, 2)
	assert.Equal(t, 'ǘ', cs[0].Rune)
	assert.Equal(t, 3, cs[0].Offset)
	assert.Equal(t, 5, cs[0].End)
	assert.Equal(t, 'x', cs[1].Rune)
}

func TestDiscardsUncomposableMark(t *testing.T) {
	cs := String("x\u0301y")
	require.Len(t, cs, 2)
	assert.Equal(t, Char{Script: script.Latin, Offset: 1, Start: 0, End: 3, Rune: 'x'}, cs[0])
	assert.Equal(t, 3, cs[1].Start)
}

func TestExceptionPairs(t *testing.T) {
	cs := String("ɛ\u0301")
	require.Len(t, cs, 1)
	assert.Equal(t, rune(0xE000), cs[0].Rune)
	assert.Equal(t, script.Latin, cs[0].Script, "composed character keeps the base script")

	upper := String("Ɛ\u0301")
	require.Len(t, upper, 1)
	assert.Equal(t, rune(0xE000), upper[0].Rune, "exception lookup lowercases the base")
	base, _, _ := Decompose(upper[0].Rune)
	assert.Equal(t, 'ɛ', base)

	// canonical composition keeps the case
	assert.Equal(t, '\u00C9', String("E\u0301")[0].Rune)

	assert.Equal(t, rune(0xE009), String("ɔ\u0300")[0].Rune)

	// Yoruba: the canonical composition runs first, then the exception
	assert.Equal(t, rune(0xE015), String("e\u0323\u0301")[0].Rune)
	assert.Equal(t, rune(0xE015), String("ẹ\u0301")[0].Rune)
}

func TestExceptionTable(t *testing.T) {
	all := Exceptions()
	require.Len(t, all, 32)
	for i, e := range all {
		assert.Equal(t, rune(exceptionBase+i), e.Rune)
		base, mark, ok := Decompose(e.Rune)
		require.True(t, ok)
		assert.Equal(t, e.Base, base)
		assert.Equal(t, e.Mark, mark)

		got, ok := Compose(e.Base, e.Mark)
		require.Truef(t, ok, "Compose(%U, %U)", e.Base, e.Mark)
		assert.Equal(t, e.Rune, got)

		_, canonical := composeCanonical(e.Base, e.Mark)
		assert.Falsef(t, canonical, "%U+%U has a canonical composition", e.Base, e.Mark)
	}
	assert.Equal(t, rune(0xE01F), all[len(all)-1].Rune)

	_, _, ok := Decompose('a')
	assert.False(t, ok)
}

func TestLigatures(t *testing.T) {
	cs := String("oﬃce")
	require.Equal(t, "office", runes(cs))

	assert.Equal(t, Char{Script: script.Latin, Offset: 0, Start: 0, End: 1, Rune: 'o'}, cs[0])
	for _, c := range cs[1:4] {
		assert.Equal(t, 1, c.Offset)
		assert.Equal(t, 1, c.Start)
		assert.Equal(t, 4, c.End)
	}
	assert.Equal(t, 4, cs[4].Start)
}

func TestLigatureLastPartTakesMarks(t *testing.T) {
	cs := String("ﬁ\u0301")
	require.Len(t, cs, 2)
	assert.Equal(t, 'f', cs[0].Rune)
	assert.Equal(t, 3, cs[0].End)
	assert.Equal(t, Char{Script: script.Latin, Offset: 3, Start: 0, End: 5, Rune: 'í'}, cs[1])
}

func TestDropsLeadingMarks(t *testing.T) {
	cs := String("\u0301\u0301ab")
	require.Len(t, cs, 2)
	assert.Equal(t, Char{Script: script.Latin, Offset: 4, Start: 4, End: 5, Rune: 'a'}, cs[0])

	assert.Empty(t, String("\u0301"))
	assert.Empty(t, String(""))
}

func TestFoldsPunctuation(t *testing.T) {
	cs := String("can’t")
	require.Equal(t, "can't", runes(cs))
	assert.Equal(t, Char{Script: script.Common, Offset: 3, Start: 3, End: 6, Rune: '\''}, cs[3])

	assert.Equal(t, "a'b", runes(String("a\u02BCb")))
	assert.Equal(t, "a-b-c", runes(String("a\u2010b\u2011c")))
}

func TestPeek(t *testing.T) {
	n := New(FromString("aﬁ\u0301b"))

	s, r, ok := n.Peek()
	require.True(t, ok)
	assert.Equal(t, script.Latin, s)
	assert.Equal(t, 'a', r)

	c, _ := n.Next()
	assert.Equal(t, 'a', c.Rune)

	_, r, _ = n.Peek()
	assert.Equal(t, 'f', r)
	n.Next()
	_, r, _ = n.Peek()
	assert.Equal(t, 'i', r, "peek sees the queued ligature part before composition")
	c, _ = n.Next()
	assert.Equal(t, 'í', c.Rune)

	_, r, _ = n.Peek()
	assert.Equal(t, 'b', r)
	n.Next()

	_, _, ok = n.Peek()
	assert.False(t, ok)
	_, ok = n.Next()
	assert.False(t, ok)
}

func TestOffsetsAreMonotonic(t *testing.T) {
	in := "Ǹkan ﬁ\u0301 Съешь ещё 中文テスト ɔ\u0300 can’t a\u0301\u0301\u0301"
	prevOff, prevStart := -1, -1
	for c := range New(FromString(in)).All() {
		assert.GreaterOrEqual(t, c.Offset, prevOff)
		assert.GreaterOrEqual(t, c.Start, prevStart)
		assert.LessOrEqual(t, c.Start, c.Offset)
		assert.Less(t, c.Offset, c.End)
		assert.LessOrEqual(t, c.End, len(in))
		prevOff, prevStart = c.Offset, c.Start
	}
}

// Every precomposed letter whose canonical decomposition is a base followed by
// combining marks comes back out of the normalizer unchanged
func TestCompositionRoundTrip(t *testing.T) {
	blocks := [][2]rune{
		{0x00C0, 0x024F}, // Latin-1 and Latin Extended-A/B
		{0x0370, 0x03FF}, // Greek
		{0x0400, 0x04FF}, // Cyrillic
		{0x0600, 0x06FF}, // Arabic
		{0x1E00, 0x1FFF}, // Latin Extended Additional, Greek Extended
	}
	checked := 0
	for _, b := range blocks {
		for r := b[0]; r <= b[1]; r++ {
			self := string(r)
			if norm.NFC.String(self) != self {
				continue
			}
			parts := []rune(norm.NFD.String(self))
			if len(parts) < 2 || script.Of(parts[0]) == script.Inherited {
				continue
			}
			marks := true
			for _, m := range parts[1:] {
				if script.Of(m) != script.Inherited {
					marks = false
				}
			}
			if !marks {
				continue
			}

			cs := String(string(parts))
			require.Lenf(t, cs, 1, "%U decomposed to %q", r, parts)
			assert.Equalf(t, r, cs[0].Rune, "%U decomposed to %q", r, parts)
			assert.Equal(t, len(string(parts)), cs[0].End)
			checked++
		}
	}
	assert.Greater(t, checked, 500)
}

type failingSource struct {
	StringSource
	err error
}

func (f *failingSource) Err() error { return f.err }

func TestErrForwardsSourceError(t *testing.T) {
	boom := errors.New("boom")
	n := New(&failingSource{StringSource: *FromString("ab"), err: boom})
	assert.ErrorIs(t, n.Err(), boom)

	assert.NoError(t, New(FromString("ab")).Err())
}

func TestPairSource(t *testing.T) {
	p := FromPairs([]int{0, 7, 9}, []rune{'a', 'é', 'b'})
	var got []Raw
	for {
		c, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	require.Len(t, got, 3)
	assert.Equal(t, Raw{Offset: 7, Rune: 'é', Size: 2}, got[1])
}

func TestStringSourceInvalidBytes(t *testing.T) {
	s := FromString("a\xffb")
	s.Next()
	c, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, Raw{Offset: 1, Rune: utf8.RuneError, Size: 1}, c)
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "plain text", Display("plain text"))
	assert.Equal(t, "ɛ\u0301", Display(string(rune(0xE000))))
	assert.Equal(t, "xɔ\u0300y", Display("x\uE009y"))
	assert.Equal(t, "ab\n", Display("a\x00b\x7f\n"))
	assert.Equal(t, "ab", Display("a\xffb"))
	assert.Equal(t, "ab", Display("a\u0085b"))
	assert.Equal(t, "", Display(""))
}

func BenchmarkNormalize(b *testing.B) {
	in := "Съешь же ещё этих мягких французских булок. The quick brown ﬁsh café\u0301 ɔ\u0300"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := New(FromString(in))
		for {
			if _, ok := n.Next(); !ok {
				break
			}
		}
	}
}
