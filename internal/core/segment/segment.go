// Package segment groups normalized characters into words.
//
// A word is a run of characters that share at least one candidate language.
// Every kept character adds one to the counter of each of its candidates, so
// a finished word carries a dense per-language count array. The segmenter is
// generic over the candidate enumeration and works at any granularity the
// resolver offers
package segment

import (
	"iter"
	"unicode"

	"wordlang/internal/core/normalize"
	"wordlang/internal/core/script"
)

// Resolver supplies candidate languages for classified characters
type Resolver[L ~uint16] interface {
	// Resolve returns the sorted candidates for r; callers never modify the slice
	Resolve(s script.Script, r rune) []L
	// Len is the size of the enumeration, counts arrays have this length
	Len() int
	// IsLeading reports punctuation that may open a word, eg '¿'
	IsLeading(r rune) bool
}

// Word is one finished word
type Word[L ~uint16] struct {
	Text   string   // lowercase-folded characters
	Start  int      // byte offset of the first raw character
	End    int      // byte offset just past the last raw character
	Counts []uint32 // indexed by candidate ordinal
}

// Count returns the evidence for l
func (w Word[L]) Count(l L) uint32 {
	if int(l) >= len(w.Counts) {
		return 0
	}
	return w.Counts[l]
}

// Segmenter is a pull-based state machine. Not safe for concurrent use
type Segmenter[L ~uint16] struct {
	src *normalize.Normalizer
	res Resolver[L]

	buf   []rune
	start int
	end   int
	prev  script.Script

	// evidence from Common characters is kept apart from script evidence
	common   []uint32
	scripted []uint32
}

// New returns a segmenter reading from src
func New[L ~uint16](src *normalize.Normalizer, res Resolver[L]) *Segmenter[L] {
	n := res.Len()
	return &Segmenter[L]{
		src:      src,
		res:      res,
		prev:     script.Common,
		common:   make([]uint32, n),
		scripted: make([]uint32, n),
	}
}

// Err forwards the source error, if any
func (s *Segmenter[L]) Err() error { return s.src.Err() }

// Next returns the next finished word
func (s *Segmenter[L]) Next() (Word[L], bool) {
	for {
		c, ok := s.src.Next()
		if !ok {
			if len(s.buf) > 0 {
				return s.finish(), true
			}
			return Word[L]{}, false
		}
		if w, ok := s.step(c); ok {
			return w, true
		}
	}
}

// All yields the remaining words
func (s *Segmenter[L]) All() iter.Seq[Word[L]] {
	return func(yield func(Word[L]) bool) {
		for {
			w, ok := s.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

// step consumes one character and reports a word when c closed one
func (s *Segmenter[L]) step(c normalize.Char) (Word[L], bool) {
	defer func() { s.prev = c.Script }()

	hyphen := c.Rune == '-'
	var cands []L
	if !hyphen {
		cands = s.res.Resolve(c.Script, c.Rune)
	}

	brk := false
	if !hyphen && len(s.buf) > 0 && c.Script != s.prev {
		seen := s.scripted
		if s.prev == script.Common {
			seen = s.common
		}
		brk = disjoint(cands, seen)
	}

	if s.skip(c, hyphen || len(cands) > 0, brk) {
		if len(s.buf) > 0 {
			return s.finish(), true
		}
		return Word[L]{}, false
	}

	var (
		w    Word[L]
		done bool
	)
	if brk {
		w, done = s.finish(), true
	}
	s.keep(c, cands, hyphen)
	return w, done
}

func (s *Segmenter[L]) skip(c normalize.Char, known, brk bool) bool {
	if !known {
		return true
	}
	if c.Script != script.Common {
		return false
	}
	if (s.prev == script.Common || brk) && !s.res.IsLeading(c.Rune) {
		return true
	}
	// punctuation only survives when a letter follows
	next, _, ok := s.src.Peek()
	return !ok || next == script.Common
}

func (s *Segmenter[L]) keep(c normalize.Char, cands []L, hyphen bool) {
	if len(s.buf) == 0 {
		s.start = c.Start
	}
	s.buf = append(s.buf, unicode.ToLower(c.Rune))
	s.end = c.End

	bucket := s.scripted
	if c.Script == script.Common {
		bucket = s.common
	}
	if hyphen {
		for i := range bucket {
			bucket[i]++
		}
		return
	}
	for _, l := range cands {
		bucket[l]++
	}
}

func (s *Segmenter[L]) finish() Word[L] {
	counts := make([]uint32, len(s.scripted))
	for i := range counts {
		counts[i] = s.scripted[i] + s.common[i]
	}
	w := Word[L]{Text: string(s.buf), Start: s.start, End: s.end, Counts: counts}

	s.buf = s.buf[:0]
	clear(s.scripted)
	clear(s.common)
	return w
}

func disjoint[L ~uint16](cands []L, seen []uint32) bool {
	for _, l := range cands {
		if seen[l] > 0 {
			return false
		}
	}
	return true
}

// Words segments text in one shot
func Words[L ~uint16](text string, res Resolver[L]) []Word[L] {
	var out []Word[L]
	for w := range New(normalize.New(normalize.FromString(text)), res).All() {
		out = append(out, w)
	}
	return out
}
