// Package normalize turns a stream of raw characters into letters.
//
// It decomposes Latin presentation ligatures, composes base letters with their
// following combining marks, and folds a few typographic punctuation variants
// onto their ASCII forms. Every output character carries its script and the
// byte positions it was built from
package normalize

import (
	"iter"

	"wordlang/internal/core/script"
)

// Char is one normalized character
type Char struct {
	Script script.Script
	Offset int // byte offset of the last raw character merged into this one
	Start  int // byte offset of the first raw character
	End    int // byte offset just past the last raw character
	// Rune keeps the input case, except for base and mark pairs composed
	// through the exception table: their private-use codepoint stands for
	// the lowercase pair
	Rune rune
}

var ligatures = map[rune][]rune{
	'ﬀ': {'f', 'f'},
	'ﬁ': {'f', 'i'},
	'ﬂ': {'f', 'l'},
	'ﬃ': {'f', 'f', 'i'},
	'ﬄ': {'f', 'f', 'l'},
	'ﬅ': {'s', 't'},
	'ﬆ': {'s', 't'},
}

// Fold maps typographic apostrophes and hyphens onto ASCII
func Fold(r rune) rune {
	switch r {
	case '’', '\u02BC':
		return '\''
	case '\u2010', '\u2011':
		return '-'
	}
	return r
}

type classified struct {
	Raw
	script script.Script
}

// Normalizer is a pull-based state machine over a Source. Not safe for concurrent use
type Normalizer struct {
	src Source
	tbl *script.Table

	ahead    classified
	hasAhead bool
	started  bool

	// queued ligature constituents; lig holds the shared positions
	pending []rune
	lig     Char
}

// New returns a normalizer classifying against the process-wide script table
func New(src Source) *Normalizer { return NewWithTable(src, script.Default()) }

// NewWithTable returns a normalizer classifying against tbl
func NewWithTable(src Source, tbl *script.Table) *Normalizer {
	return &Normalizer{src: src, tbl: tbl}
}

// Err returns the first error reported by the underlying source, if it reports any
func (n *Normalizer) Err() error {
	if e, ok := n.src.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// read pulls, folds and classifies the next raw character.
// Combining marks before the first base character are dropped
func (n *Normalizer) read() (classified, bool) {
	for {
		c, ok := n.src.Next()
		if !ok {
			return classified{}, false
		}
		c.Rune = Fold(c.Rune)
		s := n.tbl.Classify(c.Rune)
		if !n.started {
			if s == script.Inherited {
				continue
			}
			n.started = true
		}
		return classified{Raw: c, script: s}, true
	}
}

func (n *Normalizer) lookahead() (classified, bool) {
	if !n.hasAhead {
		c, ok := n.read()
		if !ok {
			return classified{}, false
		}
		n.ahead, n.hasAhead = c, true
	}
	return n.ahead, true
}

func (n *Normalizer) take() (classified, bool) {
	if n.hasAhead {
		n.hasAhead = false
		return n.ahead, true
	}
	return n.read()
}

// Peek reports the script and character the next call to Next will start from,
// without consuming it
func (n *Normalizer) Peek() (script.Script, rune, bool) {
	if len(n.pending) > 0 {
		return n.lig.Script, n.pending[0], true
	}
	c, ok := n.lookahead()
	if !ok {
		return script.Common, 0, false
	}
	if parts, ok := ligatures[c.Rune]; ok {
		return c.script, parts[0], true
	}
	return c.script, c.Rune, true
}

// Next returns the next normalized character
func (n *Normalizer) Next() (Char, bool) {
	var cur Char
	if len(n.pending) > 0 {
		cur = n.lig
		cur.Rune = n.pending[0]
		n.pending = n.pending[1:]
		if len(n.pending) > 0 {
			return cur, true
		}
	} else {
		c, ok := n.take()
		if !ok {
			return Char{}, false
		}
		cur = Char{Script: c.script, Offset: c.Offset, Start: c.Offset, End: c.Offset + c.Size, Rune: c.Rune}
		if parts, ok := ligatures[c.Rune]; ok {
			cur.Rune = parts[0]
			n.lig = cur
			n.pending = parts[1:]
			return cur, true
		}
	}

	for {
		m, ok := n.lookahead()
		if !ok || m.script != script.Inherited {
			break
		}
		n.hasAhead = false
		if r, ok := Compose(cur.Rune, m.Rune); ok {
			cur.Rune = r
		}
		cur.Offset = m.Offset
		cur.End = m.Offset + m.Size
	}
	return cur, true
}

// All yields the remaining characters
func (n *Normalizer) All() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for {
			c, ok := n.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// String normalizes s in one shot and returns the resulting characters
func String(s string) []Char {
	var out []Char
	for c := range New(FromString(s)).All() {
		out = append(out, c)
	}
	return out
}
