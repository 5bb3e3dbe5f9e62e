// Package script maps single characters to their Unicode script.
//
// The range table is flattened once from the per-script range data shipped in
// the standard library's unicode package, sorted by start, and checked for
// overlaps. Lookups are a hand-rolled binary search and never allocate
package script

import (
	"fmt"
	"sync"
	"unicode"

	perr "wordlang/internal/platform/errors"
)

// Script is a closed category over writing systems
type Script uint8

// Count is the number of known scripts including Common and Inherited
const Count = int(numScripts)

// String returns the Unicode property value name, eg "Old_Italic"
func (s Script) String() string {
	if s < numScripts {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", uint8(s))
}

// Valid reports whether s is one of the known scripts
func (s Script) Valid() bool { return s < numScripts }

// Parse resolves a Unicode property value name (case sensitive, underscores kept)
func Parse(name string) (Script, bool) {
	s, ok := byName()[name]
	return s, ok
}

// All returns every known script in ordinal order
func All() []Script {
	out := make([]Script, 0, Count)
	for s := Common; s < numScripts; s++ {
		out = append(out, s)
	}
	return out
}

var byName = sync.OnceValue(func() map[string]Script {
	m := make(map[string]Script, Count)
	for s := Common; s < numScripts; s++ {
		m[scriptNames[s]] = s
	}
	return m
})

// RangeEntry is an inclusive codepoint range owned by one script
type RangeEntry struct {
	Start  rune
	End    rune
	Script Script
}

// Table is the sorted, non-overlapping range table. Read-only once built
type Table struct {
	entries []RangeEntry
}

// Build flattens per-script range tables into one sorted table.
// Strided ranges are expanded into single-codepoint entries.
// Returns an error when two ranges overlap or a range is inverted
func Build(data map[Script]*unicode.RangeTable) (*Table, error) {
	var entries []RangeEntry
	for s, rt := range data {
		if rt == nil {
			continue
		}
		entries = appendRanges(entries, s, rt)
	}

	// runs once over a few thousand ranges
	for i := 1; i < len(entries); i++ {
		e := entries[i]
		j := i
		for j > 0 && entries[j-1].Start > e.Start {
			entries[j] = entries[j-1]
			j--
		}
		entries[j] = e
	}

	for i, e := range entries {
		if e.Start > e.End {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument,
				"script: inverted range %U..%U (%s)", e.Start, e.End, e.Script)
		}
		if i > 0 && entries[i-1].End >= e.Start {
			p := entries[i-1]
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument,
				"script: range %U..%U (%s) overlaps %U..%U (%s)",
				p.Start, p.End, p.Script, e.Start, e.End, e.Script)
		}
	}
	return &Table{entries: entries}, nil
}

func appendRanges(dst []RangeEntry, s Script, rt *unicode.RangeTable) []RangeEntry {
	for _, r := range rt.R16 {
		dst = appendStrided(dst, s, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range rt.R32 {
		dst = appendStrided(dst, s, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return dst
}

func appendStrided(dst []RangeEntry, s Script, lo, hi, stride rune) []RangeEntry {
	if stride <= 1 {
		return append(dst, RangeEntry{Start: lo, End: hi, Script: s})
	}
	for c := lo; c <= hi; c += stride {
		dst = append(dst, RangeEntry{Start: c, End: c, Script: s})
	}
	return dst
}

// Entries returns the sorted range entries. Callers must not modify the slice
func (t *Table) Entries() []RangeEntry { return t.entries }

// Classify returns the script owning r, or Common when no range covers it
func (t *Table) Classify(r rune) Script {
	entries := t.entries
	base, size := 0, len(entries)
	for size > 0 {
		half := size / 2
		mid := base + half
		e := &entries[mid]
		if r < e.Start {
			size = half
			continue
		}
		if r <= e.End {
			return e.Script
		}
		base = mid + 1
		size -= half + 1
	}
	return Common
}

// UnicodeData returns the standard library range tables keyed by Script.
// Names absent from the running toolchain's tables are left out
func UnicodeData() map[Script]*unicode.RangeTable {
	out := make(map[Script]*unicode.RangeTable, Count)
	for s := Common; s < numScripts; s++ {
		if rt, ok := unicode.Scripts[scriptNames[s]]; ok {
			out[s] = rt
		}
	}
	return out
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Build(UnicodeData())
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the process-wide table built from UnicodeData
func Default() *Table { return defaultTable() }

// Of classifies r against the process-wide table
func Of(r rune) Script { return defaultTable().Classify(r) }
