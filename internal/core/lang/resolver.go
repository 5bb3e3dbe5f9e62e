package lang

import (
	"slices"
	"sync"
	"unicode"

	"wordlang/internal/core/normalize"
	"wordlang/internal/core/script"
)

// Resolver maps a classified, normalized character to the languages whose
// alphabet contains it. Built once and read-only afterwards, so one Resolver
// serves any number of goroutines
type Resolver[L ~uint16] struct {
	n       int
	scripts [script.Count]*scriptCandidates[L]
	common  map[rune][]L
	und     []L
}

type scriptCandidates[L ~uint16] struct {
	letters map[rune][]L
	all     []L
}

// Resolve returns the candidates for r classified as s, sorted by ordinal.
// Letters a script's alphabets do not list fall back to every language
// written in that script; scripts no language claims resolve to Undetermined.
// Common characters resolve through the punctuation lists and Inherited
// characters never have candidates. The result must not be modified
func (t *Resolver[L]) Resolve(s script.Script, r rune) []L {
	r = unicode.ToLower(r)
	switch s {
	case script.Common:
		return t.common[r]
	case script.Inherited:
		return nil
	}
	if !s.Valid() {
		return t.und
	}
	sc := t.scripts[s]
	if sc == nil {
		return t.und
	}
	if c, ok := sc.letters[r]; ok {
		return c
	}
	return sc.all
}

// Len is the size of the candidate enumeration
func (t *Resolver[L]) Len() int { return t.n }

// IsLeading reports whether r may open a word even though it is punctuation
func (t *Resolver[L]) IsLeading(r rune) bool { return r == '¿' || r == '¡' }

// Script returns every candidate written in s
func (t *Resolver[L]) Script(s script.Script) []L {
	if !s.Valid() || t.scripts[s] == nil {
		return nil
	}
	return t.scripts[s].all
}

func build[L ~uint16](n int, id func(i int) L) *Resolver[L] {
	t := &Resolver[L]{n: n, common: make(map[rune][]L)}
	var wholes [script.Count][]L

	for i, row := range variants {
		l := id(i)
		if len(row.alphabets) == 0 {
			t.und = append(t.und, l)
		}
		for _, a := range row.alphabets {
			sc := t.scripts[a.script]
			if sc == nil {
				sc = &scriptCandidates[L]{letters: make(map[rune][]L)}
				t.scripts[a.script] = sc
			}
			sc.all = append(sc.all, l)
			if a.letters == "" {
				wholes[a.script] = append(wholes[a.script], l)
				continue
			}
			for _, c := range normalize.String(a.letters) {
				k := unicode.ToLower(c.Rune)
				sc.letters[k] = append(sc.letters[k], l)
			}
		}
		for _, p := range row.punct {
			k := normalize.Fold(p)
			t.common[k] = append(t.common[k], l)
		}
	}

	for s, sc := range t.scripts {
		if sc == nil {
			continue
		}
		sc.all = sortedSet(sc.all)
		for k, c := range sc.letters {
			sc.letters[k] = sortedSet(append(c, wholes[s]...))
		}
	}
	for k, c := range t.common {
		t.common[k] = sortedSet(c)
	}
	t.und = sortedSet(t.und)
	return t
}

func sortedSet[L ~uint16](s []L) []L {
	slices.Sort(s)
	return slices.Clip(slices.Compact(s))
}

var (
	languages = sync.OnceValue(func() *Resolver[Language] {
		return build(LanguageCount, func(i int) Language { return variants[i].lang })
	})
	fine = sync.OnceValue(func() *Resolver[Variant] {
		return build(len(variants), func(i int) Variant { return Variant(i) })
	})
)

// ByLanguage returns the process-wide resolver over coarse languages
func ByLanguage() *Resolver[Language] { return languages() }

// ByVariant returns the process-wide resolver over (language, script) variants
func ByVariant() *Resolver[Variant] { return fine() }
