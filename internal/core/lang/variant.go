package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Variant is a (language, script family) ordinal, eg Serbian in Cyrillic
type Variant uint16

// VariantCount returns the number of known variants
func VariantCount() int { return len(variants) }

// String returns the BCP-47 code with its script subtag, eg "sr-Cyrl"
func (v Variant) String() string {
	if v.Valid() {
		return variants[v].code
	}
	return fmt.Sprintf("Variant(%d)", uint16(v))
}

// Valid reports whether v is a known variant
func (v Variant) Valid() bool { return int(v) < len(variants) }

// Language returns the coarse language of v
func (v Variant) Language() Language {
	if !v.Valid() {
		return Undetermined
	}
	return variants[v].lang
}

// Tag returns the variant as a BCP-47 tag
func (v Variant) Tag() language.Tag {
	if !v.Valid() {
		return language.Und
	}
	return language.Make(variants[v].code)
}

// Name returns the English display name, eg "Serbian (Cyrillic)"
func (v Variant) Name() string { return displayName(v.Tag()) }

// Variants returns every known variant in ordinal order
func Variants() []Variant {
	out := make([]Variant, len(variants))
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

// ParseVariant resolves a BCP-47 code. An exact match on language and script
// wins; a bare language resolves when it has exactly one variant or when its
// likely script picks one, so "ru" resolves to "ru-Cyrl"
func ParseVariant(code string) (Variant, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return 0, false
	}
	l, ok := ParseLanguage(code)
	if !ok {
		return 0, false
	}

	var matches []Variant
	for i, row := range variants {
		if row.lang == l {
			matches = append(matches, Variant(i))
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}

	sc, _ := tag.Script()
	for _, v := range matches {
		if _, vs, _ := v.Tag().Raw(); vs == sc {
			return v, true
		}
	}
	return 0, false
}
