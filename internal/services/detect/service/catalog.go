package service

import (
	"fmt"

	"golang.org/x/text/language"

	"wordlang/internal/core/lang"
	"wordlang/internal/core/tally"
	perr "wordlang/internal/platform/errors"
	"wordlang/internal/services/detect/domain"
)

// catalog binds one candidate enumeration to the service
type catalog[L ~uint16] struct {
	resolver func() *lang.Resolver[L]
	list     func() []L
	code     func(L) string
	name     func(L) string
	parent   func(L) string
	match    func(code string) ([]L, bool)
}

var languages = catalog[lang.Language]{
	resolver: lang.ByLanguage,
	list:     lang.Languages,
	code:     lang.Language.String,
	name:     lang.Language.Name,
	parent:   func(lang.Language) string { return "" },
	match: func(code string) ([]lang.Language, bool) {
		l, ok := lang.ParseLanguage(code)
		if !ok {
			return nil, false
		}
		return []lang.Language{l}, true
	},
}

var variants = catalog[lang.Variant]{
	resolver: lang.ByVariant,
	list:     lang.Variants,
	code:     lang.Variant.String,
	name:     lang.Variant.Name,
	parent:   func(v lang.Variant) string { return v.Language().String() },
	match:    matchVariants,
}

// matchVariants resolves a code with a script subtag to that variant and a
// bare language code to every variant of the language
func matchVariants(code string) ([]lang.Variant, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, false
	}
	if _, conf := tag.Script(); conf == language.Exact {
		v, ok := lang.ParseVariant(code)
		if !ok {
			return nil, false
		}
		return []lang.Variant{v}, true
	}

	l, ok := lang.ParseLanguage(code)
	if !ok {
		return nil, false
	}
	var out []lang.Variant
	for _, v := range lang.Variants() {
		if v.Language() == l {
			out = append(out, v)
		}
	}
	return out, len(out) > 0
}

// filter turns the requested codes into a membership set, nil when codes is empty
func (c catalog[L]) filter(codes []string) (map[L]struct{}, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	set := make(map[L]struct{}, len(codes))
	for i, code := range codes {
		ls, ok := c.match(code)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("unknown language %q", code), fmt.Sprintf("only[%d]", i))
		}
		for _, l := range ls {
			set[l] = struct{}{}
		}
	}
	return set, nil
}

// guesses renders scores, dropping anything outside only
func (c catalog[L]) guesses(scores []tally.Score[L], only map[L]struct{}) []domain.Guess {
	out := make([]domain.Guess, 0, len(scores))
	for _, s := range scores {
		if only != nil {
			if _, ok := only[s.Lang]; !ok {
				continue
			}
		}
		out = append(out, domain.Guess{Code: c.code(s.Lang), Name: c.name(s.Lang), Count: s.Count})
	}
	return out
}

func (c catalog[L]) infos() []domain.LanguageInfo {
	ls := c.list()
	out := make([]domain.LanguageInfo, len(ls))
	for i, l := range ls {
		out[i] = domain.LanguageInfo{Code: c.code(l), Name: c.name(l), Language: c.parent(l)}
	}
	return out
}
