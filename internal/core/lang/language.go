// Package lang holds the static candidate-language tables.
//
// A Language is a natural language. A Variant is a language written in one
// script family, so a language with a Latin and a Cyrillic orthography has two
// variants. Both are closed, dense enumerations and index counter arrays
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a natural language ordinal
type Language uint16

// Known languages. Ordinals are dense and index counter arrays
const (
	English Language = iota
	French
	German
	Spanish
	Italian
	Portuguese
	Dutch
	Catalan
	Romanian
	Polish
	Czech
	Slovak
	Slovenian
	Croatian
	Serbian
	Hungarian
	Finnish
	Estonian
	Latvian
	Lithuanian
	Swedish
	Danish
	Norwegian
	Icelandic
	Turkish
	Azerbaijani
	Uzbek
	Kazakh
	Kyrgyz
	Mongolian
	Russian
	Ukrainian
	Belarusian
	Bulgarian
	Macedonian
	Vietnamese
	Albanian
	Basque
	Irish
	Welsh
	Maltese
	Yoruba
	Ewe
	Akan
	Lingala
	Bambara
	Greek
	Armenian
	Georgian
	Hebrew
	Yiddish
	Arabic
	Persian
	Urdu
	Hindi
	Marathi
	Nepali
	Bengali
	Tamil
	Thai
	Amharic
	Chinese
	Japanese
	Korean
	Undetermined

	numLanguages
)

// LanguageCount is the number of known languages
const LanguageCount = int(numLanguages)

var languageCodes = [numLanguages]string{
	English:      "en",
	French:       "fr",
	German:       "de",
	Spanish:      "es",
	Italian:      "it",
	Portuguese:   "pt",
	Dutch:        "nl",
	Catalan:      "ca",
	Romanian:     "ro",
	Polish:       "pl",
	Czech:        "cs",
	Slovak:       "sk",
	Slovenian:    "sl",
	Croatian:     "hr",
	Serbian:      "sr",
	Hungarian:    "hu",
	Finnish:      "fi",
	Estonian:     "et",
	Latvian:      "lv",
	Lithuanian:   "lt",
	Swedish:      "sv",
	Danish:       "da",
	Norwegian:    "nb",
	Icelandic:    "is",
	Turkish:      "tr",
	Azerbaijani:  "az",
	Uzbek:        "uz",
	Kazakh:       "kk",
	Kyrgyz:       "ky",
	Mongolian:    "mn",
	Russian:      "ru",
	Ukrainian:    "uk",
	Belarusian:   "be",
	Bulgarian:    "bg",
	Macedonian:   "mk",
	Vietnamese:   "vi",
	Albanian:     "sq",
	Basque:       "eu",
	Irish:        "ga",
	Welsh:        "cy",
	Maltese:      "mt",
	Yoruba:       "yo",
	Ewe:          "ee",
	Akan:         "ak",
	Lingala:      "ln",
	Bambara:      "bm",
	Greek:        "el",
	Armenian:     "hy",
	Georgian:     "ka",
	Hebrew:       "he",
	Yiddish:      "yi",
	Arabic:       "ar",
	Persian:      "fa",
	Urdu:         "ur",
	Hindi:        "hi",
	Marathi:      "mr",
	Nepali:       "ne",
	Bengali:      "bn",
	Tamil:        "ta",
	Thai:         "th",
	Amharic:      "am",
	Chinese:      "zh",
	Japanese:     "ja",
	Korean:       "ko",
	Undetermined: "und",
}

// String returns the BCP-47 code, eg "uk"
func (l Language) String() string {
	if l < numLanguages {
		return languageCodes[l]
	}
	return fmt.Sprintf("Language(%d)", uint16(l))
}

// Valid reports whether l is a known language
func (l Language) Valid() bool { return l < numLanguages }

// Tag returns the language as a BCP-47 tag
func (l Language) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return language.Make(languageCodes[l])
}

// Name returns the English display name, eg "Ukrainian"
func (l Language) Name() string { return displayName(l.Tag()) }

// Languages returns every known language in ordinal order
func Languages() []Language {
	out := make([]Language, LanguageCount)
	for i := range out {
		out[i] = Language(i)
	}
	return out
}

// ParseLanguage resolves a BCP-47 code. Region and script subtags are ignored,
// so "sr-Latn" and "en-GB" resolve to Serbian and English
func ParseLanguage(code string) (Language, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return 0, false
	}
	if tag == language.Und {
		return Undetermined, true
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return 0, false
	}
	code = base.String()
	if code == "no" {
		code = "nb"
	}
	for l, c := range languageCodes {
		if c == code {
			return Language(l), true
		}
	}
	return 0, false
}

var namer = display.English.Tags()

func displayName(tag language.Tag) string {
	if n := namer.Name(tag); n != "" {
		return n
	}
	return tag.String()
}
