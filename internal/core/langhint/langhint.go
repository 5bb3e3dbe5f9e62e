// Package langhint summarizes a whole document from its word stream.
package langhint

import (
	"slices"

	"wordlang/internal/core/lang"
	"wordlang/internal/core/normalize"
	"wordlang/internal/core/script"
	"wordlang/internal/core/segment"
	"wordlang/internal/core/tally"
)

// Summary is the document level view of a segmented text
type Summary[L ~uint16] struct {
	Script  script.Script    // dominant script by letter count, Common when there are no letters
	Letters int              // letters across all words
	Words   int              // words segmented
	Counts  []uint32         // per-language evidence summed over every word
	Langs   []tally.Score[L] // margin-filtered, highest count first
}

// Accumulator folds words into a Summary one at a time. The zero value is ready
type Accumulator[L ~uint16] struct {
	sum     Summary[L]
	scripts [script.Count]int
}

// Add folds w into the running totals
func (a *Accumulator[L]) Add(w segment.Word[L]) {
	a.sum.Words++
	a.sum.Counts = tally.Sum(a.sum.Counts, w.Counts)
	for _, r := range w.Text {
		if base, _, ok := normalize.Decompose(r); ok {
			r = base
		}
		s := script.Of(r)
		if s == script.Common || s == script.Inherited || !s.Valid() {
			continue
		}
		a.scripts[s]++
		a.sum.Letters++
	}
}

// Summary returns the totals so far. margin is the percent of the top count
// a language must exceed to be kept
func (a *Accumulator[L]) Summary(margin uint32) Summary[L] {
	sum := a.sum
	sum.Counts = slices.Clone(a.sum.Counts)

	// ties keep the lower ordinal
	best := script.Common
	for s, n := range a.scripts {
		if n > a.scripts[best] {
			best = script.Script(s)
		}
	}
	sum.Script = best
	if sum.Words > 0 {
		sum.Langs = tally.FilterWithMarginSorted[L](sum.Counts, margin)
	}
	return sum
}

// Summarize drains seg and folds its words into a Summary
func Summarize[L ~uint16](seg *segment.Segmenter[L], margin uint32) (Summary[L], error) {
	var acc Accumulator[L]
	for w := range seg.All() {
		acc.Add(w)
	}
	return acc.Summary(margin), seg.Err()
}

// SummarizeString runs the coarse pipeline over s
func SummarizeString(s string, margin uint32) Summary[lang.Language] {
	seg := segment.New(normalize.New(normalize.FromString(s)), lang.ByLanguage())
	// string sources never fail
	sum, _ := Summarize(seg, margin)
	return sum
}

// minLetters gates the language guess in DetectScriptAndLang
const minLetters = 20

// DetectScriptAndLang returns the dominant script name (empty when s has no
// letters) and a BCP-47 code when one language clearly leads. The code is
// only set once s carries at least 20 letters and a single language holds
// the maximum count
func DetectScriptAndLang(s string) (scriptName string, code string) {
	sum := SummarizeString(s, 0)
	if sum.Letters == 0 {
		return "", ""
	}
	scriptName = sum.Script.String()

	if sum.Letters < minLetters {
		return scriptName, ""
	}
	top, _ := tally.FilterMax[lang.Language](sum.Counts)
	if len(top) != 1 || top[0] == lang.Undetermined {
		return scriptName, ""
	}
	return scriptName, top[0].String()
}
