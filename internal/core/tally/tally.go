// Package tally selects best-guess languages from dense per-language counts.
//
// Counts are indexed by candidate ordinal, as produced by the segmenter. All
// functions are pure and never retain their input
package tally

import (
	"cmp"
	"slices"
)

// Score is a language and its count
type Score[L ~uint16] struct {
	Lang  L
	Count uint32
}

// Max returns the largest count, floored at 1 so an all-zero array selects nothing
func Max(counts []uint32) uint32 {
	m := uint32(1)
	for _, c := range counts {
		m = max(m, c)
	}
	return m
}

// FilterMax returns every language tied at the maximum, in ordinal order
func FilterMax[L ~uint16](counts []uint32) ([]L, uint32) {
	m := Max(counts)
	var out []L
	for i, c := range counts {
		if c == m {
			out = append(out, L(i))
		}
	}
	return out, m
}

// FilterWithMargin returns every language whose count strictly exceeds
// percent% of the maximum, in ordinal order. percent is expected in [0, 100);
// 100 and above select nothing
func FilterWithMargin[L ~uint16](counts []uint32, percent uint32) []Score[L] {
	floor := uint64(Max(counts)) * uint64(percent) / 100
	var out []Score[L]
	for i, c := range counts {
		if uint64(c) > floor {
			out = append(out, Score[L]{Lang: L(i), Count: c})
		}
	}
	return out
}

// FilterWithMarginSorted is FilterWithMargin ordered by descending count.
// Equal counts keep ordinal order
func FilterWithMarginSorted[L ~uint16](counts []uint32, percent uint32) []Score[L] {
	out := FilterWithMargin[L](counts, percent)
	slices.SortStableFunc(out, func(a, b Score[L]) int { return cmp.Compare(b.Count, a.Count) })
	return out
}

// Sum adds counts into dst element-wise and returns dst, growing it as needed
func Sum(dst, counts []uint32) []uint32 {
	if len(dst) < len(counts) {
		dst = append(dst, make([]uint32, len(counts)-len(dst))...)
	}
	for i, c := range counts {
		dst[i] += c
	}
	return dst
}
