package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lang uint16

func TestMax(t *testing.T) {
	assert.Equal(t, uint32(1), Max(nil))
	assert.Equal(t, uint32(1), Max([]uint32{0, 0, 0}))
	assert.Equal(t, uint32(7), Max([]uint32{3, 7, 2}))
}

func TestFilterMax(t *testing.T) {
	cases := []struct {
		name   string
		counts []uint32
		want   []lang
		max    uint32
	}{
		{"ties are all returned", []uint32{3, 5, 5, 1}, []lang{1, 2}, 5},
		{"single winner", []uint32{0, 9, 2}, []lang{1}, 9},
		{"all zero selects nothing", []uint32{0, 0}, nil, 1},
		{"ones tie with the floor", []uint32{1, 0, 1}, []lang{0, 2}, 1},
		{"empty", nil, nil, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, m := FilterMax[lang](tc.counts)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.max, m)
		})
	}
}

func TestFilterWithMargin(t *testing.T) {
	cases := []struct {
		name    string
		counts  []uint32
		percent uint32
		want    []Score[lang]
	}{
		{"within five percent", []uint32{100, 96, 50}, 95, []Score[lang]{{0, 100}, {1, 96}}},
		{"just outside", []uint32{100, 94, 50}, 95, []Score[lang]{{0, 100}}},
		{"boundary is strict", []uint32{100, 95}, 95, []Score[lang]{{0, 100}}},
		{"zero percent keeps every nonzero", []uint32{4, 0, 1}, 0, []Score[lang]{{0, 4}, {2, 1}}},
		{"truncating arithmetic", []uint32{3, 2}, 50, []Score[lang]{{0, 3}, {1, 2}}},
		{"all zero", []uint32{0, 0}, 95, nil},
		{"hundred selects nothing", []uint32{5, 5}, 100, nil},
		{"no overflow near the top", []uint32{1<<32 - 1, 1<<32 - 2}, 99, []Score[lang]{{0, 1<<32 - 1}, {1, 1<<32 - 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterWithMargin[lang](tc.counts, tc.percent))
		})
	}
}

func TestFilterWithMarginSorted(t *testing.T) {
	got := FilterWithMarginSorted[lang]([]uint32{60, 100, 80, 100, 10}, 50)
	assert.Equal(t, []Score[lang]{{1, 100}, {3, 100}, {2, 80}, {0, 60}}, got)
}

func TestSum(t *testing.T) {
	var total []uint32
	total = Sum(total, []uint32{1, 2})
	total = Sum(total, []uint32{0, 3, 4})
	total = Sum(total, nil)
	assert.Equal(t, []uint32{1, 5, 4}, total)

	short := Sum([]uint32{1, 1, 1}, []uint32{1})
	assert.Equal(t, []uint32{2, 1, 1}, short)
}
