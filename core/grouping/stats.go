package grouping

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GroupStats describes one group of an assignment. Times are in hours.
type GroupStats struct {
	Label   int     `json:"label"`
	Members []int   `json:"members"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Spread  float64 `json:"spread"`
}

// Size returns the number of members.
func (s GroupStats) Size() int { return len(s.Members) }

// Summarize returns the statistics of every group ordered by label.
func Summarize(times []float64, labels []int) []GroupStats {
	members := Members(labels)
	keys := make([]int, 0, len(members))
	for l := range members {
		keys = append(keys, l)
	}
	slices.Sort(keys)

	out := make([]GroupStats, 0, len(keys))
	for _, l := range keys {
		idx := members[l]
		vals := make([]float64, len(idx))
		for i, p := range idx {
			vals[i] = times[p]
		}
		lo, hi := floats.Min(vals), floats.Max(vals)
		out = append(out, GroupStats{
			Label:   l,
			Members: idx,
			Min:     lo,
			Max:     hi,
			Mean:    stat.Mean(vals, nil),
			Spread:  hi - lo,
		})
	}
	return out
}

// MaxSpread returns the widest spread among groups.
func MaxSpread(groups []GroupStats) float64 {
	var m float64
	for _, g := range groups {
		if g.Spread > m {
			m = g.Spread
		}
	}
	return m
}
