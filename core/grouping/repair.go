package grouping

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Repair splits every cluster holding more than maxPerCar members. Members
// are ordered by time and cut into count/maxPerCar+1 contiguous chunks whose
// sizes differ by at most one. The first chunk keeps its label; later chunks
// take labels from next upwards. Repair returns the new labels, the next
// unused label and the number of clusters that were split. labels is not
// modified.
func Repair(times []float64, labels []int, maxPerCar, next int) ([]int, int, int) {
	out := slices.Clone(labels)
	members := Members(labels)
	keys := make([]int, 0, len(members))
	for l := range members {
		keys = append(keys, l)
	}
	slices.Sort(keys)

	split := 0
	for _, l := range keys {
		idx := members[l]
		if len(idx) <= maxPerCar {
			continue
		}
		split++
		sorted := sortByTime(times, idx)
		for c, chunk := range balancedChunks(sorted, len(sorted)/maxPerCar+1) {
			if c == 0 || len(chunk) == 0 {
				continue
			}
			for _, i := range chunk {
				out[i] = next
			}
			next++
		}
	}
	return out, next, split
}

// sortByTime orders idx by ascending time, keeping index order on ties.
func sortByTime(times []float64, idx []int) []int {
	vals := make([]float64, len(idx))
	for i, p := range idx {
		vals[i] = times[p]
	}
	perm := make([]int, len(idx))
	floats.ArgsortStable(vals, perm)
	out := make([]int, len(idx))
	for i, p := range perm {
		out[i] = idx[p]
	}
	return out
}

// balancedChunks divides s into k contiguous parts. The first len(s)%k parts
// hold one extra element.
func balancedChunks(s []int, k int) [][]int {
	if k < 1 {
		k = 1
	}
	out := make([][]int, 0, k)
	base, extra := len(s)/k, len(s)%k
	start := 0
	for c := 0; c < k; c++ {
		end := start + base
		if c < extra {
			end++
		}
		out = append(out, s[start:end])
		start = end
	}
	return out
}
