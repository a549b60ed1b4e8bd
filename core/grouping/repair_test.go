package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalancedChunks(t *testing.T) {
	chunks := balancedChunks([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {6, 7}}, chunks)

	chunks = balancedChunks([]int{1, 2}, 3)
	assert.Equal(t, [][]int{{1}, {2}, {}}, chunks)

	assert.Len(t, balancedChunks([]int{1, 2}, 0), 1)
}

func TestRepairSortsByTime(t *testing.T) {
	times := []float64{3, 1, 4, 1.5, 2}
	labels := []int{1, 1, 1, 1, 1}
	out, next, split := Repair(times, labels, 2, 2)
	// by time: 1, 3 | 4, 0 | 2
	assert.Equal(t, []int{2, 1, 3, 1, 2}, out)
	assert.Equal(t, 4, next)
	assert.Equal(t, 1, split)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, labels, "input must not change")
}

func TestRepairLeavesSmallClusters(t *testing.T) {
	out, next, split := Repair([]float64{1, 2, 3}, []int{1, 2, 2}, 2, 3)
	assert.Equal(t, []int{1, 2, 2}, out)
	assert.Equal(t, 3, next)
	assert.Zero(t, split)
}

func TestRepairStableOnTies(t *testing.T) {
	out, _, _ := Repair([]float64{0, 0, 0, 0}, []int{1, 1, 1, 1}, 3, 2)
	assert.Equal(t, []int{1, 1, 2, 2}, out)
}

func TestSummarize(t *testing.T) {
	stats := Summarize([]float64{1, 2, 10, 4}, []int{2, 2, 1, 2})
	assert.Len(t, stats, 2)
	assert.Equal(t, 1, stats[0].Label)
	assert.Equal(t, []int{2}, stats[0].Members)
	assert.Zero(t, stats[0].Spread)
	assert.Equal(t, 3, stats[1].Size())
	assert.InDelta(t, 3, stats[1].Spread, 1e-12)
	assert.InDelta(t, 7.0/3, stats[1].Mean, 1e-12)
	assert.InDelta(t, 3, MaxSpread(stats), 1e-12)
}
