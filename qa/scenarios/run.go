package scenarios

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaceshare/spaceshare/core/grouping"
	"github.com/spaceshare/spaceshare/core/model"
)

// Partition returns the groups of labels as sorted member lists, ordered by
// their first member.
func Partition(labels []int) [][]int {
	var out [][]int
	for _, m := range grouping.Members(labels) {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}

// RunScenario checks the scenario's expectations and the grouping
// invariants: bounded size, full coverage and repeatable partitions.
func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()
	wantErr := expectedError(sc.Expected.Error)
	failing := wantErr != nil

	if sc.Kind != "" {
		_, err := model.ParseKind(sc.Kind)
		if failing {
			require.ErrorIs(t, err, wantErr)
			assert.Contains(t, err.Error(), "arrival")
			assert.Contains(t, err.Error(), "departure")
			return
		}
		require.NoError(t, err)
	}

	times, err := sc.Input()
	require.NoError(t, err)
	labels, err := grouping.AssignGroups(times, sc.MaxTimeDifference, sc.MaxPeoplePerCar)
	if failing {
		require.ErrorIs(t, err, wantErr)
		assert.Nil(t, labels)
		return
	}
	require.NoError(t, err)
	require.Len(t, labels, len(times))

	part := Partition(labels)
	for _, g := range part {
		assert.LessOrEqual(t, len(g), sc.MaxPeoplePerCar, "group %v over capacity", g)
	}
	again, err := grouping.AssignGroups(times, sc.MaxTimeDifference, sc.MaxPeoplePerCar)
	require.NoError(t, err)
	assert.Equal(t, part, Partition(again))

	if sc.Expected.Groups != nil {
		assert.Equal(t, sc.Expected.Groups, part)
	}
	if sc.Expected.Sizes != nil {
		sizes := make([]int, len(part))
		for i, g := range part {
			sizes[i] = len(g)
		}
		slices.Sort(sizes)
		slices.Reverse(sizes)
		assert.Equal(t, sc.Expected.Sizes, sizes)
	}
	if sc.Tight {
		for _, g := range grouping.Summarize(times, labels) {
			assert.LessOrEqual(t, g.Spread, sc.MaxTimeDifference, "group %d spread", g.Label)
		}
	}
}
