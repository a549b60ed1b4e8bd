package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaceshare/spaceshare/core/grouping"
	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/optimize"
)

func TestWriteCSV(t *testing.T) {
	tb := model.NewTable([]string{"Name", "arrival_group"}, [][]string{{"Ada, L.", "1"}, {"Grace", "2"}})
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tb))
	assert.Equal(t, "Name,arrival_group\n\"Ada, L.\",1\nGrace,2\n", buf.String())
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "optimized_clustering.csv")
	tb := model.NewTable([]string{"Name"}, [][]string{{"Ada"}})
	require.NoError(t, WriteCSVFile(path, tb))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name\nAda\n", string(b))
}

func TestWriteGroupsJSON(t *testing.T) {
	res := []optimize.Result{{
		RunID:  "r1",
		Kind:   model.KindDeparture,
		Splits: 1,
		Groups: []grouping.GroupStats{
			{Label: 1, Members: []int{0, 2}, Spread: 0.25},
			{Label: 2, Members: []int{1}},
		},
	}}
	reports := Reports(res, []string{"Ada", "Grace", "Katherine"})
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"Ada", "Katherine"}, reports[0].Groups[0].Members)

	var buf bytes.Buffer
	require.NoError(t, WriteGroupsJSON(&buf, reports))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "departure", decoded[0]["kind"])
	assert.Equal(t, "r1", decoded[0]["run_id"])
	groups := decoded[0]["groups"].([]any)
	assert.Len(t, groups, 2)
	assert.Equal(t, 0.25, groups[0].(map[string]any)["spread_hours"])
}

func TestWriteGroupChart(t *testing.T) {
	res := []optimize.Result{
		{Kind: model.KindArrival, Times: []float64{322, 322.25, 326}, Labels: []int{1, 1, 2}},
		{Kind: model.KindDeparture, Times: []float64{417, 417.1, 426}, Labels: []int{1, 1, 2}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteGroupChart(&buf, res, []string{"Ada", "Grace", "Katherine"}))
	html := buf.String()
	assert.Contains(t, html, "Ride groups")
	assert.Contains(t, html, "arrival")
	assert.Contains(t, html, "departure")
	assert.Contains(t, html, "Katherine")

	path := filepath.Join(t.TempDir(), "groups.html")
	require.NoError(t, WriteGroupChartFile(path, res, nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
