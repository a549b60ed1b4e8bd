package export

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spaceshare/spaceshare/core/optimize"
)

// WriteGroupChart renders an HTML scatter chart with one series per kind:
// each participant is plotted at its time and group label.
func WriteGroupChart(w io.Writer, results []optimize.Result, names []string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Ride groups", Subtitle: "time in hours against group id"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (h)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Group", Type: "value"}),
	)
	for _, r := range results {
		data := make([]opts.ScatterData, 0, len(r.Labels))
		for i, l := range r.Labels {
			var name string
			if i < len(names) {
				name = names[i]
			}
			data = append(data, opts.ScatterData{Name: name, Value: []float64{r.Times[i], float64(l)}})
		}
		scatter.AddSeries(r.Kind.String(), data)
	}
	return scatter.Render(w)
}

// WriteGroupChartFile renders the chart to path.
func WriteGroupChartFile(path string, results []optimize.Result, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGroupChart(f, results, names); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
