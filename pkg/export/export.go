// Package export writes grouping results for people and other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/optimize"
)

// WriteCSV writes the table, header first.
func WriteCSV(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, creating parent directories.
func WriteCSVFile(path string, t *model.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// GroupReport lists the members of one group by name.
type GroupReport struct {
	Label   int      `json:"label"`
	Members []string `json:"members"`
	Spread  float64  `json:"spread_hours"`
}

// KindReport is the JSON form of one optimisation result.
type KindReport struct {
	RunID  string        `json:"run_id"`
	Kind   model.Kind    `json:"kind"`
	Splits int           `json:"splits"`
	Groups []GroupReport `json:"groups"`
}

// Reports resolves member indices of results to names. names is indexed like
// the rows the results were computed on.
func Reports(results []optimize.Result, names []string) []KindReport {
	out := make([]KindReport, len(results))
	for i, r := range results {
		kr := KindReport{RunID: r.RunID, Kind: r.Kind, Splits: r.Splits, Groups: make([]GroupReport, len(r.Groups))}
		for j, g := range r.Groups {
			members := make([]string, len(g.Members))
			for k, idx := range g.Members {
				if idx < len(names) {
					members[k] = names[idx]
				}
			}
			kr.Groups[j] = GroupReport{Label: g.Label, Members: members, Spread: g.Spread}
		}
		out[i] = kr
	}
	return out
}

// WriteGroupsJSON writes the reports as indented JSON.
func WriteGroupsJSON(w io.Writer, reports []KindReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
