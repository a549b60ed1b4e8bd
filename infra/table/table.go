// Package table reads the participant sheet exported from the sign-up form.
package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spaceshare/spaceshare/auth"
	"github.com/spaceshare/spaceshare/core/model"
)

// Required lists the columns every sheet must provide.
var Required = []string{model.ColumnName, model.ColumnEmail, model.ColumnArrival, model.ColumnDeparture}

// SheetURL returns the CSV export URL of a link-shared Google sheet.
func SheetURL(id string) string {
	return "https://docs.google.com/spreadsheets/d/" + id + "/gviz/tq?tqx=out:csv"
}

// ReadCSV parses a sheet, drops the form timestamp column and checks that
// the required columns are present. Rows with non-empty cells beyond the
// header are rejected; trailing empty cells are ignored.
func ReadCSV(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sheet has no header", model.ErrEmptyInput)
	}
	header := records[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	var rows [][]string
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		if len(rec) > len(header) {
			if !blank(rec[len(header):]) {
				return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
					model.ErrInvalidArgument, i+2, len(rec), len(header))
			}
			rec = rec[:len(header)]
		}
		rows = append(rows, rec)
	}
	t := model.NewTable(header, rows)
	t.Drop(model.ColumnFormTimestamp)
	var missing []string
	for _, c := range Required {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", model.ErrInvalidArgument, strings.Join(missing, ", "))
	}
	return t, nil
}

// ReadFile reads the sheet stored at path.
func ReadFile(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(f)
}

// Fetch downloads a sheet over HTTP. A nil client uses http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url string) (*model.Table, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ReadCSV(bytes.NewReader(body))
}

// Source describes where the sheet comes from. The first of Path, SheetID
// and URL that is set wins. Auth applies to SheetID and URL.
type Source struct {
	Path    string    `json:"path"`
	SheetID string    `json:"sheet_id"`
	URL     string    `json:"url"`
	Auth    auth.Conf `json:"auth"`
}

// Client returns the HTTP client used for remote sources.
func (s Source) Client(ctx context.Context, base *http.Client) *http.Client {
	return auth.NewHTTPClient(ctx, s.Auth, base)
}

// ErrNoSource is returned when a Source names nothing to read.
var ErrNoSource = errors.New("no input path, sheet id or url configured")

// Load reads the table described by src.
func Load(ctx context.Context, client *http.Client, src Source) (*model.Table, error) {
	switch {
	case src.Path != "":
		return ReadFile(src.Path)
	case src.SheetID != "":
		return Fetch(ctx, client, SheetURL(src.SheetID))
	case src.URL != "":
		return Fetch(ctx, client, src.URL)
	default:
		return nil, ErrNoSource
	}
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
