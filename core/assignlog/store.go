// Package assignlog keeps a history of grouping runs so that earlier
// assignments can be inspected after the sheet has been edited by hand.
package assignlog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spaceshare/spaceshare/core/grouping"
	"github.com/spaceshare/spaceshare/core/model"
)

// LogRecord captures one grouping run for one kind.
type LogRecord struct {
	RunID     string                `json:"run_id"`
	Timestamp time.Time             `json:"timestamp"`
	Kind      model.Kind            `json:"kind"`
	Params    grouping.Params       `json:"params"`
	Basis     string                `json:"basis"`
	Names     []string              `json:"names,omitempty"`
	Labels    []int                 `json:"labels"`
	Groups    []grouping.GroupStats `json:"groups"`
}

// LogQuery defines filters for retrieving records. Zero fields match
// everything.
type LogQuery struct {
	Start time.Time
	End   time.Time
	RunID string
	Kinds []model.Kind
}

// Match reports whether r satisfies every filter of q.
func (q LogQuery) Match(r LogRecord) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.RunID != "" && r.RunID != q.RunID {
		return false
	}
	if len(q.Kinds) > 0 && !slices.Contains(q.Kinds, r.Kind) {
		return false
	}
	return true
}

// LogStore persists LogRecords and supports querying.
type LogStore interface {
	Append(ctx context.Context, rec LogRecord) error
	Query(ctx context.Context, q LogQuery) ([]LogRecord, error)
	Close() error
}

// Config selects and configures the store backend.
type Config struct {
	// Backend is "jsonl", "sqlite" or "none".
	Backend string `json:"backend"`
	Path    string `json:"path"`
	// Rotation settings, jsonl only. MaxSizeMB 0 disables rotation.
	MaxSizeMB  int `json:"max_size_mb"`
	MaxBackups int `json:"max_backups"`
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" && c.Backend == "jsonl" {
		c.Path = "assignments.jsonl"
	}
	if c.Path == "" && c.Backend == "sqlite" {
		c.Path = "assignments.db"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	switch c.Backend {
	case "none":
		return nil
	case "jsonl", "sqlite":
	default:
		return fmt.Errorf("unknown history backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("history path is required")
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("history rotation settings must not be negative")
	}
	return nil
}

// Open builds the store described by cfg.
func Open(cfg Config) (LogStore, error) {
	switch cfg.Backend {
	case "none":
		return NopStore{}, nil
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	case "jsonl":
		if cfg.MaxSizeMB > 0 {
			return NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
		}
		return NewJSONLStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown history backend %s", cfg.Backend)
	}
}

// NopStore discards records.
type NopStore struct{}

func (NopStore) Append(context.Context, LogRecord) error              { return nil }
func (NopStore) Query(context.Context, LogQuery) ([]LogRecord, error) { return nil, nil }
func (NopStore) Close() error                                         { return nil }
