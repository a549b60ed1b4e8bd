package config

import (
	"fmt"

	"github.com/spaceshare/spaceshare/core/factory"
	"github.com/spaceshare/spaceshare/core/notify"
)

// DefaultOutputPath is where the annotated sheet is written.
const DefaultOutputPath = "optimized_clustering.csv"

// OutputConfig selects where results are written.
type OutputConfig struct {
	Path string `json:"path"`
	// GroupsJSON optionally receives a per-group report.
	GroupsJSON string `json:"groups_json"`
	// Chart optionally receives an HTML scatter chart of the groups.
	Chart string `json:"chart"`
}

func (c *OutputConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = DefaultOutputPath
	}
}

func (c OutputConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.GroupsJSON != "" && c.GroupsJSON == c.Path {
		return fmt.Errorf("groups_json must differ from path")
	}
	return nil
}

// NotifyConfig configures the messages sent after confirmation.
type NotifyConfig struct {
	Sender        factory.ModuleConfig `json:"sender"`
	SubjectPrefix string               `json:"subject_prefix"`
	Team          string               `json:"team"`
}

// SetDefaults selects the dry run sender and the default wording.
func (c *NotifyConfig) SetDefaults() {
	if c.Sender.Type == "" {
		c.Sender.Type = "log"
	}
	d := notify.DefaultOptions()
	if c.SubjectPrefix == "" {
		c.SubjectPrefix = d.SubjectPrefix
	}
	if c.Team == "" {
		c.Team = d.Team
	}
}

// Options returns the message wording.
func (c NotifyConfig) Options() notify.Options {
	return notify.Options{SubjectPrefix: c.SubjectPrefix, Team: c.Team}
}
