package config

import (
	"github.com/spaceshare/spaceshare/core/grouping"
	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/timeconv"
)

// GroupingConfig holds the grouping policy.
type GroupingConfig struct {
	// MaxTimeDifference is the linkage cut height in hours.
	MaxTimeDifference float64 `json:"max_time_difference"`
	MaxPeoplePerCar   int     `json:"max_people_per_car"`
	// TimeBasis is "month" or "year".
	TimeBasis string `json:"time_basis"`
	// Kinds to optimise, in order.
	Kinds []string `json:"kinds"`
}

func DefaultGrouping() GroupingConfig {
	return GroupingConfig{
		MaxTimeDifference: grouping.DefaultMaxTimeDifference,
		MaxPeoplePerCar:   grouping.DefaultMaxPeoplePerCar,
		TimeBasis:         string(timeconv.BasisMonth),
	}
}

// SetDefaults applies sane defaults.
func (c *GroupingConfig) SetDefaults() {
	if c.TimeBasis == "" {
		c.TimeBasis = string(timeconv.BasisMonth)
	}
	if len(c.Kinds) == 0 {
		for _, k := range model.Kinds {
			c.Kinds = append(c.Kinds, k.String())
		}
	}
}

// Params returns the policy as grouping parameters.
func (c GroupingConfig) Params() grouping.Params {
	return grouping.Params{MaxTimeDifference: c.MaxTimeDifference, MaxPeoplePerCar: c.MaxPeoplePerCar}
}

// Basis parses TimeBasis.
func (c GroupingConfig) Basis() (timeconv.Basis, error) {
	return timeconv.ParseBasis(c.TimeBasis)
}

// ParsedKinds parses Kinds.
func (c GroupingConfig) ParsedKinds() ([]model.Kind, error) {
	out := make([]model.Kind, 0, len(c.Kinds))
	for _, s := range c.Kinds {
		k, err := model.ParseKind(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Validate checks the policy, basis and kinds.
func (c GroupingConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := c.Basis(); err != nil {
		return err
	}
	_, err := c.ParsedKinds()
	return err
}
