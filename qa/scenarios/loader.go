package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/timeconv"
)

// Expected describes the outcome of a scenario. Error, when set, is one of
// "invalid_argument", "invalid_kind" or "empty_input".
type Expected struct {
	Error  string  `yaml:"error,omitempty"`
	Groups [][]int `yaml:"groups,omitempty"`
	Sizes  []int   `yaml:"sizes,omitempty"`
}

type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Kind is parsed before grouping when set.
	Kind string `yaml:"kind,omitempty"`
	// Times are hour values. Timestamps, when given, are normalised with
	// Basis and replace Times.
	Times             []float64 `yaml:"times"`
	Timestamps        []string  `yaml:"timestamps,omitempty"`
	Basis             string    `yaml:"basis,omitempty"`
	MaxTimeDifference float64   `yaml:"max_time_difference"`
	MaxPeoplePerCar   int       `yaml:"max_people_per_car"`
	// Tight asks for every group to lie within MaxTimeDifference.
	Tight    bool     `yaml:"tight,omitempty"`
	Expected Expected `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("%s: scenario has no name", path)
	}
	return &sc, nil
}

// Input returns the hour values the scenario groups.
func (sc *Scenario) Input() ([]float64, error) {
	if len(sc.Timestamps) == 0 {
		return sc.Times, nil
	}
	basis, err := timeconv.ParseBasis(sc.Basis)
	if err != nil {
		return nil, err
	}
	ts, err := timeconv.ParseColumn(sc.Timestamps)
	if err != nil {
		return nil, err
	}
	return timeconv.Normalize(basis, ts)
}

// expectedError maps Expected.Error to its sentinel, nil when no error is
// expected.
func expectedError(name string) error {
	switch name {
	case "":
		return nil
	case "invalid_kind":
		return model.ErrInvalidKind
	case "empty_input":
		return model.ErrEmptyInput
	default:
		return model.ErrInvalidArgument
	}
}
