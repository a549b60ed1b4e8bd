package grouping

import (
	"fmt"
	"math"
	"slices"

	"github.com/spaceshare/spaceshare/core/model"
)

// Defaults used when a Params field is left at its zero value by Normalize.
const (
	DefaultMaxTimeDifference = 0.5
	DefaultMaxPeoplePerCar   = 3
)

// Params holds the grouping policy. MaxTimeDifference is in hours.
type Params struct {
	MaxTimeDifference float64 `json:"max_time_difference"`
	MaxPeoplePerCar   int     `json:"max_people_per_car"`
}

// DefaultParams returns a half hour threshold and three seats per car.
func DefaultParams() Params {
	return Params{MaxTimeDifference: DefaultMaxTimeDifference, MaxPeoplePerCar: DefaultMaxPeoplePerCar}
}

// Validate checks the policy values.
func (p Params) Validate() error {
	if p.MaxPeoplePerCar < 1 {
		return fmt.Errorf("%w: max_people_per_car must be at least 1, got %d", model.ErrInvalidArgument, p.MaxPeoplePerCar)
	}
	if math.IsNaN(p.MaxTimeDifference) || p.MaxTimeDifference < 0 {
		return fmt.Errorf("%w: max_time_difference must be a non-negative number of hours, got %v", model.ErrInvalidArgument, p.MaxTimeDifference)
	}
	return nil
}

// Assignment is the outcome of one grouping run.
type Assignment struct {
	// Labels holds one group id per input time, in input order.
	Labels []int
	// Initial holds the labels produced by the distance cut, before repair.
	Initial []int
	// Splits counts the clusters that exceeded the car capacity.
	Splits int
	// NextLabel is the smallest label not used by Labels.
	NextLabel int
}

// Groups returns the number of distinct labels.
func (a Assignment) Groups() int {
	return len(Members(a.Labels))
}

// Grouper assigns ride groups with a fixed policy. It holds no state between
// calls and is safe for concurrent use.
type Grouper struct {
	params Params
}

// NewGrouper validates p and returns a Grouper.
func NewGrouper(p Params) (*Grouper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Grouper{params: p}, nil
}

// Params returns the policy in use.
func (g *Grouper) Params() Params { return g.params }

// Assign groups the times. It fails on empty input and on NaN or infinite
// values.
func (g *Grouper) Assign(times []float64) (Assignment, error) {
	if len(times) == 0 {
		return Assignment{}, fmt.Errorf("%w: no times to group", model.ErrEmptyInput)
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Assignment{}, fmt.Errorf("%w: time %d is %v", model.ErrInvalidArgument, i, t)
		}
	}

	initial := CutTree(Linkage(times), len(times), g.params.MaxTimeDifference)
	next := slices.Max(initial) + 1
	labels, next, splits := Repair(times, initial, g.params.MaxPeoplePerCar, next)
	return Assignment{Labels: labels, Initial: initial, Splits: splits, NextLabel: next}, nil
}

// AssignGroups returns one group id per time such that no group holds more
// than maxPeoplePerCar entries.
func AssignGroups(times []float64, maxTimeDifference float64, maxPeoplePerCar int) ([]int, error) {
	g, err := NewGrouper(Params{MaxTimeDifference: maxTimeDifference, MaxPeoplePerCar: maxPeoplePerCar})
	if err != nil {
		return nil, err
	}
	a, err := g.Assign(times)
	if err != nil {
		return nil, err
	}
	return a.Labels, nil
}

// Members maps each label to the ascending indices carrying it.
func Members(labels []int) map[int][]int {
	out := make(map[int][]int)
	for i, l := range labels {
		out[l] = append(out[l], i)
	}
	return out
}
