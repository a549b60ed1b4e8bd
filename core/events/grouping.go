package events

import (
	"time"

	"github.com/spaceshare/spaceshare/core/model"
)

// GroupingEvent summarises one grouping run for one kind.
type GroupingEvent struct {
	RunID             string
	Kind              model.Kind
	Participants      int
	Groups            int
	Splits            int
	MaxTimeDifference float64
	MaxPeoplePerCar   int
	// GroupSizes and Spreads are indexed alike, one entry per group.
	GroupSizes []int
	Spreads    []float64
	Duration   time.Duration
	Time       time.Time
}

// MaxSpread returns the widest group spread in hours.
func (e GroupingEvent) MaxSpread() float64 {
	var m float64
	for _, s := range e.Spreads {
		if s > m {
			m = s
		}
	}
	return m
}

// Singles counts groups with only one member.
func (e GroupingEvent) Singles() int {
	n := 0
	for _, s := range e.GroupSizes {
		if s == 1 {
			n++
		}
	}
	return n
}
