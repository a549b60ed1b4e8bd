// Package optimize runs the ride grouping over a participant table and
// records each run.
package optimize

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spaceshare/spaceshare/core/assignlog"
	"github.com/spaceshare/spaceshare/core/events"
	"github.com/spaceshare/spaceshare/core/grouping"
	"github.com/spaceshare/spaceshare/core/logger"
	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/timeconv"
	"github.com/spaceshare/spaceshare/internal/eventbus"
)

// Result describes the grouping of one kind.
type Result struct {
	RunID      string                `json:"run_id"`
	Kind       model.Kind            `json:"kind"`
	Params     grouping.Params       `json:"params"`
	Times      []float64             `json:"times"`
	Labels     []int                 `json:"labels"`
	Initial    []int                 `json:"initial"`
	Splits     int                   `json:"splits"`
	Groups     []grouping.GroupStats `json:"groups"`
	Duration   time.Duration         `json:"duration"`
	FinishedAt time.Time             `json:"finished_at"`
}

// Optimizer writes group columns into a table.
type Optimizer struct {
	grouper *grouping.Grouper
	basis   timeconv.Basis
	bus     *eventbus.Bus[events.Event]
	logger  logger.Logger
	store   assignlog.LogStore
	newID   func() string
	now     func() time.Time
}

// NewOptimizer creates an optimizer. bus may be nil.
func NewOptimizer(g *grouping.Grouper, basis timeconv.Basis, bus *eventbus.Bus[events.Event], log logger.Logger) (*Optimizer, error) {
	if g == nil || log == nil {
		return nil, fmt.Errorf("optimize: nil parameter provided to NewOptimizer")
	}
	if _, err := basis.Func(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
	}
	return &Optimizer{
		grouper: g,
		basis:   basis,
		bus:     bus,
		logger:  log,
		newID:   uuid.NewString,
		now:     time.Now,
	}, nil
}

// SetLogStore configures the store that keeps the history of runs.
func (o *Optimizer) SetLogStore(s assignlog.LogStore) { o.store = s }

// SetIDGenerator replaces the run id source.
func (o *Optimizer) SetIDGenerator(f func() string) {
	if f != nil {
		o.newID = f
	}
}

// Optimize groups the participants of t by kind and writes the labels into
// kind's group column, replacing any previous values.
func (o *Optimizer) Optimize(ctx context.Context, t *model.Table, kind model.Kind) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !kind.Valid() {
		return Result{}, fmt.Errorf("%w, got %d", model.ErrInvalidKind, int(kind))
	}
	if t == nil || t.Len() == 0 {
		return Result{}, fmt.Errorf("%w: no participants", model.ErrEmptyInput)
	}
	start := o.now()

	cells, err := t.Column(kind.TimeColumn())
	if err != nil {
		return Result{}, err
	}
	stamps, err := timeconv.ParseColumn(cells)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", model.ErrInvalidArgument, kind.TimeColumn(), err)
	}
	times, err := timeconv.Normalize(o.basis, stamps)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
	}
	a, err := o.grouper.Assign(times)
	if err != nil {
		return Result{}, err
	}
	if err := t.SetIntColumn(kind.GroupColumn(), a.Labels); err != nil {
		return Result{}, err
	}

	end := o.now()
	res := Result{
		RunID:      o.newID(),
		Kind:       kind,
		Params:     o.grouper.Params(),
		Times:      times,
		Labels:     a.Labels,
		Initial:    a.Initial,
		Splits:     a.Splits,
		Groups:     grouping.Summarize(times, a.Labels),
		Duration:   end.Sub(start),
		FinishedAt: end,
	}
	o.logger.Infof("%s: %d participants in %d groups (%d split), widest spread %.2fh",
		kind, len(times), len(res.Groups), res.Splits, grouping.MaxSpread(res.Groups))
	o.logger.Debugw("grouping run", map[string]any{
		"run_id": res.RunID,
		"kind":   kind.String(),
		"labels": res.Labels,
	})
	o.publish(res)
	o.record(ctx, t, res)
	return res, nil
}

// OptimizeAll optimises every kind in kinds, then sorts the rows by the
// resulting group columns. A nil kinds runs all kinds.
func (o *Optimizer) OptimizeAll(ctx context.Context, t *model.Table, kinds []model.Kind) ([]Result, error) {
	if kinds == nil {
		kinds = model.Kinds
	}
	out := make([]Result, 0, len(kinds))
	cols := make([]string, 0, len(kinds))
	for _, k := range kinds {
		r, err := o.Optimize(ctx, t, k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out = append(out, r)
		cols = append(cols, k.GroupColumn())
	}
	t.SortBy(cols...)
	return out, nil
}

func (o *Optimizer) publish(r Result) {
	if o.bus == nil {
		return
	}
	sizes := make([]int, len(r.Groups))
	spreads := make([]float64, len(r.Groups))
	for i, g := range r.Groups {
		sizes[i] = g.Size()
		spreads[i] = g.Spread
	}
	o.bus.Publish(events.GroupingEvent{
		RunID:             r.RunID,
		Kind:              r.Kind,
		Participants:      len(r.Labels),
		Groups:            len(r.Groups),
		Splits:            r.Splits,
		MaxTimeDifference: r.Params.MaxTimeDifference,
		MaxPeoplePerCar:   r.Params.MaxPeoplePerCar,
		GroupSizes:        sizes,
		Spreads:           spreads,
		Duration:          r.Duration,
		Time:              r.FinishedAt,
	})
}

func (o *Optimizer) record(ctx context.Context, t *model.Table, r Result) {
	if o.store == nil {
		return
	}
	names, _ := t.Column(model.ColumnName)
	rec := assignlog.LogRecord{
		RunID:     r.RunID,
		Timestamp: r.FinishedAt,
		Kind:      r.Kind,
		Params:    r.Params,
		Basis:     string(o.basis),
		Names:     names,
		Labels:    r.Labels,
		Groups:    r.Groups,
	}
	if err := o.store.Append(ctx, rec); err != nil {
		o.logger.Warnf("store grouping run %s: %v", r.RunID, err)
	}
}
