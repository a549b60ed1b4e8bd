package optimize

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaceshare/spaceshare/core/assignlog"
	"github.com/spaceshare/spaceshare/core/events"
	"github.com/spaceshare/spaceshare/core/grouping"
	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/timeconv"
	"github.com/spaceshare/spaceshare/infra/logger"
	"github.com/spaceshare/spaceshare/internal/eventbus"
)

var header = []string{model.ColumnName, model.ColumnEmail, model.ColumnArrival, model.ColumnDeparture}

func row(name, arrival, departure string) []string {
	return []string{name, name + "@example.org", "2023-07-13 " + arrival, "2023-07-17 " + departure}
}

type memStore struct {
	recs []assignlog.LogRecord
	err  error
}

func (m *memStore) Append(_ context.Context, r assignlog.LogRecord) error {
	m.recs = append(m.recs, r)
	return m.err
}
func (m *memStore) Query(context.Context, assignlog.LogQuery) ([]assignlog.LogRecord, error) {
	return m.recs, nil
}
func (m *memStore) Close() error { return nil }

func newOptimizer(t *testing.T, bus *eventbus.Bus[events.Event]) *Optimizer {
	t.Helper()
	g, err := grouping.NewGrouper(grouping.DefaultParams())
	require.NoError(t, err)
	o, err := NewOptimizer(g, timeconv.BasisMonth, bus, logger.NopLogger{})
	require.NoError(t, err)
	n := 0
	o.SetIDGenerator(func() string { n++; return fmt.Sprintf("run-%d", n) })
	return o
}

func TestOptimizeWritesGroupColumn(t *testing.T) {
	tb := model.NewTable(header, [][]string{
		row("a", "10:00:00", "09:00:00"),
		row("b", "10:10:00", "09:00:00"),
		row("c", "10:20:00", "09:00:00"),
		row("d", "14:00:00", "09:00:00"),
		row("e", "14:05:00", "09:00:00"),
		row("f", "20:00:00", "09:00:00"),
		row("g", "20:10:00", "09:00:00"),
	})
	bus := eventbus.New[events.Event]()
	sub := bus.Subscribe()
	store := &memStore{}
	o := newOptimizer(t, bus)
	o.SetLogStore(store)

	res, err := o.Optimize(context.Background(), tb, model.KindArrival)
	require.NoError(t, err)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 3, 3}, res.Labels)
	assert.Zero(t, res.Splits)
	assert.Len(t, res.Groups, 3)
	assert.InDelta(t, 13*24+10, res.Times[0], 1e-9)

	col, err := tb.IntColumn(model.ColumnArrivalGroup)
	require.NoError(t, err)
	assert.Equal(t, res.Labels, col)

	ev := (<-sub).(events.GroupingEvent)
	assert.Equal(t, "run-1", ev.RunID)
	assert.Equal(t, 7, ev.Participants)
	assert.Equal(t, 3, ev.Groups)
	assert.Equal(t, []int{3, 2, 2}, ev.GroupSizes)
	assert.Equal(t, 3, ev.MaxPeoplePerCar)

	require.Len(t, store.recs, 1)
	assert.Equal(t, "run-1", store.recs[0].RunID)
	assert.Equal(t, "month", store.recs[0].Basis)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, store.recs[0].Names)
}

func TestOptimizeSplitsFullCars(t *testing.T) {
	tb := model.NewTable(header, [][]string{
		row("a", "10:00:00", "09:00:00"),
		row("b", "10:01:00", "09:00:00"),
		row("c", "10:02:00", "09:00:00"),
		row("d", "10:03:00", "09:00:00"),
	})
	o := newOptimizer(t, nil)
	res, err := o.Optimize(context.Background(), tb, model.KindDeparture)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Splits)
	assert.Equal(t, []int{1, 1, 2, 2}, res.Labels)
	assert.Equal(t, []int{1, 1, 1, 1}, res.Initial)
	assert.True(t, tb.Has(model.ColumnDepartureGroup))
	assert.False(t, tb.Has(model.ColumnArrivalGroup))
}

func TestOptimizeAllSortsByGroups(t *testing.T) {
	tb := model.NewTable(header, [][]string{
		row("a", "10:00:00", "09:00:00"),
		row("b", "14:00:00", "09:05:00"),
		row("c", "10:10:00", "09:10:00"),
	})
	o := newOptimizer(t, nil)
	res, err := o.OptimizeAll(context.Background(), tb, nil)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, model.KindArrival, res[0].Kind)
	assert.Equal(t, model.KindDeparture, res[1].Kind)
	assert.Equal(t, "run-1", res[0].RunID)
	assert.Equal(t, "run-2", res[1].RunID)

	names, err := tb.Column(model.ColumnName)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, names)
	arr, err := tb.IntColumn(model.ColumnArrivalGroup)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, arr)
	dep, err := tb.IntColumn(model.ColumnDepartureGroup)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, dep)
}

func TestOptimizeErrors(t *testing.T) {
	o := newOptimizer(t, nil)
	ctx := context.Background()

	_, err := o.Optimize(ctx, model.NewTable(header, nil), model.KindArrival)
	assert.ErrorIs(t, err, model.ErrEmptyInput)

	tb := model.NewTable(header, [][]string{row("a", "10:00:00", "09:00:00")})
	_, err = o.Optimize(ctx, tb, model.Kind(9))
	assert.ErrorIs(t, err, model.ErrInvalidKind)

	bad := model.NewTable(header, [][]string{{"a", "a@x", "soon", "later"}})
	_, err = o.Optimize(ctx, bad, model.KindArrival)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.ErrorIs(t, err, timeconv.ErrInvalidTimestamp)

	noCol := model.NewTable([]string{model.ColumnName}, [][]string{{"a"}})
	_, err = o.Optimize(ctx, noCol, model.KindArrival)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = o.Optimize(cctx, tb, model.KindArrival)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptimizeStoreFailureIsNotFatal(t *testing.T) {
	o := newOptimizer(t, nil)
	o.SetLogStore(&memStore{err: errors.New("disk full")})
	tb := model.NewTable(header, [][]string{row("a", "10:00:00", "09:00:00")})
	res, err := o.Optimize(context.Background(), tb, model.KindArrival)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Labels)
}

func TestNewOptimizerValidates(t *testing.T) {
	g, err := grouping.NewGrouper(grouping.DefaultParams())
	require.NoError(t, err)
	_, err = NewOptimizer(nil, timeconv.BasisMonth, nil, logger.NopLogger{})
	assert.Error(t, err)
	_, err = NewOptimizer(g, timeconv.Basis("week"), nil, logger.NopLogger{})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.ErrorIs(t, err, timeconv.ErrUnknownBasis)
}
