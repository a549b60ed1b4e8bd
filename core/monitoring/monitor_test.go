package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeMonitor struct {
	errs    []error
	tags    []map[string]string
	panics  []any
	flushed int
}

func (f *fakeMonitor) CaptureException(err error, tags map[string]string) {
	f.errs = append(f.errs, err)
	f.tags = append(f.tags, tags)
}
func (f *fakeMonitor) CapturePanic(v any)  { f.panics = append(f.panics, v) }
func (f *fakeMonitor) Flush(time.Duration) { f.flushed++ }

func TestCaptureException(t *testing.T) {
	f := &fakeMonitor{}
	Init(f)
	t.Cleanup(func() { Init(nil) })

	CaptureException(nil, nil)
	CaptureException(errors.New("boom"), map[string]string{"command": "run"})
	assert.Len(t, f.errs, 1)
	assert.Equal(t, "run", f.tags[0]["command"])

	Flush(time.Second)
	assert.Equal(t, 1, f.flushed)
}

func TestRecoverReportsAndRepanics(t *testing.T) {
	f := &fakeMonitor{}
	Init(f)
	t.Cleanup(func() { Init(nil) })

	assert.PanicsWithValue(t, "kaboom", func() {
		defer Recover()
		panic("kaboom")
	})
	assert.Equal(t, []any{"kaboom"}, f.panics)
	assert.Equal(t, 1, f.flushed)
}

func TestInitNilRestoresNop(t *testing.T) {
	Init(nil)
	assert.IsType(t, NopMonitor{}, get())
	assert.NotPanics(t, func() {
		defer Recover()
	})
}
