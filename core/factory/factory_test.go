package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ A int }

type sampleConf struct {
	A int `json:"a"`
}

func newSampleRegistry(t *testing.T) *Registry[*sample] {
	t.Helper()
	reg := NewRegistry[*sample]("sample")
	require.NoError(t, reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{A: c.A}, nil
	}))
	return reg
}

func TestRegistry_Create(t *testing.T) {
	inst, err := newSampleRegistry(t).Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.A)
}

func TestRegistry_WeakDecode(t *testing.T) {
	// values coming from environment overrides arrive as strings
	inst, err := newSampleRegistry(t).Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": "4"}})
	require.NoError(t, err)
	assert.Equal(t, 4, inst.A)
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]("number")
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }))
	assert.Error(t, reg.Register("y", nil))

	_, err := reg.Create(ModuleConfig{Type: "z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown number type "z"`)
	assert.Contains(t, err.Error(), "[x]")
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry[int]("number")
	for _, n := range []string{"b", "a", "c"} {
		require.NoError(t, reg.Register(n, func(map[string]any) (int, error) { return 0, nil }))
	}
	assert.Equal(t, []string{"a", "b", "c"}, reg.Names())
}
