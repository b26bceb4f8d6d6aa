package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllSections(t *testing.T) {
	f, err := Parse(strings.NewReader(`
generation:
  g_prob: 0.3
  fixed: true
sweep:
  start: 16
  end: 64
  step: 16
  trials: 500
  seed: 42
output:
  dir: out
  format: tsv
  precision: -1
`))
	require.NoError(t, err)
	require.NotNil(t, f.Generation.GProb)
	assert.Equal(t, 0.3, *f.Generation.GProb)
	assert.True(t, *f.Generation.Fixed)
	assert.Nil(t, f.Generation.Dimers, "absent keys stay nil")
	assert.Equal(t, 16, *f.Sweep.Start)
	assert.Equal(t, 64, *f.Sweep.End)
	assert.Equal(t, uint64(42), *f.Sweep.Seed)
	assert.Nil(t, f.Sweep.Threads)
	assert.Equal(t, "out", *f.Output.Dir)
	assert.Equal(t, "tsv", *f.Output.Format)
	assert.Equal(t, -1, *f.Output.Precision)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader("sweep:\n  trails: 10\n"))
	assert.Error(t, err)
}

func TestParse_WrongType(t *testing.T) {
	_, err := Parse(strings.NewReader("sweep:\n  trials: many\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(p, []byte("generation: {dimers: true}\n"), 0o644))
	f, err := Load(p)
	require.NoError(t, err)
	assert.True(t, *f.Generation.Dimers)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
