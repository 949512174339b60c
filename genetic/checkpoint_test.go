package genetic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointRoundTrip(t *testing.T) {
	p := newGenomePopulation(t, []string{"a", "b"}, Interval{Min: -5, Max: 5}, EncodingReal)
	require.NoError(t, p.Initialize(6, nil))
	p.Generation = 7

	path := filepath.Join(t.TempDir(), "checkpoint.gz")
	require.NoError(t, p.SaveCheckpoint(path))

	loaded, err := LoadCheckpoint(path, p.Algorithm)
	require.NoError(t, err)

	assert.Same(t, p.Algorithm, loaded.Algorithm)
	assert.Equal(t, 7, loaded.Generation)
	require.Equal(t, p.Count(), loaded.Count())
	for i, ind := range p.Individuals {
		assert.Equal(t, ind.Keys, loaded.Individuals[i].Keys)
		assert.Equal(t, ind.Values, loaded.Individuals[i].Values)
		// Stored fitness is reused, not recomputed.
		assert.Equal(t, ind.Fitness, loaded.Individuals[i].Fitness)
	}
}

func TestLoadCheckpointRequiresAlgorithm(t *testing.T) {
	_, err := LoadCheckpoint("anywhere", nil)
	assert.Error(t, err)
}

func TestLoadCheckpointMissingFile(t *testing.T) {
	p := newGenomePopulation(t, []string{"a"}, Interval{Min: 0, Max: 1}, EncodingReal)
	_, err := LoadCheckpoint(filepath.Join(t.TempDir(), "missing"), p.Algorithm)
	assert.Error(t, err)
}

func TestLoadCheckpointCorruptFile(t *testing.T) {
	p := newGenomePopulation(t, []string{"a"}, Interval{Min: 0, Max: 1}, EncodingReal)
	path := filepath.Join(t.TempDir(), "corrupt.gz")
	require.NoError(t, os.WriteFile(path, []byte("not a gzip stream"), 0644))

	_, err := LoadCheckpoint(path, p.Algorithm)
	assert.Error(t, err)
}

func TestSaveCheckpointBadPath(t *testing.T) {
	p := newGenomePopulation(t, []string{"a"}, Interval{Min: 0, Max: 1}, EncodingReal)
	err := p.SaveCheckpoint(filepath.Join(t.TempDir(), "no", "such", "dir", "checkpoint.gz"))
	assert.Error(t, err)
}
