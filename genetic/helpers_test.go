package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// cycleSource is a deterministic rand.Source that replays a fixed sequence of
// Int63 values, repeating the final value once the sequence is exhausted.
type cycleSource struct {
	values []int64
	pos    int
}

func (s *cycleSource) Int63() int64 {
	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	return v
}

func (s *cycleSource) Seed(int64) {}

// fixedRand builds a *rand.Rand over a cycleSource. Encode each planned draw
// with intnDraw or floatDraw in the order the operator consumes them.
func fixedRand(values ...int64) *rand.Rand {
	return rand.New(&cycleSource{values: values})
}

// intnDraw encodes an Int63 value that makes rand.Intn(n) return k for any
// small n > k. Intn reads the top 31 bits of the raw draw. Bit 31 is set so
// the Uint32-based rejection sampler behind rand.Shuffle never sees a zero
// draw, which it would reject forever against a source that repeats values;
// Intn ignores that bit, so Intn-consuming draws are unaffected.
func intnDraw(k int) int64 {
	return int64(k)<<32 | 1<<31
}

// floatDraw encodes an Int63 value that makes rand.Float64 return f. Exact
// for dyadic fractions, close enough elsewhere.
func floatDraw(f float64) int64 {
	return int64(f * (1 << 63))
}

// newTestPopulation builds a single-gene population whose individuals carry
// the given fitness values (gene value and fitness coincide). The random
// source starts as all-zero draws; tests override p.Rand when they need a
// specific sequence.
func newTestPopulation(t *testing.T, fitnesses ...float64) *Population {
	t.Helper()
	alg, err := NewAlgorithm([]string{"x"}, Interval{Min: -100, Max: 100}, EncodingReal, func(ind *Individual) float64 {
		return ind.Values[0]
	})
	require.NoError(t, err)

	p := NewPopulation(alg)
	p.Rand = fixedRand(0)
	for _, f := range fitnesses {
		require.NoError(t, p.Push(&Individual{Keys: []string{"x"}, Values: []float64{f}, Fitness: f}))
	}
	return p
}

// newGenomePopulation builds a fixed-gene-set population with sum-of-values
// fitness, for the crossover and mutation tests that need multi-gene genomes.
func newGenomePopulation(t *testing.T, genes []string, interval Interval, encoding Encoding) *Population {
	t.Helper()
	alg, err := NewAlgorithm(genes, interval, encoding, func(ind *Individual) float64 {
		return Sum(ind.Values)
	})
	require.NoError(t, err)

	p := NewPopulation(alg)
	p.Rand = fixedRand(0)
	return p
}

// newVariablePopulation builds a variable-length population with sum-of-values
// fitness for the structural mutation tests.
func newVariablePopulation(t *testing.T, maxLength int, interval Interval) *Population {
	t.Helper()
	alg, err := NewVariableLengthAlgorithm(maxLength, interval, EncodingReal, func(ind *Individual) float64 {
		return Sum(ind.Values)
	})
	require.NoError(t, err)

	p := NewPopulation(alg)
	p.Rand = fixedRand(0)
	return p
}

// genome wraps a value list into an individual of the population's algorithm,
// keyed by position.
func genome(p *Population, values ...float64) *Individual {
	return newIndividualFromValues(p.Algorithm, positionalKeys(len(values)), values)
}
