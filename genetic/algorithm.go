package genetic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Encoding selects the numeric domain used whenever an operator synthesizes
// a new gene value.
type Encoding int

const (
	// EncodingReal leaves synthesized values as-is.
	EncodingReal Encoding = iota
	// EncodingInteger rounds every synthesized value to the nearest integer.
	EncodingInteger
)

// ParseEncoding converts a configuration string into an Encoding value.
// The empty string selects EncodingReal.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "real":
		return EncodingReal, nil
	case "integer":
		return EncodingInteger, nil
	}
	return EncodingReal, fmt.Errorf("config error: invalid encoding '%s', must be 'real' or 'integer'", s)
}

// Interval is the closed value range every gene must stay inside.
type Interval struct {
	Min float64
	Max float64
}

// Width returns Max - Min.
func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

// FitnessFunc scores a fully-built genome. It must be total over any genome
// the configuration can produce; errors raised inside it propagate uncaught.
type FitnessFunc func(ind *Individual) float64

// GeneratorFunc produces the value for one gene during individual
// construction. It receives the partially-built individual, the gene key and
// the gene's position in the genome.
type GeneratorFunc func(ind *Individual, key string, index int) float64

// Configuration errors raised at construction time.
var (
	ErrInvalidInterval = errors.New("interval min must not exceed max")
	ErrMissingFitness  = errors.New("fitness function is required")
	ErrNoGenes         = errors.New("gene keys are required unless variable-length mode is enabled")
	ErrNegativeSize    = errors.New("population size cannot be negative")
)

// DefaultMaxVariableLength bounds the genome length drawn at initialization
// time when variable-length mode is active and no explicit bound is given.
const DefaultMaxVariableLength = 100

// Algorithm is the immutable description of the optimization problem: the
// gene keys (or variable-length mode), the value interval, the numeric
// encoding and the fitness function. Every component holds a read-only
// reference to it; nothing mutates an Algorithm after construction.
type Algorithm struct {
	Genes             []string // ordered gene keys; empty in variable-length mode
	VariableLength    bool     // genomes use positional keys 0..len-1 with per-individual length
	MaxVariableLength int      // upper bound on generated length in variable-length mode
	Interval          Interval
	Encoding          Encoding
	Fitness           FitnessFunc
}

// NewAlgorithm builds a fixed-gene-set algorithm description.
func NewAlgorithm(genes []string, interval Interval, encoding Encoding, fitness FitnessFunc) (*Algorithm, error) {
	if len(genes) == 0 {
		return nil, fmt.Errorf("config error: %w", ErrNoGenes)
	}
	return newAlgorithm(genes, false, 0, interval, encoding, fitness)
}

// NewVariableLengthAlgorithm builds an algorithm description whose genomes
// use positional keys with per-individual length. maxLength bounds the
// length drawn at initialization; zero selects DefaultMaxVariableLength.
func NewVariableLengthAlgorithm(maxLength int, interval Interval, encoding Encoding, fitness FitnessFunc) (*Algorithm, error) {
	if maxLength < 0 {
		return nil, fmt.Errorf("config error: max variable length cannot be negative (%d)", maxLength)
	}
	if maxLength == 0 {
		maxLength = DefaultMaxVariableLength
	}
	return newAlgorithm(nil, true, maxLength, interval, encoding, fitness)
}

func newAlgorithm(genes []string, variableLength bool, maxLength int, interval Interval, encoding Encoding, fitness FitnessFunc) (*Algorithm, error) {
	if interval.Min > interval.Max {
		return nil, fmt.Errorf("config error: %w", ErrInvalidInterval)
	}
	if fitness == nil {
		return nil, fmt.Errorf("config error: %w", ErrMissingFitness)
	}
	return &Algorithm{
		Genes:             append([]string(nil), genes...), // algorithm owns its key list
		VariableLength:    variableLength,
		MaxVariableLength: maxLength,
		Interval:          interval,
		Encoding:          encoding,
		Fitness:           fitness,
	}, nil
}

// geneKeys returns the ordered key list for a genome of the given length:
// the configured keys in fixed mode, positional keys in variable-length mode.
func (a *Algorithm) geneKeys(length int) []string {
	if a.VariableLength {
		return positionalKeys(length)
	}
	return a.Genes
}

// roundValue applies the encoding's rounding rule to a synthesized value.
func (a *Algorithm) roundValue(v float64) float64 {
	if a.Encoding == EncodingInteger {
		return math.Round(v)
	}
	return v
}

// randomValue draws uniformly from the interval, honoring the encoding.
func (a *Algorithm) randomValue(rng *rand.Rand) float64 {
	v := a.Interval.Min + rng.Float64()*a.Interval.Width()
	return a.roundValue(v)
}
