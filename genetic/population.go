package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Population holds the current generation of individuals together with the
// algorithm configuration that created them. The individual list is owned
// exclusively by the Population; its order carries no meaning except where
// an operator documents otherwise (e.g. the shuffled visitation order of
// stochastic universal sampling).
//
// Operators are not safe to invoke concurrently against the same Population:
// Replacement mutates the individual list in place while the other operators
// read it. Run each generation's pipeline to completion before the next.
type Population struct {
	Algorithm   *Algorithm
	Individuals []*Individual
	Generation  int
	// Rand is the randomness source every operator draws from. Tests and
	// reproducible runs inject a deterministic source here.
	Rand *rand.Rand
}

// NewPopulation creates an empty population bound to the given algorithm
// configuration, with a time-seeded random source.
func NewPopulation(alg *Algorithm) *Population {
	return &Population{
		Algorithm: alg,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Count returns the number of individuals in the current generation.
func (p *Population) Count() int {
	return len(p.Individuals)
}

// Initialize fills the population with n freshly-generated individuals,
// discarding any previous generation. A nil generator selects the default,
// which draws uniformly from the algorithm's interval. In variable-length
// mode each individual gets a random length in [1, MaxVariableLength].
func (p *Population) Initialize(n int, generator GeneratorFunc) error {
	if n < 0 {
		return fmt.Errorf("config error: %w", ErrNegativeSize)
	}
	if generator == nil {
		generator = p.DefaultGenerator()
	}

	individuals := make([]*Individual, 0, n)
	for i := 0; i < n; i++ {
		length := len(p.Algorithm.Genes)
		if p.Algorithm.VariableLength {
			length = 1 + p.Rand.Intn(p.Algorithm.MaxVariableLength)
		}
		individuals = append(individuals, NewIndividual(p.Algorithm, p.Algorithm.geneKeys(length), generator))
	}
	p.Individuals = individuals
	p.Generation = 0
	return nil
}

// DefaultGenerator returns the uniform-from-interval generator, rounding to
// the nearest integer under EncodingInteger.
func (p *Population) DefaultGenerator() GeneratorFunc {
	return func(_ *Individual, _ string, _ int) float64 {
		return p.Algorithm.randomValue(p.Rand)
	}
}

// Push appends an externally-constructed individual to the population.
func (p *Population) Push(ind *Individual) error {
	if ind == nil {
		return fmt.Errorf("cannot push a nil individual into a population")
	}
	p.Individuals = append(p.Individuals, ind)
	return nil
}

// Best returns the highest-fitness individual of the current generation, or
// nil for an empty population.
func (p *Population) Best() *Individual {
	var best *Individual
	maxFitness := math.Inf(-1)
	for _, ind := range p.Individuals {
		if ind.Fitness > maxFitness {
			maxFitness = ind.Fitness
			best = ind
		}
	}
	return best
}

// FitnessValues returns every individual's fitness in population order.
// Feed the result to the statistics helpers for per-generation reporting.
func (p *Population) FitnessValues() []float64 {
	values := make([]float64, len(p.Individuals))
	for i, ind := range p.Individuals {
		values[i] = ind.Fitness
	}
	return values
}
