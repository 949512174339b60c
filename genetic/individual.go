package genetic

import "strconv"

// Individual is one candidate solution: an ordered genome plus the fitness
// computed against it at construction time. Individuals are treated as
// immutable after NewIndividual returns — operators that change a genome
// always construct a new Individual, so the stored fitness can never go
// stale. Individuals carry no back-reference to the Population and may be
// shared freely across parent and child lists within a generation.
type Individual struct {
	Keys    []string  // gene keys in genome order
	Values  []float64 // gene values parallel to Keys
	Fitness float64
}

// NewIndividual builds a genome by invoking the generator once per gene key,
// in key order, then computes fitness exactly once against the finished
// genome. The generator sees the partially-built individual, so earlier
// genes are visible while later ones are produced.
func NewIndividual(alg *Algorithm, keys []string, generator GeneratorFunc) *Individual {
	ind := &Individual{
		Keys:   append([]string(nil), keys...),
		Values: make([]float64, 0, len(keys)),
	}
	for i, key := range ind.Keys {
		ind.Values = append(ind.Values, generator(ind, key, i))
	}
	ind.Fitness = alg.Fitness(ind)
	return ind
}

// newIndividualFromValues wraps an operator-produced value list into a fresh
// Individual, recomputing fitness. The caller hands over ownership of both
// slices.
func newIndividualFromValues(alg *Algorithm, keys []string, values []float64) *Individual {
	ind := &Individual{Keys: keys, Values: values}
	ind.Fitness = alg.Fitness(ind)
	return ind
}

// Len returns the number of genes in the genome.
func (ind *Individual) Len() int {
	return len(ind.Values)
}

// Value returns the value of the gene with the given key, and whether the
// key exists in this genome.
func (ind *Individual) Value(key string) (float64, bool) {
	for i, k := range ind.Keys {
		if k == key {
			return ind.Values[i], true
		}
	}
	return 0, false
}

// copyValues returns a working copy of the genome's value list for an
// operator to perturb without touching the source Individual.
func (ind *Individual) copyValues() []float64 {
	return append([]float64(nil), ind.Values...)
}

// positionalKeys builds the key list "0".."n-1" used by variable-length
// genomes and by splice offspring, which are re-keyed by position.
func positionalKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}
