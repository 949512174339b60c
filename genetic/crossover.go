package genetic

import (
	"fmt"
	"strings"
)

// CrossoverMethod identifies one of the recombination operators.
type CrossoverMethod int

const (
	// CrossoverOnePoint splices two parents at a random interior cut point.
	// It is also the fallback for unrecognized methods.
	CrossoverOnePoint CrossoverMethod = iota
	// CrossoverMean averages two parents gene by gene, truncated to the
	// shorter genome.
	CrossoverMean
)

// ParseCrossoverMethod converts a configuration string into a
// CrossoverMethod value.
func ParseCrossoverMethod(s string) (CrossoverMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "one_point":
		return CrossoverOnePoint, nil
	case "mean":
		return CrossoverMean, nil
	}
	return 0, fmt.Errorf("config error: invalid crossover method '%s'", s)
}

// CrossoverOptions carries the per-call options of Crossover.
type CrossoverOptions struct {
	// Probability gates whether crossover is applied to a group at all; a
	// skipped group passes its original members through unchanged, not
	// cloned. Zero selects the default of 1.
	Probability float64
	// DifferentPoints lets one-point crossover pick an independent cut
	// index per parent instead of one shared cut.
	DifferentPoints bool
}

func (o *CrossoverOptions) probability() float64 {
	if o.Probability == 0 {
		return 1
	}
	return o.Probability
}

// Crossover applies the method to every group independently and concatenates
// the resulting children. Single-item groups pass through unchanged; unknown
// methods fall back to one-point crossover.
func (p *Population) Crossover(groups [][]*Individual, method CrossoverMethod, opts *CrossoverOptions) []*Individual {
	if opts == nil {
		opts = &CrossoverOptions{}
	}
	children := make([]*Individual, 0, len(groups)*2)
	for _, group := range groups {
		switch method {
		case CrossoverMean:
			children = append(children, p.meanCrossover(group, opts)...)
		default:
			children = append(children, p.onePointCrossover(group, opts)...)
		}
	}
	return children
}

// onePointCrossover splices the first two parents of a group:
//
//	child A = parent1[0:cut1] + parent2[cut2:]
//	child B = parent2[0:cut2] + parent1[cut1:]
//
// The cut index is a uniformly random interior point in [1, len-1]; with a
// single shared cut it is drawn from the shorter parent's interior. Parents
// whose genomes have fewer than two values cannot be cut, so such a group
// contributes no children. Offspring are re-keyed by position.
func (p *Population) onePointCrossover(group []*Individual, opts *CrossoverOptions) []*Individual {
	if len(group) < 2 {
		return group
	}
	if p.Rand.Float64() > opts.probability() {
		return group
	}

	parent1, parent2 := group[0], group[1]
	len1, len2 := parent1.Len(), parent2.Len()
	if len1 < 2 || len2 < 2 {
		return nil
	}

	var cut1, cut2 int
	if opts.DifferentPoints {
		cut1 = 1 + p.Rand.Intn(len1-1)
		cut2 = 1 + p.Rand.Intn(len2-1)
	} else {
		shorter := len1
		if len2 < shorter {
			shorter = len2
		}
		cut1 = 1 + p.Rand.Intn(shorter-1)
		cut2 = cut1
	}

	valuesA := spliceValues(parent1.Values[:cut1], parent2.Values[cut2:])
	valuesB := spliceValues(parent2.Values[:cut2], parent1.Values[cut1:])

	children := make([]*Individual, 0, 2)
	if len(valuesA) > 0 {
		children = append(children, newIndividualFromValues(p.Algorithm, positionalKeys(len(valuesA)), valuesA))
	}
	if len(valuesB) > 0 {
		children = append(children, newIndividualFromValues(p.Algorithm, positionalKeys(len(valuesB)), valuesB))
	}
	return children
}

// meanCrossover averages the first two parents gene by gene, truncated to
// the shorter genome, rounding under integer encoding. It produces exactly
// one child when applied; a probability-skipped group returns its first
// parent unchanged as a single item.
func (p *Population) meanCrossover(group []*Individual, opts *CrossoverOptions) []*Individual {
	if len(group) < 2 {
		return group
	}
	if p.Rand.Float64() > opts.probability() {
		return group[:1]
	}

	parent1, parent2 := group[0], group[1]
	length := parent1.Len()
	if parent2.Len() < length {
		length = parent2.Len()
	}
	if length == 0 {
		// An empty parent would produce an empty child; pass the first
		// parent through instead.
		return group[:1]
	}

	values := make([]float64, length)
	for i := 0; i < length; i++ {
		values[i] = p.Algorithm.roundValue((parent1.Values[i] + parent2.Values[i]) / 2)
	}
	keys := append([]string(nil), parent1.Keys[:length]...)
	return []*Individual{newIndividualFromValues(p.Algorithm, keys, values)}
}

// spliceValues concatenates two genome segments into a fresh slice.
func spliceValues(head, tail []float64) []float64 {
	values := make([]float64, 0, len(head)+len(tail))
	values = append(values, head...)
	return append(values, tail...)
}
