package genetic

import (
	"fmt"
	"strings"
)

// ReplacementMethod identifies how the next generation is installed.
type ReplacementMethod int

const (
	// ReplacementGenerational discards every parent unconditionally. It is
	// the default and the fallback for unrecognized methods.
	ReplacementGenerational ReplacementMethod = iota
	// ReplacementComma keeps only the best children (the (mu,lambda)
	// strategy); the population shrinks when children are scarce.
	ReplacementComma
	// ReplacementPlus ranks parents and children together (the (mu+lambda)
	// strategy) — elitist: the best individuals of either pool survive.
	ReplacementPlus
	// ReplacementSeparateCompetition ranks parents and children separately
	// and admits GenerationGap children into the next generation.
	ReplacementSeparateCompetition
)

// ParseReplacementMethod converts a configuration string into a
// ReplacementMethod value.
func ParseReplacementMethod(s string) (ReplacementMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "generational":
		return ReplacementGenerational, nil
	case "comma_strategy":
		return ReplacementComma, nil
	case "plus_strategy":
		return ReplacementPlus, nil
	case "separate_competition":
		return ReplacementSeparateCompetition, nil
	}
	return 0, fmt.Errorf("config error: invalid replacement method '%s'", s)
}

// ReplacementOptions carries the per-call options of Replacement. Zero
// values select the documented defaults.
type ReplacementOptions struct {
	// NewGenerationSize caps the next generation for the comma and plus
	// strategies. Zero selects the population size at call time.
	NewGenerationSize int
	// GenerationGap is the number of children admitted by separate
	// competition. It defaults to 0, which makes the next generation pure
	// carried-over parents.
	GenerationGap int
}

// Replacement installs the next generation into the population — the sole
// in-place mutation of shared state in this package — and advances the
// generation counter. Unknown methods behave as generational replacement.
func (p *Population) Replacement(parents, children []*Individual, method ReplacementMethod, opts *ReplacementOptions) {
	if opts == nil {
		opts = &ReplacementOptions{}
	}
	newSize := opts.NewGenerationSize
	if newSize <= 0 {
		newSize = p.Count()
	}

	switch method {
	case ReplacementComma:
		p.Individuals = takeBest(children, newSize)
	case ReplacementPlus:
		pool := make([]*Individual, 0, len(parents)+len(children))
		pool = append(pool, parents...)
		pool = append(pool, children...)
		p.Individuals = takeBest(pool, newSize)
	case ReplacementSeparateCompetition:
		gap := opts.GenerationGap
		keepParents := p.Count() - gap
		if keepParents < 0 {
			keepParents = 0
		}
		next := takeBest(parents, keepParents)
		next = append(next, takeBest(children, gap)...)
		p.Individuals = next
	default:
		p.Individuals = append([]*Individual(nil), children...)
	}
	p.Generation++
}

// takeBest returns the top n individuals by fitness, ties keeping their
// input order. An n larger than the pool returns the whole pool; a
// non-positive n returns an empty slice.
func takeBest(individuals []*Individual, n int) []*Individual {
	if n <= 0 {
		return []*Individual{}
	}
	sorted := sortByFitnessDesc(individuals)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
