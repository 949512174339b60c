package genetic

import (
	"fmt"
	"strings"
)

// MutationMethod identifies one of the mutation operators.
type MutationMethod int

const (
	// MutationUniform perturbs genes by a bounded uniform delta. It is also
	// the fallback for unrecognized methods.
	MutationUniform MutationMethod = iota
	// MutationExtremal replaces genes with one of the interval bounds, a
	// more disruptive perturbation used to escape local optima.
	MutationExtremal
	// MutationShrink removes a random contiguous slice from the genome.
	MutationShrink
	// MutationGrowth inserts a random contiguous slice of fresh values.
	MutationGrowth
	// MutationSwap exchanges two non-overlapping equal-length segments.
	MutationSwap
	// MutationReplace removes a random slice and inserts a fresh one of a
	// possibly different length.
	MutationReplace
)

// ParseMutationMethod converts a configuration string into a MutationMethod
// value.
func ParseMutationMethod(s string) (MutationMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform_mutation":
		return MutationUniform, nil
	case "extremal_mutation":
		return MutationExtremal, nil
	case "shrink_mutation":
		return MutationShrink, nil
	case "growth_mutation":
		return MutationGrowth, nil
	case "swap_mutation":
		return MutationSwap, nil
	case "replace_mutation":
		return MutationReplace, nil
	}
	return 0, fmt.Errorf("config error: invalid mutation method '%s'", s)
}

// Default mutation option values.
const (
	DefaultMutationProbability = 0.1
	DefaultMaxPercentChange    = 1.0
	DefaultMaxStructuralSize   = 5
)

// MutationOptions carries the per-call options of Mutation. Zero values
// select the documented defaults.
type MutationOptions struct {
	// Probability is the per-gene mutation chance for uniform and extremal
	// mutation. Zero selects the default of 0.1.
	Probability float64
	// MaxPercentChange scales the interval width into the largest uniform
	// perturbation. Zero selects the default of 1.0.
	MaxPercentChange float64
	// MaxShrinkSize, MaxGrowthSize, MaxSwapSize, MaxReplaceSize and
	// MaxInsertSize bound the segment lengths of the structural mutations.
	// Zero selects the default of 5.
	MaxShrinkSize  int
	MaxGrowthSize  int
	MaxSwapSize    int
	MaxReplaceSize int
	MaxInsertSize  int
}

func (o *MutationOptions) probability() float64 {
	if o.Probability == 0 {
		return DefaultMutationProbability
	}
	return o.Probability
}

func (o *MutationOptions) maxPercentChange() float64 {
	if o.MaxPercentChange == 0 {
		return DefaultMaxPercentChange
	}
	return o.MaxPercentChange
}

func structuralSize(configured int) int {
	if configured <= 0 {
		return DefaultMaxStructuralSize
	}
	return configured
}

// Mutation produces exactly one mutated child per parent, in parent order.
// Source individuals are never modified: gene-level mutations work on a copy
// of the parent's values and structural mutations build fresh value lists.
// Structural mutations (shrink, growth, swap, replace) re-key genomes by
// position and are only defined in variable-length mode; on fixed-gene-set
// configurations they return the parent unchanged. Unknown methods behave as
// uniform mutation.
func (p *Population) Mutation(parents []*Individual, method MutationMethod, opts *MutationOptions) []*Individual {
	if opts == nil {
		opts = &MutationOptions{}
	}
	children := make([]*Individual, 0, len(parents))
	for _, parent := range parents {
		children = append(children, p.mutateOne(parent, method, opts))
	}
	return children
}

func (p *Population) mutateOne(parent *Individual, method MutationMethod, opts *MutationOptions) *Individual {
	switch method {
	case MutationExtremal:
		return p.extremalMutation(parent, opts)
	case MutationShrink:
		return p.shrinkMutation(parent, opts)
	case MutationGrowth:
		return p.growthMutation(parent, opts)
	case MutationSwap:
		return p.swapMutation(parent, opts)
	case MutationReplace:
		return p.replaceMutation(parent, opts)
	default:
		return p.uniformMutation(parent, opts)
	}
}

// uniformMutation perturbs each gene with the configured probability by a
// uniform delta in [-maxChange, maxChange], where maxChange is the interval
// width scaled by MaxPercentChange. Results are rounded under integer
// encoding and clamped to the interval.
func (p *Population) uniformMutation(parent *Individual, opts *MutationOptions) *Individual {
	interval := p.Algorithm.Interval
	maxChange := interval.Width() * opts.maxPercentChange()

	values := parent.copyValues()
	for i, v := range values {
		if p.Rand.Float64() >= opts.probability() {
			continue
		}
		perturbed := v + (p.Rand.Float64()*2-1)*maxChange
		values[i] = clamp(p.Algorithm.roundValue(perturbed), interval.Min, interval.Max)
	}
	return newIndividualFromValues(p.Algorithm, append([]string(nil), parent.Keys...), values)
}

// extremalMutation uses the same per-gene gating as uniform mutation, but
// the replacement value is always one of the two interval bounds, chosen
// with equal probability.
func (p *Population) extremalMutation(parent *Individual, opts *MutationOptions) *Individual {
	interval := p.Algorithm.Interval

	values := parent.copyValues()
	for i := range values {
		if p.Rand.Float64() >= opts.probability() {
			continue
		}
		if p.Rand.Intn(2) == 0 {
			values[i] = p.Algorithm.roundValue(interval.Min)
		} else {
			values[i] = p.Algorithm.roundValue(interval.Max)
		}
	}
	return newIndividualFromValues(p.Algorithm, append([]string(nil), parent.Keys...), values)
}

// shrinkMutation removes a random contiguous slice — random start, random
// length up to MaxShrinkSize — and re-keys the remainder by position. A
// draw that would empty the genome is redrawn; a single-gene genome has no
// valid shrink and passes through unchanged.
func (p *Population) shrinkMutation(parent *Individual, opts *MutationOptions) *Individual {
	if !p.Algorithm.VariableLength || parent.Len() <= 1 {
		return parent
	}

	length := parent.Len()
	for {
		start := p.Rand.Intn(length)
		size := 1 + p.Rand.Intn(structuralSize(opts.MaxShrinkSize))
		if size > length-start {
			size = length - start
		}
		if size == length {
			continue // would empty the genome; redraw positions
		}
		values := make([]float64, 0, length-size)
		values = append(values, parent.Values[:start]...)
		values = append(values, parent.Values[start+size:]...)
		return newIndividualFromValues(p.Algorithm, positionalKeys(len(values)), values)
	}
}

// growthMutation inserts a random contiguous slice of freshly-generated
// values — length up to MaxGrowthSize — at a random position, then re-keys
// by position.
func (p *Population) growthMutation(parent *Individual, opts *MutationOptions) *Individual {
	if !p.Algorithm.VariableLength {
		return parent
	}

	length := parent.Len()
	grow := 1 + p.Rand.Intn(structuralSize(opts.MaxGrowthSize))
	pos := p.Rand.Intn(length + 1)

	values := make([]float64, 0, length+grow)
	values = append(values, parent.Values[:pos]...)
	for i := 0; i < grow; i++ {
		values = append(values, p.Algorithm.randomValue(p.Rand))
	}
	values = append(values, parent.Values[pos:]...)
	return newIndividualFromValues(p.Algorithm, positionalKeys(len(values)), values)
}

// swapMutation exchanges two non-overlapping contiguous segments of equal
// length within the genome. The segment length is capped at half the genome
// so two disjoint in-bounds segments always exist.
func (p *Population) swapMutation(parent *Individual, opts *MutationOptions) *Individual {
	if !p.Algorithm.VariableLength || parent.Len() < 2 {
		return parent
	}

	length := parent.Len()
	maxSegment := structuralSize(opts.MaxSwapSize)
	if half := length / 2; maxSegment > half {
		maxSegment = half
	}
	segment := 1 + p.Rand.Intn(maxSegment)

	// The first start leaves room for a disjoint second segment; the second
	// start is drawn from [pos1+segment, length-segment].
	pos1 := p.Rand.Intn(length - 2*segment + 1)
	pos2 := pos1 + segment + p.Rand.Intn(length-pos1-2*segment+1)

	values := parent.copyValues()
	for i := 0; i < segment; i++ {
		values[pos1+i], values[pos2+i] = values[pos2+i], values[pos1+i]
	}
	return newIndividualFromValues(p.Algorithm, positionalKeys(length), values)
}

// replaceMutation removes a contiguous slice of random length (up to
// MaxReplaceSize) at a random position and inserts a freshly-generated slice
// of an independently drawn length (up to MaxInsertSize) in its place, so
// the genome can grow or shrink. The inserted slice is never empty, so the
// result always has at least one gene.
func (p *Population) replaceMutation(parent *Individual, opts *MutationOptions) *Individual {
	if !p.Algorithm.VariableLength || parent.Len() == 0 {
		return parent
	}

	length := parent.Len()
	start := p.Rand.Intn(length)
	removed := 1 + p.Rand.Intn(structuralSize(opts.MaxReplaceSize))
	if removed > length-start {
		removed = length - start
	}
	inserted := 1 + p.Rand.Intn(structuralSize(opts.MaxInsertSize))

	values := make([]float64, 0, length-removed+inserted)
	values = append(values, parent.Values[:start]...)
	for i := 0; i < inserted; i++ {
		values = append(values, p.Algorithm.randomValue(p.Rand))
	}
	values = append(values, parent.Values[start+removed:]...)
	return newIndividualFromValues(p.Algorithm, positionalKeys(len(values)), values)
}
