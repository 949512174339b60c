package genetic

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SelectionMethod identifies one of the parent-selection operators.
type SelectionMethod int

const (
	// SelectionBest takes the top n individuals by fitness.
	SelectionBest SelectionMethod = iota
	// SelectionRandom draws n uniform samples with replacement.
	SelectionRandom
	// SelectionRouletteWithReplacement is fitness-proportionate sampling
	// where an individual can be drawn any number of times.
	SelectionRouletteWithReplacement
	// SelectionRouletteWithoutReplacement removes one unit of an
	// individual's weight after each draw of it.
	SelectionRouletteWithoutReplacement
	// SelectionRemainderWithReplacement allocates floor(fitness) copies
	// deterministically, then raffles the leftover slots over the
	// fractional fitness parts with replacement.
	SelectionRemainderWithReplacement
	// SelectionRemainderWithoutReplacement is the remainder scheme with the
	// fractional raffle run without replacement.
	SelectionRemainderWithoutReplacement
	// SelectionUniversal is stochastic universal sampling: one random
	// offset and n equally-spaced pointers over the fitness wheel.
	SelectionUniversal
)

// ParseSelectionMethod converts a configuration string into a
// SelectionMethod value.
func ParseSelectionMethod(s string) (SelectionMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best":
		return SelectionBest, nil
	case "random":
		return SelectionRandom, nil
	case "with_replacement", "roulette_with_replacement":
		return SelectionRouletteWithReplacement, nil
	case "without_replacement", "roulette_without_replacement":
		return SelectionRouletteWithoutReplacement, nil
	case "remainder_with_replacement":
		return SelectionRemainderWithReplacement, nil
	case "remainder_without_replacement":
		return SelectionRemainderWithoutReplacement, nil
	case "universal":
		return SelectionUniversal, nil
	}
	return 0, fmt.Errorf("config error: invalid selection method '%s'", s)
}

// SelectionOptions carries the per-call options of GetParents.
type SelectionOptions struct {
	// ShuffleOrder randomizes the visitation order of individuals before
	// stochastic universal sampling walks the cumulative fitness curve.
	ShuffleOrder bool
}

// GetParents chooses n parents from the current generation without mutating
// it. Duplicates are permitted. The roulette family clamps negative fitness
// to zero, so a total clamped fitness of zero yields an empty slice — a
// defined empty-result case, not an error. An unrecognized method also
// yields an empty slice.
func (p *Population) GetParents(method SelectionMethod, n int, opts *SelectionOptions) []*Individual {
	if opts == nil {
		opts = &SelectionOptions{}
	}
	if n <= 0 || len(p.Individuals) == 0 {
		return []*Individual{}
	}

	switch method {
	case SelectionBest:
		return p.selectBest(n)
	case SelectionRandom:
		return p.selectRandom(n)
	case SelectionRouletteWithReplacement:
		return p.selectRoulette(n, true)
	case SelectionRouletteWithoutReplacement:
		return p.selectRoulette(n, false)
	case SelectionRemainderWithReplacement:
		return p.selectRemainder(n, true)
	case SelectionRemainderWithoutReplacement:
		return p.selectRemainder(n, false)
	case SelectionUniversal:
		return p.selectUniversal(n, opts.ShuffleOrder)
	}
	return []*Individual{}
}

// selectBest sorts by fitness descending — stable, so equal-fitness
// individuals keep their population order — and takes the first n.
func (p *Population) selectBest(n int) []*Individual {
	sorted := sortByFitnessDesc(p.Individuals)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// selectRandom draws n independent uniform samples with replacement.
func (p *Population) selectRandom(n int) []*Individual {
	parents := make([]*Individual, 0, n)
	for i := 0; i < n; i++ {
		parents = append(parents, p.Individuals[p.Rand.Intn(len(p.Individuals))])
	}
	return parents
}

// clampedFitnessWeights returns max(0, fitness) per individual plus the
// total. Negative fitness contributes no roulette weight, but the
// individual itself stays on the wheel with weight zero.
func (p *Population) clampedFitnessWeights() ([]float64, float64) {
	weights := make([]float64, len(p.Individuals))
	total := 0.0
	for i, ind := range p.Individuals {
		w := math.Max(0, ind.Fitness)
		weights[i] = w
		total += w
	}
	return weights, total
}

// spinWheel walks the cumulative weight curve to find the slot owning the
// sampled point. target must lie in [0, sum(weights)).
func spinWheel(weights []float64, target float64) int {
	cum := 0.0
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	// Floating-point drift can push target a hair past the final cumulative
	// sum; attribute the draw to the last positive-weight slot.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}

// selectRoulette performs fitness-proportionate sampling. Without
// replacement, each draw removes min(1, remaining) weight from the chosen
// individual and shrinks the wheel by the same amount, so an exhausted
// individual cannot be drawn again; sampling stops early once the wheel is
// empty.
func (p *Population) selectRoulette(n int, withReplacement bool) []*Individual {
	weights, size := p.clampedFitnessWeights()
	if size <= 0 {
		return []*Individual{}
	}

	parents := make([]*Individual, 0, n)
	for len(parents) < n && size > 0 {
		idx := spinWheel(weights, p.Rand.Float64()*size)
		parents = append(parents, p.Individuals[idx])
		if !withReplacement {
			dec := math.Min(1, weights[idx])
			weights[idx] -= dec
			size -= dec
		}
	}
	return parents
}

// selectRemainder implements remainder stochastic sampling: every individual
// first receives floor(max(0, fitness)) deterministic copies in population
// order, capped at n, then the leftover slots are raffled over the
// fractional fitness parts. A fractional wheel of size zero returns whatever
// the whole-part allocation produced.
func (p *Population) selectRemainder(n int, withReplacement bool) []*Individual {
	parents := make([]*Individual, 0, n)
	fractions := make([]float64, len(p.Individuals))
	fracSize := 0.0
	for i, ind := range p.Individuals {
		clamped := math.Max(0, ind.Fitness)
		whole := math.Floor(clamped)
		for c := 0; c < int(whole) && len(parents) < n; c++ {
			parents = append(parents, ind)
		}
		fractions[i] = clamped - whole
		fracSize += fractions[i]
	}

	for len(parents) < n && fracSize > 0 {
		idx := spinWheel(fractions, p.Rand.Float64()*fracSize)
		parents = append(parents, p.Individuals[idx])
		if !withReplacement {
			// Fractional weights are below one, so a draw retires the
			// individual from the raffle entirely.
			fracSize -= fractions[idx]
			fractions[idx] = 0
		}
	}
	return parents
}

// selectUniversal implements stochastic universal sampling: a single random
// offset in [0, size/n) followed by n equally-spaced pointers, with a cursor
// that walks the cumulative fitness curve forward and never resets. Every
// individual's representation stays within one of its expected value, the
// property that distinguishes SUS from i.i.d. roulette draws.
func (p *Population) selectUniversal(n int, shuffleOrder bool) []*Individual {
	weights, size := p.clampedFitnessWeights()
	if size <= 0 {
		return []*Individual{}
	}

	order := make([]int, len(p.Individuals))
	for i := range order {
		order[i] = i
	}
	if shuffleOrder {
		p.Rand.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	step := size / float64(n)
	start := p.Rand.Float64() * step

	parents := make([]*Individual, 0, n)
	idx := 0
	cum := weights[order[0]]
	for k := 0; k < n; k++ {
		pointer := start + float64(k)*step
		for pointer >= cum && idx < len(order)-1 {
			idx++
			cum += weights[order[idx]]
		}
		parents = append(parents, p.Individuals[order[idx]])
	}
	return parents
}

// sortByFitnessDesc returns a copy sorted by fitness descending. The sort is
// stable so ties preserve the input order, which keeps selection
// deterministic for populations with repeated fitness values.
func sortByFitnessDesc(individuals []*Individual) []*Individual {
	sorted := append([]*Individual(nil), individuals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})
	return sorted
}
