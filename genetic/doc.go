// Package genetic provides the population operators of a generic
// evolutionary algorithm: selection, grouping, crossover, mutation and
// replacement over populations of fixed- or variable-length numeric genomes.
//
// The package deliberately exposes single-generation primitives. The caller
// owns the generational loop, the stopping criterion and the fitness
// function; the library owns the numerically subtle parts in between
// (stochastic universal sampling, remainder stochastic sampling, segment
// splice mutations, elitist and non-elitist replacement).
//
// Basic usage:
//
//	alg, err := genetic.NewAlgorithm([]string{"x", "y"},
//		genetic.Interval{Min: -5, Max: 5}, genetic.EncodingReal, fitness)
//	if err != nil {
//		log.Fatalf("Error building algorithm: %v", err)
//	}
//
//	pop := genetic.NewPopulation(alg)
//	if err := pop.Initialize(100, nil); err != nil {
//		log.Fatalf("Error initializing population: %v", err)
//	}
//
//	for gen := 0; gen < 200; gen++ {
//		parents := pop.GetParents(genetic.SelectionUniversal, 100, nil)
//		groups := pop.GetParentGroups(parents, 50, genetic.GroupingRandom, nil)
//		children := pop.Crossover(groups, genetic.CrossoverOnePoint, nil)
//		children = pop.Mutation(children, genetic.MutationUniform, nil)
//		pop.Replacement(parents, children, genetic.ReplacementPlus, nil)
//	}
//
// Individuals are immutable after construction: every operator that changes
// a genome builds a new Individual, which recomputes fitness exactly once.
// Replacement is the only operation that mutates Population state in place.
package genetic
