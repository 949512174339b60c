package genetic

import (
	"fmt"
	"strings"
)

// GroupingMethod identifies how selected parents are arranged into
// fixed-size groups for crossover.
type GroupingMethod int

const (
	// GroupingRandom draws every group member independently and uniformly
	// from the parent pool, so one parent may appear in several groups or
	// twice in the same group.
	GroupingRandom GroupingMethod = iota
)

// ParseGroupingMethod converts a configuration string into a GroupingMethod
// value.
func ParseGroupingMethod(s string) (GroupingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return GroupingRandom, nil
	}
	return 0, fmt.Errorf("config error: invalid grouping method '%s'", s)
}

// DefaultGroupSize is the number of parents per crossover group.
const DefaultGroupSize = 2

// GroupingOptions carries the per-call options of GetParentGroups.
type GroupingOptions struct {
	// GroupSize overrides DefaultGroupSize when positive.
	GroupSize int
}

func (o *GroupingOptions) groupSize() int {
	if o.GroupSize <= 0 {
		return DefaultGroupSize
	}
	return o.GroupSize
}

// GetParentGroups arranges parents into n groups for crossover. An empty
// parent pool or n <= 0 yields an empty list. An unrecognized method also
// yields an empty list.
func (p *Population) GetParentGroups(parents []*Individual, n int, method GroupingMethod, opts *GroupingOptions) [][]*Individual {
	if opts == nil {
		opts = &GroupingOptions{}
	}
	if len(parents) == 0 || n <= 0 {
		return [][]*Individual{}
	}

	groups := make([][]*Individual, 0, n)
	switch method {
	case GroupingRandom:
		groupSize := opts.groupSize()
		for i := 0; i < n; i++ {
			group := make([]*Individual, 0, groupSize)
			for j := 0; j < groupSize; j++ {
				group = append(group, parents[p.Rand.Intn(len(parents))])
			}
			groups = append(groups, group)
		}
	}
	return groups
}
