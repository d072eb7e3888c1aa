package entities

import (
	"slices"
	"sort"
)

// DependencyMap maps a consumer package to the pinned dependencies that name it
// as their reason for inclusion.
type DependencyMap map[string][]string

// MergeDependencyMaps returns the union of a and b. Every key of either input is
// present in the result, and each list is the duplicate-free union of both inputs'
// lists, sorted ascending. Neither input is modified.
func MergeDependencyMaps(a, b DependencyMap) DependencyMap {
	sets := make(map[string]map[string]struct{}, len(a)+len(b))
	for _, source := range []DependencyMap{a, b} {
		for consumer, deps := range source {
			set, ok := sets[consumer]
			if !ok {
				set = make(map[string]struct{}, len(deps))
				sets[consumer] = set
			}
			for _, dep := range deps {
				set[dep] = struct{}{}
			}
		}
	}

	merged := make(DependencyMap, len(sets))
	for consumer, set := range sets {
		deps := make([]string, 0, len(set))
		for dep := range set {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		merged[consumer] = deps
	}
	return merged
}

// Len returns the number of consumers.
func (it DependencyMap) Len() int {
	return len(it)
}

// Consumers returns every consumer name, sorted.
func (it DependencyMap) Consumers() []string {
	consumers := make([]string, 0, len(it))
	for consumer := range it {
		consumers = append(consumers, consumer)
	}
	sort.Strings(consumers)
	return consumers
}

// ConsumersOf returns the sorted consumers that pulled in dependency.
func (it DependencyMap) ConsumersOf(dependency string) []string {
	var consumers []string
	for consumer, deps := range it {
		if slices.Contains(deps, dependency) {
			consumers = append(consumers, consumer)
		}
	}
	sort.Strings(consumers)
	return consumers
}
