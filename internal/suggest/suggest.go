// Package suggest finds register names similar to a prefix that did not
// match any register.
package suggest

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/retroenv/retrogolib/set"
)

// Closest returns up to limit names that are close to the given prefix.
// Names containing the prefix characters in order are preferred, ranked by
// how many characters they add. Otherwise names are ranked by the edit
// distance between the prefix and a name start of the same length, which
// catches typos.
func Closest(prefix string, names []string, limit int) []string {
	if prefix == "" || limit <= 0 {
		return nil
	}

	result := make([]string, 0, limit)
	seen := set.New[string]()
	add := func(name string) bool {
		if seen.Contains(name) {
			return len(result) < limit
		}
		seen.Add(name)
		result = append(result, name)
		return len(result) < limit
	}

	ranks := fuzzy.RankFindFold(prefix, names)
	sort.Stable(ranks)
	for _, rank := range ranks {
		if !add(rank.Target) {
			return result
		}
	}

	for _, name := range byEditDistance(prefix, names) {
		if !add(name) {
			return result
		}
	}
	return result
}

type scored struct {
	name     string
	distance int
}

// byEditDistance returns the names whose start is within a third of the
// prefix length in edits, closest first.
func byEditDistance(prefix string, names []string) []string {
	maxDistance := max(1, len(prefix)/3)

	var candidates []scored
	for _, name := range names {
		start := name
		if len(start) > len(prefix) {
			start = start[:len(prefix)]
		}

		distance := levenshtein.ComputeDistance(prefix, start)
		if distance <= maxDistance {
			candidates = append(candidates, scored{name: name, distance: distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.name
	}
	return result
}
