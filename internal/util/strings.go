// Package util provides common utility functions used across the codebase.
package util

import (
	"sort"
	"strings"
)

// JoinOrNone joins strings with ", " or returns "(none)" for empty slices.
// This is useful for displaying lists of probes or other items where
// an empty list should show a placeholder rather than nothing.
func JoinOrNone(items []string) string {
	return JoinOrDefault(items, "(none)")
}

// JoinOrDefault joins strings with ", " or returns the default value for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// LevenshteinDistance returns the number of single-byte edits needed to
// turn a into b.
func LevenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// maxSuggestDistance is how far a candidate may be from the input and still
// be suggested.
const maxSuggestDistance = 2

// SuggestSimilar returns up to limit candidates within a small edit distance
// of input, closest first. Comparison is case-insensitive.
func SuggestSimilar(input string, candidates []string, limit int) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}

	type match struct {
		name string
		dist int
	}

	needle := strings.ToLower(input)
	var matches []match
	for _, c := range candidates {
		if d := LevenshteinDistance(needle, strings.ToLower(c)); d <= maxSuggestDistance {
			matches = append(matches, match{name: c, dist: d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	result := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(result) == limit {
			break
		}
		result = append(result, m.name)
	}
	return result
}
