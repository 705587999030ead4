// Package search implements substring search and did-you-mean suggestions
// over a profile collection.
package search

import (
	"strings"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// Search returns the profiles whose name, host, username, description or
// any tag contains query, case-insensitively. Input order is preserved and
// an empty result is not an error.
func Search(profiles []*profile.Profile, query string) []*profile.Profile {
	q := strings.ToLower(query)

	results := make([]*profile.Profile, 0)
	for _, p := range profiles {
		if matches(p, q) {
			results = append(results, p)
		}
	}
	return results
}

func matches(p *profile.Profile, q string) bool {
	if containsFold(p.Name, q) ||
		containsFold(p.Host, q) ||
		containsFold(p.Username, q) ||
		containsFold(p.Description, q) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}

// Suggest returns existing names similar to the given one, by bidirectional
// substring containment. It is meant for "did you mean" hints after a
// not-found lookup.
func Suggest(names []string, name string) []string {
	target := strings.ToLower(name)

	suggestions := make([]string, 0)
	for _, candidate := range names {
		c := strings.ToLower(candidate)
		if strings.Contains(c, target) || strings.Contains(target, c) {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}
