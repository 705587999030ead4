// Package stats computes aggregate statistics over a profile collection.
// Everything is computed on demand; nothing is cached.
package stats

import (
	"sort"

	"github.com/zeloras/ssh-manager/internal/profile"
)

// DefaultTopN is the number of most-used profiles reported.
const DefaultTopN = 5

// Stats is a point-in-time aggregate view of the collection.
type Stats struct {
	Total          int         `json:"total"`
	WithKeys       int         `json:"with_keys"`
	WithJumpHosts  int         `json:"with_jump_hosts"`
	NeverUsed      int         `json:"never_used"`
	Ports          map[int]int `json:"ports"`
	MostCommonPort int         `json:"most_common_port"`
	MostUsed       []Usage     `json:"most_used"`
}

// Usage pairs a profile name with its connect count.
type Usage struct {
	Name     string `json:"name"`
	UseCount int    `json:"use_count"`
}

// Compute aggregates the given profiles. The most-used list holds at most
// DefaultTopN entries ordered by use count descending; ties keep the input
// (registry iteration) order. An empty collection yields all-zero counts,
// an empty histogram and a default most-common port.
func Compute(profiles []*profile.Profile) Stats {
	s := Stats{
		Ports:          map[int]int{},
		MostCommonPort: profile.DefaultPort,
		MostUsed:       []Usage{},
	}

	for _, p := range profiles {
		s.Total++
		if p.PrivateKeyPath != "" {
			s.WithKeys++
		}
		if p.JumpHost != "" {
			s.WithJumpHosts++
		}
		if p.UseCount == 0 {
			s.NeverUsed++
		}
		s.Ports[p.Port]++
	}

	if s.Total == 0 {
		return s
	}

	best, bestCount := profile.DefaultPort, 0
	for _, p := range profiles {
		if c := s.Ports[p.Port]; c > bestCount {
			best, bestCount = p.Port, c
		}
	}
	s.MostCommonPort = best

	ranked := append([]*profile.Profile(nil), profiles...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UseCount > ranked[j].UseCount
	})
	for i, p := range ranked {
		if i == DefaultTopN {
			break
		}
		s.MostUsed = append(s.MostUsed, Usage{Name: p.Name, UseCount: p.UseCount})
	}

	return s
}
