// Package recommend ranks catalog roles against an accumulated skill set.
package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/nidhogg/jobscout/internal/catalog"
)

// maxResults caps how many roles a ranking returns.
const maxResults = 3

// Recommendation is one ranked role, shaped for the wire protocol.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MatchScore  int    `json:"matchScore"`
}

// Engine computes ranked recommendations from a skill set and a catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine bound to a catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Rank returns up to three roles ordered by how many of their required
// skills appear (exact, case-insensitive) in knownSkills. Roles with no
// exact match are excluded. Ties keep catalog order.
//
// Scores use a looser rule than inclusion: a required skill counts as
// matched when it contains, or is contained in, any known skill. A role
// can therefore score higher than its exact match count alone would
// suggest. Inclusion stays strict, scoring stays generous.
func (e *Engine) Rank(knownSkills map[string]struct{}) []Recommendation {
	type scored struct {
		role       catalog.Role
		matchCount int
	}

	var matched []scored
	for _, role := range e.catalog.Roles() {
		count := 0
		for _, s := range role.Skills {
			if _, ok := knownSkills[strings.ToLower(s)]; ok {
				count++
			}
		}
		if count > 0 {
			matched = append(matched, scored{role: role, matchCount: count})
		}
	}

	// Stable sort preserves catalog order among equal match counts.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].matchCount > matched[j].matchCount
	})

	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}

	out := make([]Recommendation, 0, len(matched))
	for _, m := range matched {
		out = append(out, Recommendation{
			Title:       m.role.Name,
			Description: m.role.Description,
			MatchScore:  e.score(m.role, knownSkills),
		})
	}
	return out
}

// score computes the 0..100 fuzzy match percentage for a role.
func (e *Engine) score(role catalog.Role, knownSkills map[string]struct{}) int {
	matches := 0
	for _, s := range role.Skills {
		required := strings.ToLower(s)
		for known := range knownSkills {
			if strings.Contains(known, required) || strings.Contains(required, known) {
				matches++
				break
			}
		}
	}
	return int(math.Round(float64(matches) / float64(len(role.Skills)) * 100))
}
