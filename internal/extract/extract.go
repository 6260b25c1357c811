// Package extract pulls known skills out of free-form chat text.
package extract

import (
	"strings"

	"github.com/nidhogg/jobscout/internal/catalog"
)

// Skills returns every catalog skill that occurs as a substring of text,
// in canonical catalog casing. Matching is plain substring containment
// against the lower-cased text: no tokenization and no word boundaries,
// so a short skill like "r" matches inside longer words. That is the
// documented matching rule, not an accident.
func Skills(text string, c *catalog.Catalog) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, skill := range c.AllSkills() {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
