package extract

import (
	"testing"

	"github.com/nidhogg/jobscout/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Role{
		{Name: "Data Analyst", Skills: []string{"python", "sql", "r"}, Description: "Analyze data."},
		{Name: "Frontend Developer", Skills: []string{"javascript", "react", "vue"}, Description: "Build UIs."},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func contains(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}

func TestSkillsCaseInsensitive(t *testing.T) {
	c := testCatalog(t)
	got := Skills("I know Python and SQL", c)
	if !contains(got, "python") || !contains(got, "sql") {
		t.Fatalf("got %v, want python and sql", got)
	}
}

func TestSkillsNoMatch(t *testing.T) {
	c := testCatalog(t)
	// No catalog skill occurs, not even "r": keep the text r-free.
	if got := Skills("ialsocookandpaint", c); len(got) != 0 {
		t.Fatalf("got %v, want no skills", got)
	}
}

func TestSkillsDeduplicatedAcrossRoles(t *testing.T) {
	c, err := catalog.New([]catalog.Role{
		{Name: "Backend Developer", Skills: []string{"python"}},
		{Name: "Data Scientist", Skills: []string{"python"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := Skills("python everywhere", c)
	if len(got) != 1 {
		t.Fatalf("got %v, want python exactly once", got)
	}
}

// Single-letter skills match inside unrelated words. Pinned deliberately:
// the matching rule is substring containment with no word boundaries.
func TestSkillsSubstringInsideWord(t *testing.T) {
	c := testCatalog(t)
	got := Skills("I am a programmer", c)
	if !contains(got, "r") {
		t.Fatalf("got %v, want r matched inside 'programmer'", got)
	}
}
