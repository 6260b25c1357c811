package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name is not in the catalog.
var ErrUnknownRole = errors.New("unknown role")

// Role is a job profile: a name, the skills it requires, and a
// human-readable description.
type Role struct {
	Name        string   `json:"name"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// Catalog is the immutable role/skill mapping shared by all sessions.
// Role order is preserved from the source; it decides ranking tie-breaks.
type Catalog struct {
	roles  []Role
	byName map[string]int
}

// New builds a catalog from a role list. Duplicate role names and roles
// without skills are rejected.
func New(roles []Role) (*Catalog, error) {
	c := &Catalog{
		roles:  make([]Role, 0, len(roles)),
		byName: make(map[string]int, len(roles)),
	}
	for _, r := range roles {
		if r.Name == "" {
			return nil, errors.New("role with empty name")
		}
		if len(r.Skills) == 0 {
			return nil, fmt.Errorf("role %q has no skills", r.Name)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("duplicate role %q", r.Name)
		}
		c.byName[r.Name] = len(c.roles)
		c.roles = append(c.roles, r)
	}
	return c, nil
}

// Roles returns all roles in catalog order.
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	copy(out, c.roles)
	return out
}

// Len returns the number of roles.
func (c *Catalog) Len() int { return len(c.roles) }

// Skills returns the required skills for a role.
func (c *Catalog) Skills(role string) ([]string, error) {
	i, ok := c.byName[role]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	return c.roles[i].Skills, nil
}

// Description returns the description for a role.
func (c *Catalog) Description(role string) (string, error) {
	i, ok := c.byName[role]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	return c.roles[i].Description, nil
}

// AllSkills returns every distinct skill across all roles, in first-seen
// catalog order. Skills shared by multiple roles appear once.
func (c *Catalog) AllSkills() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.roles {
		for _, s := range r.Skills {
			key := strings.ToLower(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
