package store

import (
	"context"
	"fmt"

	"github.com/nidhogg/jobscout/internal/catalog"
)

// LoadCatalog reads the role catalog from the roles table, preserving
// stored position order. An empty table yields an empty catalog; callers
// decide whether to seed or fall back.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, description, skills
		FROM roles
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var roles []catalog.Role
	for rows.Next() {
		var r catalog.Role
		if err := rows.Scan(&r.Name, &r.Description, &r.Skills); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	c, err := catalog.New(roles)
	if err != nil {
		return nil, fmt.Errorf("catalog from db: %w", err)
	}
	return c, nil
}

// SeedCatalog inserts all roles of a catalog into an empty roles table.
// Existing role names are left untouched.
func (s *Store) SeedCatalog(ctx context.Context, c *catalog.Catalog) error {
	for i, r := range c.Roles() {
		_, err := s.db.Exec(ctx, `
			INSERT INTO roles (id, position, name, description, skills)
			VALUES (gen_random_uuid(), $1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING`,
			i, r.Name, r.Description, r.Skills,
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", r.Name, err)
		}
	}
	s.logger.Info("Catalog seeded")
	return nil
}

// CountRoles returns the number of stored roles.
func (s *Store) CountRoles(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM roles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return n, nil
}
