package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a role catalog from a JSON file. The file holds an array
// of roles: [{"name": ..., "skills": [...], "description": ...}, ...].
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var roles []Role
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	c, err := New(roles)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
