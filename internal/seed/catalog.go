package seed

import (
	_ "embed"
	"fmt"

	"glutools-directory/internal/models"

	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog returns the tools added by the bulk import, in import order.
func Catalog() ([]models.AITool, error) {
	return ParseCatalog(catalogYAML)
}

func ParseCatalog(data []byte) ([]models.AITool, error) {
	var tools []models.AITool
	if err := yaml.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}

	seen := make(map[string]bool, len(tools))
	for i, t := range tools {
		if t.ID == "" || t.SubjectID == "" || t.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: id, subject_id and name are required", i)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
	}
	return tools, nil
}
