// Package search filters tools by a free-text query.
package search

import (
	"strings"

	"glutools-directory/internal/models"
)

// Tools returns the tools whose name, description, advantages or
// disadvantages contain query, ignoring case. Order is preserved and an
// empty query matches every tool.
func Tools(tools []models.AITool, query string) []models.AITool {
	q := strings.ToLower(query)

	out := []models.AITool{}
	for _, t := range tools {
		if matches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func Matches(tool models.AITool, query string) bool {
	return matches(tool, strings.ToLower(query))
}

func matches(t models.AITool, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, s := range t.Advantages {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, s := range t.Disadvantages {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
