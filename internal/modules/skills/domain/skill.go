package domain

import (
	"fmt"

	apperrors "ghostwrite/internal/platform/errors"
)

// Skill is a tracked ability. Level is a 0-100 proficiency; names are
// unique within a category.
type Skill struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

func ValidateLevel(level int) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("%w: level must be between 0 and 100", apperrors.ErrInvalidInput)
	}
	return nil
}

// GroupByCategory buckets skills for display, preserving first-seen
// category order and the given order inside each bucket.
func GroupByCategory(skills []Skill) ([]string, map[string][]Skill) {
	var order []string
	groups := make(map[string][]Skill, len(skills))
	for _, skill := range skills {
		if _, seen := groups[skill.Category]; !seen {
			order = append(order, skill.Category)
		}
		groups[skill.Category] = append(groups[skill.Category], skill)
	}
	return order, groups
}
