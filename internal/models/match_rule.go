package models

import (
	"strings"

	"gorm.io/gorm"
)

// MatchRule assigns a category to imported transactions whose merchant
// matches a glob pattern. Rules are applied in ascending priority order,
// the first match wins.
type MatchRule struct {
	DefaultModel
	Priority uint
	Match    string
	Category string
}

func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)
	m.Category = strings.TrimSpace(m.Category)

	return nil
}

func (m *MatchRule) AfterSave(_ *gorm.DB) error {
	if m.Category == "" {
		return ErrMatchRuleCategoryEmpty
	}

	return nil
}
