package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetCategory is a user-defined monthly spending limit for one
// category of the catalog.
//
// Only the limit and the informational carry-over fields are stored.
// Spent, remaining and status are derived from the transaction list on
// every request and never written back, see the reconcile package.
type BudgetCategory struct {
	DefaultModel
	Name       string          `gorm:"uniqueIndex"`
	Budgeted   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The monthly limit
	LastMonth  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Informational carry-over, not recomputed
	YearToDate decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Informational carry-over, not recomputed
	Note       string
}

func (b *BudgetCategory) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

func (b *BudgetCategory) AfterSave(_ *gorm.DB) error {
	if !b.Budgeted.IsPositive() {
		return ErrBudgetedAmountNotPositive
	}

	return nil
}
