package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an asset or debt account.
//
// The balance is signed: asset accounts carry positive balances,
// debt accounts negative ones.
type Account struct {
	DefaultModel
	Name        string `gorm:"uniqueIndex"`
	Institution string
	Note        string
	Balance     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived    bool
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Institution = strings.TrimSpace(a.Institution)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}
