package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment is a single holding in the investment overview.
type Investment struct {
	DefaultModel
	Name   string
	Symbol string
	Shares decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Value  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Current market value of the holding
	Change decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Absolute change, signed
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Symbol = strings.ToUpper(strings.TrimSpace(i.Symbol))

	return nil
}
