package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetCategoryNameUnique() {
	_ = suite.createTestBudgetCategory(models.BudgetCategory{
		Name:     "Food & Dining",
		Budgeted: decimal.NewFromFloat(450),
	})

	err := models.DB.Create(&models.BudgetCategory{
		Name:     "Food & Dining",
		Budgeted: decimal.NewFromFloat(300),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetCategoryBudgetedPositive() {
	tests := []struct {
		name     string
		budgeted decimal.Decimal
		err      error
	}{
		{"positive", decimal.NewFromFloat(0.01), nil},
		{"zero", decimal.Zero, models.ErrBudgetedAmountNotPositive},
		{"negative", decimal.NewFromFloat(-10), models.ErrBudgetedAmountNotPositive},
	}

	for _, tt := range tests {
		err := models.DB.Create(&models.BudgetCategory{
			Name:     tt.name,
			Budgeted: tt.budgeted,
		}).Error

		assert.ErrorIs(suite.T(), err, tt.err, "budgeted amount: %s", tt.budgeted)
	}
}

func (suite *TestSuiteStandard) TestBudgetCategoryTrimWhitespace() {
	budgetCategory := suite.createTestBudgetCategory(models.BudgetCategory{
		Name:     " Shopping ",
		Budgeted: decimal.NewFromFloat(300),
		Note:     "  clothes and gifts ",
	})

	assert.Equal(suite.T(), "Shopping", budgetCategory.Name)
	assert.Equal(suite.T(), "clothes and gifts", budgetCategory.Note)
}
