package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{
		Name:        " Checking  ",
		Institution: " First National ",
		Note:        "  main account ",
	})

	assert.Equal(suite.T(), "Checking", account.Name)
	assert.Equal(suite.T(), "First National", account.Institution)
	assert.Equal(suite.T(), "main account", account.Note)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.Account{Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountNegativeBalance() {
	// Debt accounts carry negative balances
	account := suite.createTestAccount(models.Account{
		Name:    "Student Loan",
		Balance: decimal.NewFromFloat(-7500),
	})

	var reloaded models.Account
	err := models.DB.First(&reloaded, account.ID).Error
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromFloat(-7500).Equal(reloaded.Balance))
}
