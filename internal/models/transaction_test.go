package models_test

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionAccountMustExist() {
	err := models.DB.Create(&models.Transaction{
		Amount:    decimal.NewFromFloat(-12.30),
		AccountID: uuid.New(),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	account := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:    decimal.NewFromFloat(-12.30),
		AccountID: account.ID,
	})

	assert.False(suite.T(), transaction.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	account := suite.createTestAccount(models.Account{})

	tz, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		suite.Assert().FailNow("loading timezone failed")
	}

	transaction := suite.createTestTransaction(models.Transaction{
		Date:      time.Date(2026, 8, 12, 14, 0, 0, 0, tz),
		Amount:    decimal.NewFromFloat(-42.50),
		AccountID: account.ID,
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionUpdateAccountIntegrity() {
	account := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:    decimal.NewFromFloat(-42.50),
		AccountID: account.ID,
	})

	tests := []struct {
		name      string
		accountID uuid.UUID
		err       error
	}{
		{"existing account", suite.createTestAccount(models.Account{}).ID, nil},
		{"non-existing account", uuid.New(), models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Model(&transaction).Select("AccountID").Updates(models.Transaction{AccountID: tt.accountID}).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	account := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:    decimal.NewFromFloat(-3.10),
		Category:  " Food & Dining ",
		Merchant:  "  Morre's Grocery ",
		Note:      " weekly ",
		AccountID: account.ID,
	})

	assert.Equal(suite.T(), "Food & Dining", transaction.Category)
	assert.Equal(suite.T(), "Morre's Grocery", transaction.Merchant)
	assert.Equal(suite.T(), "weekly", transaction.Note)
}
