package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	account := suite.createTestAccount(models.Account{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{
			Date:      time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromFloat(-42.50),
			Category:  "Food & Dining",
			Merchant:  "Morre's Grocery",
			AccountID: account.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	assert.Equal(suite.T(), "Morre's Grocery", response.Data[0].Data.Merchant)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), response.Data[0].Data.Links.Account)
}

func (suite *TestSuiteStandard) TestTransactionCreateNonExistingAccount() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", `[
		{"amount": -10, "accountId": "d2b6e013-bac9-4a33-bfd8-525c07bee47d"}
	]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionListMonthFilter() {
	account := suite.createTestAccount(models.Account{})

	_ = suite.createTestTransaction(models.Transaction{
		Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromFloat(-10), AccountID: account.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date: time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC), Amount: decimal.NewFromFloat(-20), AccountID: account.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromFloat(-30), AccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), decimal.NewFromFloat(-10).Equal(response.Data[0].Amount))
}

func (suite *TestSuiteStandard) TestTransactionListInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=never", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionListAccountFilter() {
	checking := suite.createTestAccount(models.Account{})
	savings := suite.createTestAccount(models.Account{})

	_ = suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromFloat(-10), AccountID: checking.ID})
	_ = suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromFloat(-20), AccountID: savings.ID})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?account=%s", checking.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), checking.ID, response.Data[0].AccountID)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	account := suite.createTestAccount(models.Account{})
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:    decimal.NewFromFloat(-10),
		Category:  "Shopping",
		AccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), `{"category": "Entertainment"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Entertainment", response.Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	account := suite.createTestAccount(models.Account{})
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:    decimal.NewFromFloat(-10),
		AccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
