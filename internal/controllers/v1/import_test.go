package v1_test

import (
	"fmt"
	"net/http"

	"github.com/centsible/backend/internal/category"
	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestImportGet() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "http://example.com/v1/import/csv", response.Links.Csv)
	assert.Equal(suite.T(), "http://example.com/v1/import/csv-preview", response.Links.CsvPreview)
}

func (suite *TestSuiteStandard) TestImportCsvPreview() {
	account := suite.createTestAccount(models.Account{Name: "Import Checking"})

	_ = suite.createTestMatchRule(models.MatchRule{
		Priority: 1,
		Match:    "Starbucks*",
		Category: "Food & Dining",
	})

	// The lower priority rule wins for Starbucks, this one never matches
	_ = suite.createTestMatchRule(models.MatchRule{
		Priority: 2,
		Match:    "Starbucks Downtown",
		Category: "Entertainment",
	})

	body, headers := test.LoadTestFile(suite.T(), "importer/bank-export.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/import/csv-preview?accountId=%s", account.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 4)

	starbucks := response.Data[0]
	assert.Equal(suite.T(), "Food & Dining", starbucks.Transaction.Category)
	assert.True(suite.T(), decimal.NewFromFloat(-4.80).Equal(starbucks.Transaction.Amount), "outflows must be negative, got %s", starbucks.Transaction.Amount)

	// No rule matches, the fallback category is used
	grocery := response.Data[1]
	assert.Equal(suite.T(), category.Other, grocery.Transaction.Category)

	salary := response.Data[2]
	assert.True(suite.T(), decimal.NewFromFloat(5200).Equal(salary.Transaction.Amount))

	// Nothing is saved by a preview
	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestImportCsv() {
	account := suite.createTestAccount(models.Account{Name: "Import Checking"})

	_ = suite.createTestMatchRule(models.MatchRule{
		Priority: 1,
		Match:    "*Grocery",
		Category: "Food & Dining",
	})

	body, headers := test.LoadTestFile(suite.T(), "importer/bank-export.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/import/csv?accountId=%s", account.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 4)

	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(suite.T(), int64(4), count)

	var grocery models.Transaction
	err := models.DB.Where("merchant = ?", "Morre's Grocery").First(&grocery).Error
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Food & Dining", grocery.Category)
	assert.Equal(suite.T(), account.ID, grocery.AccountID)
}

func (suite *TestSuiteStandard) TestImportCsvInvalidFile() {
	account := suite.createTestAccount(models.Account{Name: "Import Checking"})

	body, headers := test.LoadTestFile(suite.T(), "importer/bank-export-invalid.csv")
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/import/csv?accountId=%s", account.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportCsvNoAccount() {
	body, headers := test.LoadTestFile(suite.T(), "importer/bank-export.csv")
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportCsvAccountNotFound() {
	body, headers := test.LoadTestFile(suite.T(), "importer/bank-export.csv")
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/csv?accountId=d89bd53a-2dcc-4d62-b2b8-d0b9c9c1e0f3", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
