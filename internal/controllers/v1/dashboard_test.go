package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/category"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboard() {
	checking := suite.createTestAccount(models.Account{
		Name:    "Checking",
		Balance: decimal.NewFromFloat(5000),
	})
	_ = suite.createTestAccount(models.Account{
		Name:    "Student Loan",
		Balance: decimal.NewFromFloat(-2000),
	})

	august := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	_ = suite.createTestTransaction(models.Transaction{
		Date: august, Amount: decimal.NewFromFloat(5200), Category: category.Income, AccountID: checking.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date: august, Amount: decimal.NewFromFloat(-1300), Category: "Bills & Utilities", AccountID: checking.ID,
	})

	_ = suite.createTestInvestment(models.Investment{
		Name:   "Vanguard Total Stock Market",
		Symbol: "VTI",
		Value:  decimal.NewFromFloat(1000),
		Change: decimal.NewFromFloat(10),
	})

	_ = suite.createTestGoal(models.Goal{
		Name:                "Emergency Fund",
		Target:              decimal.NewFromFloat(10000),
		Current:             decimal.NewFromFloat(10000),
		MonthlyContribution: decimal.NewFromFloat(100),
		Deadline:            time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), decimal.NewFromFloat(3000).Equal(response.Data.NetWorth), "got %s", response.Data.NetWorth)
	assert.True(suite.T(), decimal.NewFromFloat(5000).Equal(response.Data.TotalAssets))
	assert.True(suite.T(), decimal.NewFromFloat(2000).Equal(response.Data.TotalLiabilities))

	assert.True(suite.T(), decimal.NewFromFloat(5200).Equal(response.Data.Income))
	assert.True(suite.T(), decimal.NewFromFloat(1300).Equal(response.Data.Expenses))
	assert.True(suite.T(), decimal.NewFromFloat(75).Equal(response.Data.SavingsRate), "got %s", response.Data.SavingsRate)

	assert.True(suite.T(), decimal.NewFromFloat(1000).Equal(response.Data.Investments.Value))
	assert.True(suite.T(), decimal.NewFromFloat(1).Equal(response.Data.Investments.ChangePercent))

	assert.Equal(suite.T(), 1, response.Data.Goals.Completed)

	// No budget entries exist, all spending is unbudgeted
	assert.True(suite.T(), response.Data.Budget.Budgeted.IsZero())
	assert.True(suite.T(), decimal.NewFromFloat(1300).Equal(response.Data.Budget.Spent))
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.NetWorth.IsZero())
	assert.True(suite.T(), response.Data.SavingsRate.IsZero())
	assert.True(suite.T(), response.Data.Investments.Value.IsZero())
}

func (suite *TestSuiteStandard) TestDashboardInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?month=whenever", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
