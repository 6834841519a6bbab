package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetCategoryCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", `[
		{"name": "Food & Dining", "budgeted": 450},
		{"name": "Shopping", "budgeted": 300, "note": "clothes and gifts"}
	]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetCategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)
	require.NotNil(suite.T(), response.Data[0].Data)

	assert.Equal(suite.T(), "Food & Dining", response.Data[0].Data.Name)
	assert.True(suite.T(), decimal.NewFromFloat(450).Equal(response.Data[0].Data.Budgeted))
}

func (suite *TestSuiteStandard) TestBudgetCategoryCreateDuplicate() {
	_ = suite.createTestBudgetCategory(models.BudgetCategory{
		Name:     "Food & Dining",
		Budgeted: decimal.NewFromFloat(450),
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", `[{"name": "Food & Dining", "budgeted": 300}]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrBudgetCategoryNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetCategoryCreateZeroBudget() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", `[{"name": "Shopping"}]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrBudgetedAmountNotPositive.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetCategoryList() {
	_ = suite.createTestBudgetCategory(models.BudgetCategory{Name: "Shopping", Budgeted: decimal.NewFromFloat(300)})
	_ = suite.createTestBudgetCategory(models.BudgetCategory{Name: "Entertainment", Budgeted: decimal.NewFromFloat(100)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetCategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)

	// Sorted by name
	assert.Equal(suite.T(), "Entertainment", response.Data[0].Name)
	assert.Equal(suite.T(), "Shopping", response.Data[1].Name)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestBudgetCategoryUpdate() {
	budgetCategory := suite.createTestBudgetCategory(models.BudgetCategory{
		Name:     "Shopping",
		Budgeted: decimal.NewFromFloat(300),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", budgetCategory.ID), `{"budgeted": 350}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetCategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), decimal.NewFromFloat(350).Equal(response.Data.Budgeted))
}

func (suite *TestSuiteStandard) TestBudgetCategoryDelete() {
	budgetCategory := suite.createTestBudgetCategory(models.BudgetCategory{
		Name:     "Shopping",
		Budgeted: decimal.NewFromFloat(300),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", budgetCategory.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", budgetCategory.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCategoryNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/4c17fd68-a2c8-4dbe-8ab6-16c216d30118", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCategoryInvalidUUID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
