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

func (suite *TestSuiteStandard) TestAccountCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `[
		{"name": "Checking", "institution": "First National", "balance": 5000}
	]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	assert.Equal(suite.T(), "Checking", response.Data[0].Data.Name)
	assert.True(suite.T(), decimal.NewFromFloat(5000).Equal(response.Data[0].Data.Balance))
}

func (suite *TestSuiteStandard) TestAccountCreateDuplicateName() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `[{"name": "Checking"}]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrAccountNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAccountCreateEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestAccountListArchivedFilter() {
	_ = suite.createTestAccount(models.Account{Name: "Active"})
	_ = suite.createTestAccount(models.Account{Name: "Old", Archived: true})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts?archived=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Old", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountListPagination() {
	for i := range 5 {
		_ = suite.createTestAccount(models.Account{Name: fmt.Sprintf("Account %d", i)})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), `{"archived": true}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Archived)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
