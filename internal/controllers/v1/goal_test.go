package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/goals"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/goals", `[
		{"name": "Emergency Fund", "target": 10000, "monthlyContribution": 400, "deadline": "2027-06-01T00:00:00Z"}
	]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)

	assert.Equal(suite.T(), "Emergency Fund", response.Data[0].Data.Name)
	assert.Equal(suite.T(), models.GoalTypeSavings, response.Data[0].Data.Type)
	assert.Equal(suite.T(), goals.StatusBehind, response.Data[0].Data.Progress.Status)
}

func (suite *TestSuiteStandard) TestGoalCreateInvalid() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/goals", `[{"name": "No target"}]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrGoalTargetNotPositive.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestGoalListSummary() {
	_ = suite.createTestGoal(models.Goal{
		Name:     "Done",
		Target:   decimal.NewFromFloat(1000),
		Current:  decimal.NewFromFloat(1000),
		Deadline: time.Now().AddDate(0, 1, 0),
	})
	_ = suite.createTestGoal(models.Goal{
		Name:                "Car Loan",
		Type:                models.GoalTypeDebt,
		Target:              decimal.NewFromFloat(8000),
		Current:             decimal.NewFromFloat(500),
		MonthlyContribution: decimal.NewFromFloat(100),
		Deadline:            time.Now().AddDate(0, 3, 0),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Summary)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), 1, response.Summary.Completed)
	assert.Equal(suite.T(), 1, response.Summary.Behind)
	assert.True(suite.T(), decimal.NewFromFloat(1500).Equal(response.Summary.TotalSaved))
}

func (suite *TestSuiteStandard) TestGoalListFilterType() {
	_ = suite.createTestGoal(models.Goal{
		Name: "Savings", Target: decimal.NewFromFloat(100), Deadline: time.Now().AddDate(1, 0, 0),
	})
	_ = suite.createTestGoal(models.Goal{
		Name: "Debt", Type: models.GoalTypeDebt, Target: decimal.NewFromFloat(100), Deadline: time.Now().AddDate(1, 0, 0),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/goals?type=debt", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Debt", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestGoalProgress() {
	goal := suite.createTestGoal(models.Goal{
		Name:                "Vacation",
		Target:              decimal.NewFromFloat(1000),
		Current:             decimal.NewFromFloat(900),
		MonthlyContribution: decimal.NewFromFloat(100),
		Deadline:            time.Now().AddDate(0, 6, 0),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/goals/%s/progress", goal.ID), `{"amount": 150}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	// Overshooting the target is allowed
	assert.True(suite.T(), decimal.NewFromFloat(1050).Equal(response.Data.Current), "got %s", response.Data.Current)
	assert.Equal(suite.T(), goals.StatusCompleted, response.Data.Progress.Status)
}

func (suite *TestSuiteStandard) TestGoalProgressNegative() {
	goal := suite.createTestGoal(models.Goal{
		Name:     "Vacation",
		Target:   decimal.NewFromFloat(1000),
		Deadline: time.Now().AddDate(0, 6, 0),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/goals/%s/progress", goal.ID), `{"amount": -10}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalProgressNotFound() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/goals/b1e4eb12-dcf0-4a08-a301-0d4bf4d29dbc/progress", `{"amount": 10}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalUpdate() {
	goal := suite.createTestGoal(models.Goal{
		Name:     "Vacation",
		Target:   decimal.NewFromFloat(1000),
		Deadline: time.Now().AddDate(0, 6, 0),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/goals/%s", goal.ID), `{"name": "Summer Vacation"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Summer Vacation", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGoalDelete() {
	goal := suite.createTestGoal(models.Goal{
		Name:     "Vacation",
		Target:   decimal.NewFromFloat(1000),
		Deadline: time.Now().AddDate(0, 6, 0),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/goals/%s", goal.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/goals/%s", goal.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
