package v1_test

import (
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "http://example.com/v1/accounts", response.Links.Accounts)
	assert.Equal(suite.T(), "http://example.com/v1/budget", response.Links.Budget)
	assert.Equal(suite.T(), "http://example.com/v1/match-rules", response.Links.MatchRules)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
