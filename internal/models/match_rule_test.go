package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRuleCategoryRequired() {
	err := models.DB.Create(&models.MatchRule{
		Match: "Starbucks*",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleCategoryEmpty)
}

func (suite *TestSuiteStandard) TestMatchRuleTrimWhitespace() {
	matchRule := suite.createTestMatchRule(models.MatchRule{
		Match:    " Starbucks* ",
		Category: " Food & Dining ",
	})

	assert.Equal(suite.T(), "Starbucks*", matchRule.Match)
	assert.Equal(suite.T(), "Food & Dining", matchRule.Category)
}
