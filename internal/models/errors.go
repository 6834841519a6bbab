package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Account errors
var ErrAccountNameNotUnique = errors.New("the account name must be unique")

// BudgetCategory errors
var (
	ErrBudgetCategoryNameNotUnique = errors.New("there is already a budget for this category")
	ErrBudgetedAmountNotPositive   = errors.New("budgeted amounts must be larger than zero")
)

// Goal errors
var (
	ErrGoalTargetNotPositive    = errors.New("goal targets must be larger than zero")
	ErrGoalCurrentNegative      = errors.New("the current amount of a goal must not be negative")
	ErrGoalContributionNegative = errors.New("the monthly contribution of a goal must not be negative")
	ErrGoalTypeInvalid          = errors.New("the goal type must be one of: savings, debt")
)

// MatchRule errors
var ErrMatchRuleCategoryEmpty = errors.New("match rules must set a category")
