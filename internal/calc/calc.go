// Package calc implements stateless aggregate arithmetic over resource
// snapshots. Every function is pure and total: empty input yields zero
// values, divisions by zero short-circuit to zero.
package calc

import (
	"github.com/centsible/backend/internal/category"
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NetWorth returns the sum of all account balances. Debt accounts carry
// negative balances, so this nets out assets against liabilities.
func NetWorth(accounts []models.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		sum = sum.Add(a.Balance)
	}

	return sum
}

// TotalAssets returns the sum of all positive account balances.
func TotalAssets(accounts []models.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		if a.Balance.IsPositive() {
			sum = sum.Add(a.Balance)
		}
	}

	return sum
}

// TotalLiabilities returns the magnitude of all negative account
// balances as a positive number.
func TotalLiabilities(accounts []models.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		if a.Balance.IsNegative() {
			sum = sum.Add(a.Balance)
		}
	}

	return sum.Abs()
}

// InvestmentTotals is the aggregate over all investment holdings.
type InvestmentTotals struct {
	Value         decimal.Decimal `json:"value" example:"17432.10"`        // Sum of all holding values
	Change        decimal.Decimal `json:"change" example:"204.72"`         // Sum of all holding changes, signed
	ChangePercent decimal.Decimal `json:"changePercent" example:"1.17"`    // Change relative to total value
}

// Investments sums value and change over all holdings. The change
// percentage is 0 when the total value is 0.
func Investments(investments []models.Investment) InvestmentTotals {
	totals := InvestmentTotals{
		Value:         decimal.Zero,
		Change:        decimal.Zero,
		ChangePercent: decimal.Zero,
	}

	for _, i := range investments {
		totals.Value = totals.Value.Add(i.Value)
		totals.Change = totals.Change.Add(i.Change)
	}

	if !totals.Value.IsZero() {
		totals.ChangePercent = totals.Change.Div(totals.Value).Mul(hundred)
	}

	return totals
}

// Flows splits a transaction list into total income and total expenses.
// Income is the sum of all positive amounts, expenses the magnitude of
// all negative amounts outside the Income category.
func Flows(transactions []models.Transaction) (income, expenses decimal.Decimal) {
	income = decimal.Zero
	expenses = decimal.Zero

	for _, t := range transactions {
		if t.Amount.IsPositive() {
			income = income.Add(t.Amount)
			continue
		}

		if t.Category != category.Income {
			expenses = expenses.Add(t.Amount.Abs())
		}
	}

	return income, expenses
}

// SavingsRate returns (income - expenses) / income * 100.
// It is 0 when income is not positive.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	return income.Sub(expenses).Div(income).Mul(hundred)
}
