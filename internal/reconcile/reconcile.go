// Package reconcile computes the authoritative per-category spending
// view from a transaction snapshot and the user's budget entries.
//
// Reconciliation is a pure function: it is re-run in full on every
// request with the caller's current snapshot and never writes anything
// back. Running it twice on the same input yields identical output.
package reconcile

import (
	"sort"

	"github.com/centsible/backend/internal/category"
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Status classifies a category's spending against its limit.
type Status string

const (
	StatusUnbudgeted Status = "unbudgeted" // No limit set for this category
	StatusOver       Status = "over"       // Spending exceeds the limit
	StatusWarning    Status = "warning"    // Spending is above the warning threshold
	StatusGood       Status = "good"
)

// Spending above this share of the limit flags a category as warning.
var warningThreshold = decimal.New(8, -1)

// CategorySpending is the reconciled view of one category.
type CategorySpending struct {
	Name       string          `json:"name" example:"Food & Dining"`
	Budgeted   decimal.Decimal `json:"budgeted" example:"450"`        // The monthly limit, 0 for unbudgeted categories
	Spent      decimal.Decimal `json:"spent" example:"372.41"`        // Outflows accumulated from the transaction list
	Remaining  decimal.Decimal `json:"remaining" example:"77.59"`     // Budgeted minus spent
	Status     Status          `json:"status" example:"warning"`
	LastMonth  decimal.Decimal `json:"lastMonth" example:"430.12"`    // Carried over from the budget entry
	YearToDate decimal.Decimal `json:"yearToDate" example:"3211.09"`  // Carried over from the budget entry
}

// Totals are the sums over a list of reconciled categories.
type Totals struct {
	Budgeted  decimal.Decimal `json:"budgeted" example:"2100"`
	Spent     decimal.Decimal `json:"spent" example:"1730.44"`
	Remaining decimal.Decimal `json:"remaining" example:"369.56"`
}

// Spending accumulates outflows per category label over one scan of the
// transaction list. Every catalog category gets a bucket, even with no
// spend; labels outside the catalog get their own ad-hoc bucket so that
// no spending is silently dropped. Inflows and the Income category do
// not count as spending.
func Spending(transactions []models.Transaction) map[string]decimal.Decimal {
	spent := make(map[string]decimal.Decimal, len(category.Catalog))
	for _, name := range category.Catalog {
		spent[name] = decimal.Zero
	}

	for _, t := range transactions {
		if t.Category == category.Income || !t.Amount.IsNegative() {
			continue
		}

		spent[t.Category] = spent[t.Category].Add(t.Amount.Abs())
	}

	return spent
}

// Categories reconciles the budget entries against the transaction
// list. The result contains one view per catalog category, plus one per
// ad-hoc label found in the transactions, in stable order: catalog
// first, ad-hoc labels sorted by name.
func Categories(budgets []models.BudgetCategory, transactions []models.Transaction) []CategorySpending {
	spent := Spending(transactions)

	// Budget entries always get a view, even if their category never
	// occurs in the transaction list or the catalog.
	byName := make(map[string]models.BudgetCategory, len(budgets))
	for _, b := range budgets {
		byName[b.Name] = b
		if _, ok := spent[b.Name]; !ok {
			spent[b.Name] = decimal.Zero
		}
	}

	views := make([]CategorySpending, 0, len(spent))
	for _, name := range category.Catalog {
		views = append(views, newView(name, spent[name], byName))
	}

	var adHoc []string
	for name := range spent {
		if !slices.Contains(category.Catalog, name) {
			adHoc = append(adHoc, name)
		}
	}
	sort.Strings(adHoc)

	for _, name := range adHoc {
		views = append(views, newView(name, spent[name], byName))
	}

	return views
}

// Sum totals budgeted, spent and remaining over exactly the views
// passed in. Callers decide whether unbudgeted categories are included.
func Sum(views []CategorySpending) Totals {
	t := Totals{
		Budgeted:  decimal.Zero,
		Spent:     decimal.Zero,
		Remaining: decimal.Zero,
	}

	for _, v := range views {
		t.Budgeted = t.Budgeted.Add(v.Budgeted)
		t.Spent = t.Spent.Add(v.Spent)
		t.Remaining = t.Remaining.Add(v.Remaining)
	}

	return t
}

func newView(name string, spent decimal.Decimal, budgets map[string]models.BudgetCategory) CategorySpending {
	b, ok := budgets[name]
	if !ok {
		// An unbudgeted category is over by its full spend
		return CategorySpending{
			Name:       name,
			Budgeted:   decimal.Zero,
			Spent:      spent,
			Remaining:  spent.Neg(),
			Status:     StatusUnbudgeted,
			LastMonth:  decimal.Zero,
			YearToDate: decimal.Zero,
		}
	}

	return CategorySpending{
		Name:       name,
		Budgeted:   b.Budgeted,
		Spent:      spent,
		Remaining:  b.Budgeted.Sub(spent),
		Status:     classify(b.Budgeted, spent),
		LastMonth:  b.LastMonth,
		YearToDate: b.YearToDate,
	}
}

// classify applies the status rules in order, first match wins.
// The 100% and 80% thresholds are fixed design constants.
func classify(budgeted, spent decimal.Decimal) Status {
	if budgeted.IsZero() {
		return StatusUnbudgeted
	}

	ratio := spent.Div(budgeted)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return StatusOver
	}

	if ratio.GreaterThan(warningThreshold) {
		return StatusWarning
	}

	return StatusGood
}
