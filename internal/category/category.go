// Package category defines the closed catalog of transaction categories.
package category

// Income is the reserved label for inflows. Transactions in this
// category never count as spending.
const Income = "Income"

// Other is the fallback label for transactions that could not be
// categorized on import.
const Other = "Other"

// Catalog is the closed set of expense categories. The order here is
// the display order.
var Catalog = []string{
	"Food & Dining",
	"Auto & Transport",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Health & Fitness",
	"Travel",
	"Education",
	"Personal Care",
	"Home",
	Other,
}

// IsKnown reports whether the label is part of the catalog or the
// reserved Income label.
func IsKnown(label string) bool {
	if label == Income {
		return true
	}

	for _, c := range Catalog {
		if c == label {
			return true
		}
	}

	return false
}
