package importer

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
)

// TransactionPreview is a parsed transaction that has not been saved
// yet. The category is assigned by the caller, e.g. through match
// rules.
type TransactionPreview struct {
	Transaction models.Transaction
	MatchRuleID uuid.UUID // ID of the match rule that assigned the category, if any
}

// Column indexes of the bank export CSV format.
const (
	Date = iota
	Merchant
	Outflow
	Inflow
	Memo
)
