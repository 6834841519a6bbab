package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	cb_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date      time.Time       `json:"date" example:"2026-08-12T00:00:00Z"`                       // Date of the transaction, defaults to the current time
	Amount    decimal.Decimal `json:"amount" example:"-42.50" default:"0"`                       // Signed amount, positive for inflows
	Category  string          `json:"category" example:"Food & Dining" default:""`               // Category label for the transaction
	Merchant  string          `json:"merchant" example:"Morre's Grocery" default:""`             // Merchant display name
	Note      string          `json:"note" example:"Weekly shopping" default:""`                 // A note about the transaction
	AccountID uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the transaction belongs to
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:      editable.Date,
		Amount:    editable.Amount,
		Category:  editable.Category,
		Merchant:  editable.Merchant,
		Note:      editable.Note,
		AccountID: editable.AccountID,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The Transaction itself
	Account string `json:"account" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The Account the transaction references
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:      model.Date,
			Amount:    model.Amount,
			Category:  model.Category,
			Merchant:  model.Merchant,
			Note:      model.Note,
			AccountID: model.AccountID,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	AccountID cb_uuid.UUID `form:"account"`  // Filter by account ID
	Category  string       `form:"category"` // Filter by category label
	Merchant  string       `form:"merchant"` // Filter by merchant
	Month     string       `form:"month"`    // Transactions in this month, YYYY-MM
	Offset    uint         `form:"offset"`   // The offset of the first transaction returned. Defaults to 0.
	Limit     int          `form:"limit"`    // Maximum number of transactions to return. Defaults to 50.
}
