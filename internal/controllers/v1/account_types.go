package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name        string          `json:"name" example:"Checking" default:""`                                        // Name of the account, must be unique
	Institution string          `json:"institution" example:"First Bank of the Shire" default:""`                  // The financial institution holding the account
	Note        string          `json:"note" example:"Joint account" default:""`                                   // A note about the account
	Balance     decimal.Decimal `json:"balance" example:"2317.34" default:"0"`                                     // Signed balance, negative for debt accounts
	Archived    bool            `json:"archived" example:"false" default:"false"`                                  // Is the account hidden from overviews?
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:        editable.Name,
		Institution: editable.Institution,
		Note:        editable.Note,
		Balance:     editable.Balance,
		Archived:    editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The Account itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.ContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:        model.Name,
			Institution: model.Institution,
			Note:        model.Note,
			Balance:     model.Balance,
			Archived:    model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created resources
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Account `json:"data"`                                                          // The resource
}

type AccountQueryFilter struct {
	Name     string `form:"name"`     // Filter by name
	Archived bool   `form:"archived"` // Is the account archived?
	Offset   uint   `form:"offset"`   // The offset of the first account returned. Defaults to 0.
	Limit    int    `form:"limit"`    // Maximum number of accounts to return. Defaults to 50.
}
