package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetCategoryEditable struct {
	Name       string          `json:"name" example:"Food & Dining" default:""`   // Category label this budget is for, must be unique
	Budgeted   decimal.Decimal `json:"budgeted" example:"450" default:"0"`        // The monthly limit, must be larger than zero
	LastMonth  decimal.Decimal `json:"lastMonth" example:"430.12" default:"0"`    // Informational carry-over from last month
	YearToDate decimal.Decimal `json:"yearToDate" example:"3211.09" default:"0"`  // Informational carry-over for the year
	Note       string          `json:"note" example:"Includes restaurants" default:""` // A note about the budget
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetCategoryEditable) model() models.BudgetCategory {
	return models.BudgetCategory{
		Name:       editable.Name,
		Budgeted:   editable.Budgeted,
		LastMonth:  editable.LastMonth,
		YearToDate: editable.YearToDate,
		Note:       editable.Note,
	}
}

type BudgetCategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/categories/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`              // The budget category itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?category=Food%20%26%20Dining"` // Transactions in this category
}

type BudgetCategory struct {
	models.DefaultModel
	BudgetCategoryEditable
	Links BudgetCategoryLinks `json:"links"`
}

// newBudgetCategory returns the API v1 representation of the resource
func newBudgetCategory(c *gin.Context, model models.BudgetCategory) BudgetCategory {
	url := c.GetString(string(models.ContextURL))

	return BudgetCategory{
		DefaultModel: model.DefaultModel,
		BudgetCategoryEditable: BudgetCategoryEditable{
			Name:       model.Name,
			Budgeted:   model.Budgeted,
			LastMonth:  model.LastMonth,
			YearToDate: model.YearToDate,
			Note:       model.Note,
		},
		Links: BudgetCategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.Name),
		},
	}
}

type BudgetCategoryListResponse struct {
	Data       []BudgetCategory `json:"data"`                                                          // List of resources
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type BudgetCategoryCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetCategoryResponse `json:"data"`                                                          // List of created resources
}

func (b *BudgetCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetCategoryResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetCategory `json:"data"`                                                          // The resource
}

type BudgetCategoryQueryFilter struct {
	Name   string `form:"name"`   // Filter by category label
	Offset uint   `form:"offset"` // The offset of the first budget category returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of budget categories to return. Defaults to 50.
}
