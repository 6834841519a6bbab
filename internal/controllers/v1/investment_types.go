package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvestmentEditable struct {
	Name   string          `json:"name" example:"Vanguard Total Stock Market" default:""` // Name of the holding
	Symbol string          `json:"symbol" example:"VTI" default:""`                       // Ticker symbol, stored uppercase
	Shares decimal.Decimal `json:"shares" example:"12.841" default:"0"`                   // Number of shares held
	Value  decimal.Decimal `json:"value" example:"3314.09" default:"0"`                   // Current market value of the holding
	Change decimal.Decimal `json:"change" example:"-12.87" default:"0"`                   // Absolute change, signed
}

// model returns the database resource for the API representation of the editable fields
func (editable InvestmentEditable) model() models.Investment {
	return models.Investment{
		Name:   editable.Name,
		Symbol: editable.Symbol,
		Shares: editable.Shares,
		Value:  editable.Value,
		Change: editable.Change,
	}
}

type InvestmentLinks struct {
	Self string `json:"self" example:"https://example.com/v1/investments/ec85d9f4-1e0d-48ba-a1cf-e8a625716855"` // The investment itself
}

type Investment struct {
	models.DefaultModel
	InvestmentEditable
	Links InvestmentLinks `json:"links"`
}

// newInvestment returns the API v1 representation of the resource
func newInvestment(c *gin.Context, model models.Investment) Investment {
	url := c.GetString(string(models.ContextURL))

	return Investment{
		DefaultModel: model.DefaultModel,
		InvestmentEditable: InvestmentEditable{
			Name:   model.Name,
			Symbol: model.Symbol,
			Shares: model.Shares,
			Value:  model.Value,
			Change: model.Change,
		},
		Links: InvestmentLinks{
			Self: fmt.Sprintf("%s/v1/investments/%s", url, model.ID),
		},
	}
}

type InvestmentListResponse struct {
	Data       []Investment `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type InvestmentCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []InvestmentResponse `json:"data"`                                                          // List of created resources
}

func (i *InvestmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvestmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvestmentResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Investment `json:"data"`                                                          // The resource
}

type InvestmentQueryFilter struct {
	Name   string `form:"name"`   // Filter by name
	Symbol string `form:"symbol"` // Filter by ticker symbol
	Offset uint   `form:"offset"` // The offset of the first investment returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of investments to return. Defaults to 50.
}
