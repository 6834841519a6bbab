package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/goals"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name                string          `json:"name" example:"Emergency Fund" default:""`          // Name of the goal
	Type                models.GoalType `json:"type" example:"savings" default:"savings"`          // "savings" or "debt"
	Note                string          `json:"note" example:"Six months of expenses" default:""`  // A note about the goal
	Target              decimal.Decimal `json:"target" example:"10000" default:"0"`                // The amount to reach, must be larger than zero
	Current             decimal.Decimal `json:"current" example:"6420" default:"0"`                // The amount saved or paid off so far
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"400" default:"0"`     // Planned contribution per month
	Deadline            time.Time       `json:"deadline" example:"2027-06-01T00:00:00Z"`           // Date the goal should be reached by
	Emoji               string          `json:"emoji" example:"🏦" default:""`                      // Display emoji
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:                editable.Name,
		Type:                editable.Type,
		Note:                editable.Note,
		Target:              editable.Target,
		Current:             editable.Current,
		MonthlyContribution: editable.MonthlyContribution,
		Deadline:            editable.Deadline,
		Emoji:               editable.Emoji,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/goals/902cd93c-3724-4e46-8540-d014131282fc"`              // The goal itself
	Progress string `json:"progress" example:"https://example.com/v1/goals/902cd93c-3724-4e46-8540-d014131282fc/progress"` // Contribution endpoint for the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress goals.Progress `json:"progress"` // Derived trajectory of the goal
	Links    GoalLinks      `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.ContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:                model.Name,
			Type:                model.Type,
			Note:                model.Note,
			Target:              model.Target,
			Current:             model.Current,
			MonthlyContribution: model.MonthlyContribution,
			Deadline:            model.Deadline,
			Emoji:               model.Emoji,
		},
		Progress: goals.Compute(model, time.Now()),
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Progress: fmt.Sprintf("%s/v1/goals/%s/progress", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal        `json:"data"`                                                          // List of resources
	Summary    *goals.Summary `json:"summary"`                                                      // Roll-up over the returned goals
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

// GoalContribution is the request body for adding money to a goal.
type GoalContribution struct {
	Amount decimal.Decimal `json:"amount" example:"150" default:"0"` // The amount to add to the goal, must not be negative
}

type GoalQueryFilter struct {
	Name   string `form:"name"`   // Filter by name
	Type   string `form:"type"`   // Filter by goal type
	Offset uint   `form:"offset"` // The offset of the first goal returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of goals to return. Defaults to 50.
}
