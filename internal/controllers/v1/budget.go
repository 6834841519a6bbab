package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reconcile"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
}

type BudgetQueryFilter struct {
	Month string `form:"month"` // The month to reconcile, YYYY-MM. Defaults to the current month.
}

type BudgetResponse struct {
	Data  *BudgetData `json:"data"`                                                            // The reconciled budget
	Error *string     `json:"error" example:"the month query parameter must be of the form YYYY-MM"` // The error, if any occurred
}

type BudgetData struct {
	Month      types.Month                 `json:"month" example:"2026-08"`
	Categories []reconcile.CategorySpending `json:"categories"` // One view per category, catalog order first
	Totals     reconcile.Totals             `json:"totals"`     // Sums over all categories, unbudgeted included
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get reconciled budget
// @Description	Reconciles the budget entries against one month of transactions. The computation is re-run in full on every request and nothing is written back.
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
// @Param			month	query	string	false	"The month to reconcile, YYYY-MM. Defaults to the current month."
func GetBudget(c *gin.Context) {
	var filter BudgetQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(time.Now())
	if filter.Month != "" {
		var err error
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			s := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, BudgetResponse{
				Error: &s,
			})
			return
		}
	}

	var budgets []models.BudgetCategory
	err := models.DB.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.
		Where("transactions.date >= date(?) AND transactions.date < date(?)", month, month.AddDate(0, 1)).
		Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	categories := reconcile.Categories(budgets, transactions)

	c.JSON(http.StatusOK, BudgetResponse{
		Data: &BudgetData{
			Month:      month,
			Categories: categories,
			Totals:     reconcile.Sum(categories),
		},
	})
}
