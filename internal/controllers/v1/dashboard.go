package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/calc"
	"github.com/centsible/backend/internal/goals"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reconcile"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

type DashboardQueryFilter struct {
	Month string `form:"month"` // The month to compute flows and the budget for, YYYY-MM. Defaults to the current month.
}

type DashboardResponse struct {
	Data  *DashboardData `json:"data"`                                                            // The dashboard overview
	Error *string        `json:"error" example:"the month query parameter must be of the form YYYY-MM"` // The error, if any occurred
}

type DashboardData struct {
	Month            types.Month          `json:"month" example:"2026-08"`
	NetWorth         decimal.Decimal      `json:"netWorth" example:"34120.77"`         // Sum of all account balances
	TotalAssets      decimal.Decimal      `json:"totalAssets" example:"41231.20"`      // Sum of all positive balances
	TotalLiabilities decimal.Decimal      `json:"totalLiabilities" example:"7110.43"`  // Magnitude of all negative balances
	Income           decimal.Decimal      `json:"income" example:"5200"`               // Inflows in the month
	Expenses         decimal.Decimal      `json:"expenses" example:"3180.55"`          // Outflows in the month
	SavingsRate      decimal.Decimal      `json:"savingsRate" example:"38.8"`          // (income - expenses) / income * 100
	Investments      calc.InvestmentTotals `json:"investments"`                        // Aggregate over all holdings
	Goals            goals.Summary        `json:"goals"`                               // Roll-up over all goals
	Budget           reconcile.Totals     `json:"budget"`                              // Budget totals for the month
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the aggregate overview: net worth, cash flows and savings rate for the month, investment totals, goal summary and budget totals
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
// @Param			month	query	string	false	"The month to compute flows and the budget for, YYYY-MM. Defaults to the current month."
func GetDashboard(c *gin.Context) {
	var filter DashboardQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
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
			c.JSON(http.StatusBadRequest, DashboardResponse{
				Error: &s,
			})
			return
		}
	}

	var accounts []models.Account
	err := models.DB.Find(&accounts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
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
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	var investments []models.Investment
	err = models.DB.Find(&investments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	var goalResources []models.Goal
	err = models.DB.Find(&goalResources).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	var budgets []models.BudgetCategory
	err = models.DB.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	income, expenses := calc.Flows(transactions)

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &DashboardData{
			Month:            month,
			NetWorth:         calc.NetWorth(accounts),
			TotalAssets:      calc.TotalAssets(accounts),
			TotalLiabilities: calc.TotalLiabilities(accounts),
			Income:           income,
			Expenses:         expenses,
			SavingsRate:      calc.SavingsRate(income, expenses),
			Investments:      calc.Investments(investments),
			Goals:            goals.Summarize(goalResources, time.Now()),
			Budget:           reconcile.Sum(reconcile.Categories(budgets, transactions)),
		},
	})
}
