package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Accounts     string `json:"accounts" example:"https://example.com/v1/accounts"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"`
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`
	Goals        string `json:"goals" example:"https://example.com/v1/goals"`
	Investments  string `json:"investments" example:"https://example.com/v1/investments"`
	MatchRules   string `json:"matchRules" example:"https://example.com/v1/match-rules"`
	Budget       string `json:"budget" example:"https://example.com/v1/budget"`
	Dashboard    string `json:"dashboard" example:"https://example.com/v1/dashboard"`
	Import       string `json:"import" example:"https://example.com/v1/import"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.ContextURL)) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Accounts:     url + "/accounts",
			Transactions: url + "/transactions",
			Categories:   url + "/categories",
			Goals:        url + "/goals",
			Investments:  url + "/investments",
			MatchRules:   url + "/match-rules",
			Budget:       url + "/budget",
			Dashboard:    url + "/dashboard",
			Import:       url + "/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
