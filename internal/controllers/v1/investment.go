package v1

import (
	"net/http"
	"strings"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsInvestments)
		r.GET("", GetInvestments)
		r.POST("", CreateInvestments)
	}
	{
		r.OPTIONS("/:id", OptionsInvestmentDetail)
		r.GET("/:id", GetInvestment)
		r.PATCH("/:id", UpdateInvestment)
		r.DELETE("/:id", DeleteInvestment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments [options]
func OptionsInvestments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [options]
func OptionsInvestmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Investment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create investments
// @Description	Creates new investment holdings
// @Tags			Investments
// @Produce		json
// @Success		201			{object}	InvestmentCreateResponse
// @Failure		400			{object}	InvestmentCreateResponse
// @Failure		500			{object}	InvestmentCreateResponse
// @Param			investments	body		[]InvestmentEditable	true	"Investments"
// @Router			/v1/investments [post]
func CreateInvestments(c *gin.Context) {
	var investments []InvestmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &investments)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvestmentCreateResponse{}

	for _, create := range investments {
		investment := create.model()
		err = models.DB.Create(&investment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newInvestment(c, investment)
		r.Data = append(r.Data, InvestmentResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get investments
// @Description	Returns a list of investment holdings
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentListResponse
// @Failure		400	{object}	InvestmentListResponse
// @Failure		500	{object}	InvestmentListResponse
// @Router			/v1/investments [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			symbol	query	string	false	"Filter by ticker symbol"
// @Param			offset	query	uint	false	"The offset of the first investment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of investments to return. Defaults to 50."
func GetInvestments(c *gin.Context) {
	var filter InvestmentQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvestmentListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("investments.name ASC").Model(&models.Investment{})

	if filter.Name != "" {
		q = q.Where("investments.name LIKE ?", "%"+filter.Name+"%")
	}

	if filter.Symbol != "" {
		q = q.Where("investments.symbol = ?", strings.ToUpper(filter.Symbol))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 investments and set the limit
	limit := 50
	if c.Request.URL.Query().Has("limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var investments []models.Investment
	err := q.Find(&investments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Investment, 0, len(investments))
	for _, investment := range investments {
		data = append(data, newInvestment(c, investment))
	}

	c.JSON(http.StatusOK, InvestmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get investment
// @Description	Returns a specific investment holding
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentResponse
// @Failure		400	{object}	InvestmentResponse
// @Failure		404	{object}	InvestmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [get]
func GetInvestment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &apiResource})
}

// @Summary		Update investment
// @Description	Updates an existing investment holding. Only values to be updated need to be specified.
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvestmentResponse
// @Failure		400			{object}	InvestmentResponse
// @Failure		404			{object}	InvestmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			investment	body		InvestmentEditable	true	"Investment"
// @Router			/v1/investments/{id} [patch]
func UpdateInvestment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, InvestmentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data InvestmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&investment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvestment(c, investment)
	c.JSON(http.StatusOK, InvestmentResponse{Data: &apiResource})
}

// @Summary		Delete investment
// @Description	Deletes an investment holding
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [delete]
func DeleteInvestment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&investment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
