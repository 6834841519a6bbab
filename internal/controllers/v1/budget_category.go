package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterBudgetCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetCategories)
		r.GET("", GetBudgetCategories)
		r.POST("", CreateBudgetCategories)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetCategoryDetail)
		r.GET("/:id", GetBudgetCategory)
		r.PATCH("/:id", UpdateBudgetCategory)
		r.DELETE("/:id", DeleteBudgetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetCategories
// @Success		204
// @Router			/v1/categories [options]
func OptionsBudgetCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsBudgetCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BudgetCategory{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget categories
// @Description	Creates new monthly spending limits. At most one budget category can exist per category label.
// @Tags			BudgetCategories
// @Produce		json
// @Success		201			{object}	BudgetCategoryCreateResponse
// @Failure		400			{object}	BudgetCategoryCreateResponse
// @Failure		500			{object}	BudgetCategoryCreateResponse
// @Param			categories	body		[]BudgetCategoryEditable	true	"Budget categories"
// @Router			/v1/categories [post]
func CreateBudgetCategories(c *gin.Context) {
	var categories []BudgetCategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &categories)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCategoryCreateResponse{}

	for _, create := range categories {
		budgetCategory := create.model()
		err = models.DB.Create(&budgetCategory).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newBudgetCategory(c, budgetCategory)
		r.Data = append(r.Data, BudgetCategoryResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get budget categories
// @Description	Returns a list of budget categories
// @Tags			BudgetCategories
// @Produce		json
// @Success		200	{object}	BudgetCategoryListResponse
// @Failure		400	{object}	BudgetCategoryListResponse
// @Failure		500	{object}	BudgetCategoryListResponse
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Filter by category label"
// @Param			offset	query	uint	false	"The offset of the first budget category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of budget categories to return. Defaults to 50."
func GetBudgetCategories(c *gin.Context) {
	var filter BudgetCategoryQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetCategoryListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("budget_categories.name ASC").Model(&models.BudgetCategory{})

	if filter.Name != "" {
		q = q.Where("budget_categories.name LIKE ?", "%"+filter.Name+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budget categories and set the limit
	limit := 50
	if c.Request.URL.Query().Has("limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categories []models.BudgetCategory
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]BudgetCategory, 0, len(categories))
	for _, budgetCategory := range categories {
		data = append(data, newBudgetCategory(c, budgetCategory))
	}

	c.JSON(http.StatusOK, BudgetCategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget category
// @Description	Returns a specific budget category
// @Tags			BudgetCategories
// @Produce		json
// @Success		200	{object}	BudgetCategoryResponse
// @Failure		400	{object}	BudgetCategoryResponse
// @Failure		404	{object}	BudgetCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	var budgetCategory models.BudgetCategory
	err = models.DB.First(&budgetCategory, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetCategory(c, budgetCategory)
	c.JSON(http.StatusOK, BudgetCategoryResponse{Data: &apiResource})
}

// @Summary		Update budget category
// @Description	Updates an existing budget category. Only values to be updated need to be specified.
// @Tags			BudgetCategories
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetCategoryResponse
// @Failure		400			{object}	BudgetCategoryResponse
// @Failure		404			{object}	BudgetCategoryResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		BudgetCategoryEditable	true	"Budget category"
// @Router			/v1/categories/{id} [patch]
func UpdateBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	var budgetCategory models.BudgetCategory
	err = models.DB.First(&budgetCategory, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BudgetCategoryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data BudgetCategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budgetCategory).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetCategory(c, budgetCategory)
	c.JSON(http.StatusOK, BudgetCategoryResponse{Data: &apiResource})
}

// @Summary		Delete budget category
// @Description	Deletes a budget category. The category itself reverts to unbudgeted, its spending is still computed.
// @Tags			BudgetCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budgetCategory models.BudgetCategory
	err = models.DB.First(&budgetCategory, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budgetCategory).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
