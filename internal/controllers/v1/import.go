package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/centsible/backend/internal/category"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/importer"
	"github.com/centsible/backend/internal/models"
	cb_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/csv", OptionsImportCsv)
		r.POST("/csv", ImportCsv)

		r.OPTIONS("/csv-preview", OptionsImportCsvPreview)
		r.POST("/csv-preview", ImportCsvPreview)
	}
}

type ImportQuery struct {
	AccountID cb_uuid.UUID `form:"accountId" binding:"required"` // ID of the account to import the transactions for
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import API
}

type ImportLinks struct {
	Csv        string `json:"csv" example:"https://example.com/v1/import/csv"`                // URL of the CSV import endpoint
	CsvPreview string `json:"csvPreview" example:"https://example.com/v1/import/csv-preview"` // URL of the CSV import preview endpoint
}

// TransactionPreview is a transaction that has been parsed from an
// import file but not saved yet.
type TransactionPreview struct {
	Transaction TransactionEditable `json:"transaction"`
	MatchRuleID cb_uuid.UUID        `json:"matchRuleId" example:"95685c82-53c6-455d-b235-f49960b73b02"` // ID of the match rule that assigned the category, Nil if the fallback was used
}

// newTransactionPreview returns the API v1 representation of the resource
func newTransactionPreview(p importer.TransactionPreview) TransactionPreview {
	return TransactionPreview{
		Transaction: TransactionEditable{
			Date:      p.Transaction.Date,
			Amount:    p.Transaction.Amount,
			Category:  p.Transaction.Category,
			Merchant:  p.Transaction.Merchant,
			Note:      p.Transaction.Note,
			AccountID: p.Transaction.AccountID,
		},
		MatchRuleID: cb_uuid.UUID{UUID: p.MatchRuleID},
	}
}

type ImportPreviewList struct {
	Data  []TransactionPreview `json:"data"`                                                          // List of transaction previews
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// categorize applies the match rules to all parsed transactions. Rules
// are passed in priority order, the first matching rule wins.
// Transactions no rule matches get the fallback category.
func categorize(transactions []importer.TransactionPreview, rules []models.MatchRule) {
	for i, t := range transactions {
		t.Transaction.Category = category.Other

		for _, rule := range rules {
			if glob.Glob(rule.Match, t.Transaction.Merchant) {
				t.Transaction.Category = rule.Category
				t.MatchRuleID = rule.ID
				break
			}
		}

		transactions[i] = t
	}
}

// parseForAccount binds the import query, loads the account and parses
// the uploaded CSV file with the match rules applied.
func parseForAccount(c *gin.Context) ([]importer.TransactionPreview, error) {
	var query ImportQuery
	err := c.BindQuery(&query)
	if err != nil {
		return nil, errAccountIDSet
	}

	if query.AccountID == cb_uuid.Nil {
		return nil, errAccountIDSet
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		return nil, err
	}

	// Verify that the account exists
	var account models.Account
	err = models.DB.First(&account, query.AccountID.UUID).Error
	if err != nil {
		return nil, err
	}

	transactions, err := importer.Parse(f, account)
	if err != nil {
		// importer.Parse returns a usable error already, no wrapping necessary
		return nil, err
	}

	var matchRules []models.MatchRule
	err = models.DB.Order("match_rules.priority ASC").Find(&matchRules).Error
	if err != nil {
		return nil, err
	}

	categorize(transactions, matchRules)

	return transactions, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Import API overview
// @Description	Returns general information about the import API
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			Csv:        url + "/v1/import/csv",
			CsvPreview: url + "/v1/import/csv-preview",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/csv [options]
func OptionsImportCsv(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/csv-preview [options]
func OptionsImportCsvPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Transaction import preview
// @Description	Returns a preview of the transactions to be imported after parsing a bank export csv file. Nothing is saved.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200			{object}	ImportPreviewList
// @Failure		400			{object}	ImportPreviewList
// @Failure		404			{object}	ImportPreviewList
// @Failure		500			{object}	ImportPreviewList
// @Param			file		formData	file		true	"File to import"
// @Param			accountId	query		ImportQuery	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/csv-preview [post]
func ImportCsvPreview(c *gin.Context) {
	transactions, err := parseForAccount(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	data := make([]TransactionPreview, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransactionPreview(t))
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: data})
}

// @Summary		Import transactions
// @Description	Parses a bank export csv file, applies the match rules and creates the transactions
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	TransactionCreateResponse
// @Failure		400			{object}	TransactionCreateResponse
// @Failure		404			{object}	TransactionCreateResponse
// @Failure		500			{object}	TransactionCreateResponse
// @Param			file		formData	file		true	"File to import"
// @Param			accountId	query		ImportQuery	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/csv [post]
func ImportCsv(c *gin.Context) {
	transactions, err := parseForAccount(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, preview := range transactions {
		transaction := preview.Transaction
		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}
