package v1

import (
	"fmt"
	"net/http"

	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/report"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for report exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:user/:month", OptionsExport)
	r.GET("/:user/:month", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/{user}/{month} [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export month
// @Description	Exports a budget month as an XLSX workbook
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	path	string	true	"Subject of the user"
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/export/{user}/{month} [get]
func GetExport(c *gin.Context) {
	var uri URIUserMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	budget, err := models.BudgetForMonth(models.DB, uri.UserID, uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transactions, err := models.TransactionsForMonth(models.DB, uri.UserID, uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	f, err := report.Monthly(budget, transactions, uri.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.Filename(uri.Month)))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
	}
}
