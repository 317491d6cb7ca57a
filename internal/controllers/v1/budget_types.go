package v1

import (
	"fmt"

	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	UserID        string          `json:"userId" example:"d1f7f5a4-9d25-4a41-9b6d-4b4b2e4b2b4a"` // Subject of the user owning the budget
	Month         types.Month     `json:"month" example:"2024-05"`                               // The calendar month this budget is for
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"5000" default:"0"`              // Declared income for the month
	Note          string          `json:"note" example:"First month with the new job" default:""` // Notes about the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID:        editable.UserID,
		Month:         editable.Month,
		MonthlyIncome: editable.MonthlyIncome,
		Note:          editable.Note,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/04f5fe80-d304-4a22-8db5-0ff7dbf5d161"`     // The budget itself
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories?budget=04f5fe80-d304-4a22-8db5-0ff7dbf5d161"` // Categories of this budget
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?user=d1f7f5a4&month=2024-05"` // Transactions in this budget's month
	Overview     string `json:"overview" example:"https://example.com/api/v1/months/d1f7f5a4/2024-05"`                      // The composed month overview
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Categories []models.Category `json:"categories"` // Spending categories, in declaration order
	Links      BudgetLinks       `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := httputil.RequestPathV1(c)

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			UserID:        model.UserID,
			Month:         model.Month,
			MonthlyIncome: model.MonthlyIncome,
			Note:          model.Note,
		},
		Categories: model.Categories,
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/budgets/%s", url, model.ID),
			Categories:   fmt.Sprintf("%s/categories?budget=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/transactions?user=%s&month=%s", url, model.UserID, model.Month),
			Overview:     fmt.Sprintf("%s/months/%s/%s", url, model.UserID, model.Month),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	UserID string `form:"user"`                       // By user subject
	Month  string `form:"month" filterField:"false"`  // By month in YYYY-MM format
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() (models.Budget, error) {
	return models.Budget{
		UserID: f.UserID,
	}, nil
}
