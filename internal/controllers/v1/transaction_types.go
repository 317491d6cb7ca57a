package v1

import (
	"fmt"

	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	ez_uuid "github.com/flexfin/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	UserID          string          `json:"userId" example:"d1f7f5a4-9d25-4a41-9b6d-4b4b2e4b2b4a"`     // Subject of the user owning the transaction
	Amount          decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001"`               // The amount spent
	Description     string          `json:"description" example:"Lunch" default:""`                    // Free-text description
	CategoryID      uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // Reference to a category
	CategoryName    string          `json:"categoryName" example:"Food" default:""`                    // Category name snapshot
	Date            types.Date      `json:"date" example:"2024-05-12"`                                 // Calendar day the expense happened on, defaults to today
	IsAICategorized bool            `json:"isAICategorized" example:"false" default:"false"`           // True if the category was assigned by the categorization service
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:          editable.UserID,
		Amount:          editable.Amount,
		Description:     editable.Description,
		CategoryID:      editable.CategoryID,
		CategoryName:    editable.CategoryName,
		Date:            editable.Date,
		IsAICategorized: editable.IsAICategorized,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.RequestPathV1(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:          model.UserID,
			Amount:          model.Amount,
			Description:     model.Description,
			CategoryID:      model.CategoryID,
			CategoryName:    model.CategoryName,
			Date:            model.Date,
			IsAICategorized: model.IsAICategorized,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	UserID          string       `form:"user"`                        // By user subject
	CategoryID      ez_uuid.UUID `form:"category"`                    // By ID of the category
	Month           string       `form:"month" filterField:"false"`   // By month in YYYY-MM format
	Since           string       `form:"since" filterField:"false"`   // Transactions on or after this date in YYYY-MM-DD format
	Until           string       `form:"until" filterField:"false"`   // Transactions on or before this date in YYYY-MM-DD format
	Search          string       `form:"search" filterField:"false"`  // Search for this text in the description
	IsAICategorized bool         `form:"isAICategorized"`             // By categorization source
	Offset          uint         `form:"offset" filterField:"false"`  // The offset of the first transaction returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`   // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	return models.Transaction{
		UserID:          f.UserID,
		CategoryID:      f.CategoryID.UUID,
		IsAICategorized: f.IsAICategorized,
	}, nil
}
