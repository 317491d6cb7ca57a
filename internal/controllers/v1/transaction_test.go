package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/flexfin/backend/internal/controllers/v1"
	"github.com/flexfin/backend/internal/types"
	"github.com/flexfin/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) types.Date {
	return types.NewDate(year, month, day)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(14.03),
		Description: "Lunch",
	})

	assert.Equal(suite.T(), "Lunch", transaction.Data.Description)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
}

// Zero and negative amounts are rejected with a parseable error message.
func (suite *TestSuiteStandard) TestTransactionsCreateNonPositiveAmount() {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-10)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{{
				UserID: uuid.NewString(),
				Amount: tt.amount,
			}})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, "positive number")
		})
	}
}

// When a transaction references a category, the category's name is
// snapshotted so it survives a later category deletion.
func (suite *TestSuiteStandard) TestTransactionsCreateSnapshotsCategoryName() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
	})

	assert.Equal(suite.T(), "Groceries", transaction.Data.CategoryName)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilters() {
	user := uuid.NewString()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Date: date(2024, 5, 1), Description: "Rent"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Date: date(2024, 5, 20), Description: "Supermarket"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Date: date(2024, 6, 1), Description: "Rent"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: date(2024, 5, 10)}) // other user

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"user", fmt.Sprintf("user=%s", user), 3},
		{"month", fmt.Sprintf("user=%s&month=2024-05", user), 2},
		{"since inclusive", fmt.Sprintf("user=%s&since=2024-05-20", user), 2},
		{"until inclusive", fmt.Sprintf("user=%s&until=2024-05-20", user), 2},
		{"range", fmt.Sprintf("user=%s&since=2024-05-02&until=2024-05-31", user), 1},
		{"search", fmt.Sprintf("user=%s&search=rent", user), 2},
		{"no match", fmt.Sprintf("user=%s&month=2023-01", user), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Lunhc"})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"description": "Lunch",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Lunch", response.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionUpdateNonPositiveAmount() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"amount": -7,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
