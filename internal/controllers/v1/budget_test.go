package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/flexfin/backend/internal/controllers/v1"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/flexfin/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		MonthlyIncome: decimal.NewFromInt(5000),
		Note:          "First month with the new job",
	})

	assert.Equal(suite.T(), "First month with the new job", budget.Data.Note)
	assert.True(suite.T(), budget.Data.MonthlyIncome.Equal(decimal.NewFromInt(5000)))
}

// A second budget for the same user and month is rejected.
func (suite *TestSuiteStandard) TestBudgetsCreateDuplicateMonth() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{{
		UserID: budget.Data.UserID,
		Month:  budget.Data.Month,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrBudgetMonthNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsGetFilterMonth() {
	user := uuid.NewString()
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user, Month: types.NewMonth(2024, 5)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: user, Month: types.NewMonth(2024, 6)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?user=%s&month=2024-06", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "2024-06", response.Data[0].Month.String())
}

// Lowering the income below the combined allocations is rejected.
func (suite *TestSuiteStandard) TestBudgetUpdateOverAllocated() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{MonthlyIncome: decimal.NewFromInt(4000)})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID:        budget.Data.ID,
		AllocatedAmount: decimal.NewFromInt(3000),
	})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"monthlyIncome": 2000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "must not exceed the monthly income")
}

// Deleting a budget deletes its categories, but not its transactions.
func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetGetInvalidUUID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
