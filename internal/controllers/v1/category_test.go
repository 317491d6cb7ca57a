package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/flexfin/backend/internal/controllers/v1"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{
		Name:            "Groceries",
		AllocatedAmount: decimal.NewFromInt(450),
		Color:           "#36a2eb",
	})

	assert.Equal(suite.T(), "Groceries", category.Data.Name)
	assert.Equal(suite.T(), "#36a2eb", category.Data.Color)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateName() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{
		BudgetID: category.Data.BudgetID,
		Name:     "Groceries",
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), *response.Data[0].Error)
}

// Allocations that would exceed the monthly income are rejected.
func (suite *TestSuiteStandard) TestCategoriesCreateOverAllocated() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{MonthlyIncome: decimal.NewFromInt(1000)})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID:        budget.Data.ID,
		AllocatedAmount: decimal.NewFromInt(800),
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID:        budget.Data.ID,
		AllocatedAmount: decimal.NewFromInt(300),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryUpdateOverAllocated() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{MonthlyIncome: decimal.NewFromInt(1000)})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID:        budget.Data.ID,
		AllocatedAmount: decimal.NewFromInt(800),
	})
	category := createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID:        budget.Data.ID,
		AllocatedAmount: decimal.NewFromInt(100),
	})

	// Raising the allocation within the remaining income is fine,
	// beyond it is not.
	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"allocatedAmount": 200,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"allocatedAmount": 300,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilterBudget() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Travel"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?budget=%s", category.Data.BudgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilterName() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Travel"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?budget=%s&name=grocer", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
}
