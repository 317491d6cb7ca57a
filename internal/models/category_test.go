package models_test

import (
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	budget := suite.createTestBudget(models.Budget{
		Month:         types.NewMonth(2024, 5),
		MonthlyIncome: decimal.NewFromInt(4000),
	})

	_ = suite.createTestCategory(models.Category{
		BudgetID: budget.ID,
		Name:     "Groceries",
	})

	duplicate := models.Category{
		BudgetID: budget.ID,
		Name:     "Groceries",
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name in another budget is fine
	other := suite.createTestBudget(models.Budget{
		Month: types.NewMonth(2024, 6),
	})
	elsewhere := models.Category{
		BudgetID: other.ID,
		Name:     "Groceries",
	}
	err = models.DB.Create(&elsewhere).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryNameTrimmed() {
	budget := suite.createTestBudget(models.Budget{
		Month: types.NewMonth(2024, 5),
	})

	category := suite.createTestCategory(models.Category{
		BudgetID: budget.ID,
		Name:     "  Dining Out  ",
	})

	suite.Assert().Equal("Dining Out", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryAllocationNegative() {
	budget := suite.createTestBudget(models.Budget{
		Month: types.NewMonth(2024, 5),
	})

	category := models.Category{
		BudgetID:        budget.ID,
		Name:            "Groceries",
		AllocatedAmount: decimal.NewFromInt(-100),
	}
	err := models.DB.Create(&category).Error
	suite.Assert().ErrorIs(err, models.ErrAllocatedAmountNegative)
}
