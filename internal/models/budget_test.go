package models_test

import (
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetMonthUnique() {
	budget := suite.createTestBudget(models.Budget{
		Month:         types.NewMonth(2024, 5),
		MonthlyIncome: decimal.NewFromInt(4000),
	})

	duplicate := models.Budget{
		UserID: budget.UserID,
		Month:  types.NewMonth(2024, 5),
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetMonthNotUnique)

	// The same month for another user is fine
	otherUser := models.Budget{
		UserID: "another-user",
		Month:  types.NewMonth(2024, 5),
	}
	err = models.DB.Create(&otherUser).Error
	suite.Assert().Nil(err)

	// The same user in another month is fine
	otherMonth := models.Budget{
		UserID: budget.UserID,
		Month:  types.NewMonth(2024, 6),
	}
	err = models.DB.Create(&otherMonth).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBudgetIncomeNegative() {
	budget := models.Budget{
		UserID:        "some-user",
		Month:         types.NewMonth(2024, 5),
		MonthlyIncome: decimal.NewFromInt(-1),
	}

	err := models.DB.Create(&budget).Error
	suite.Assert().ErrorIs(err, models.ErrMonthlyIncomeNegative)
}

func (suite *TestSuiteStandard) TestBudgetForMonth() {
	budget := suite.createTestBudget(models.Budget{
		Month:         types.NewMonth(2024, 5),
		MonthlyIncome: decimal.NewFromInt(4000),
	})

	_ = suite.createTestCategory(models.Category{
		BudgetID: budget.ID,
		Name:     "Groceries",
	})
	_ = suite.createTestCategory(models.Category{
		BudgetID: budget.ID,
		Name:     "Housing",
	})

	found, err := models.BudgetForMonth(models.DB, budget.UserID, types.NewMonth(2024, 5))
	suite.Require().Nil(err)
	suite.Require().NotNil(found)
	suite.Assert().Equal(budget.ID, found.ID)
	suite.Assert().Len(found.Categories, 2)
	suite.Assert().Equal("Groceries", found.Categories[0].Name)
}

// A month without a budget returns nil without an error.
func (suite *TestSuiteStandard) TestBudgetForMonthMissing() {
	found, err := models.BudgetForMonth(models.DB, "nobody", types.NewMonth(2024, 5))
	suite.Assert().Nil(err)
	suite.Assert().Nil(found)
}
