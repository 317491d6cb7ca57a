package models_test

import (
	"time"

	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionAmountPositive() {
	transaction := models.Transaction{
		UserID: "some-user",
		Amount: decimal.Zero,
		Date:   types.NewDate(2024, 5, 12),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)

	transaction.Amount = decimal.NewFromInt(-5)
	err = models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	transaction := suite.createTestTransaction(models.Transaction{
		UserID: "some-user",
		Amount: decimal.NewFromInt(10),
	})

	suite.Assert().Equal(types.DateOf(time.Now()), transaction.Date)
}

// Transactions survive the deletion of their category and keep the name
// snapshot.
func (suite *TestSuiteStandard) TestTransactionSurvivesCategoryDelete() {
	budget := suite.createTestBudget(models.Budget{
		Month:         types.NewMonth(2024, 5),
		MonthlyIncome: decimal.NewFromInt(4000),
	})

	category := suite.createTestCategory(models.Category{
		BudgetID: budget.ID,
		Name:     "Groceries",
	})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:       budget.UserID,
		Amount:       decimal.NewFromInt(50),
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Date:         types.NewDate(2024, 5, 12),
	})

	err := models.DB.Delete(&category).Error
	suite.Require().Nil(err)

	var found models.Transaction
	err = models.DB.First(&found, transaction.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("Groceries", found.CategoryName)
}

func (suite *TestSuiteStandard) TestTransactionsForMonth() {
	user := "some-user"

	// Last day of April, all of May, first day of June
	for _, date := range []types.Date{
		types.NewDate(2024, 4, 30),
		types.NewDate(2024, 5, 1),
		types.NewDate(2024, 5, 31),
		types.NewDate(2024, 6, 1),
	} {
		_ = suite.createTestTransaction(models.Transaction{
			UserID: user,
			Amount: decimal.NewFromInt(10),
			Date:   date,
		})
	}

	// A transaction of another user in the month
	_ = suite.createTestTransaction(models.Transaction{
		UserID: "someone-else",
		Amount: decimal.NewFromInt(10),
		Date:   types.NewDate(2024, 5, 15),
	})

	transactions, err := models.TransactionsForMonth(models.DB, user, types.NewMonth(2024, 5))
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 2)

	// Newest first
	suite.Assert().Equal(types.NewDate(2024, 5, 31), transactions[0].Date)
	suite.Assert().Equal(types.NewDate(2024, 5, 1), transactions[1].Date)
}

func (suite *TestSuiteStandard) TestTransactionsForRange() {
	user := "some-user"

	for day := 10; day <= 14; day++ {
		_ = suite.createTestTransaction(models.Transaction{
			UserID: user,
			Amount: decimal.NewFromInt(10),
			Date:   types.NewDate(2024, 5, day),
		})
	}

	// The range is inclusive on both ends
	transactions, err := models.TransactionsForRange(models.DB, user, types.NewDate(2024, 5, 11), types.NewDate(2024, 5, 13))
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 3)
}
