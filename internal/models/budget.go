package models

import (
	"errors"

	"github.com/flexfin/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents the spending plan of one user for one calendar month.
//
// Budgets do not roll over: a new month has no budget until the user
// explicitly creates one.
type Budget struct {
	DefaultModel
	UserID        string          `json:"userId" gorm:"uniqueIndex:budget_user_month" example:"d1f7f5a4-9d25-4a41-9b6d-4b4b2e4b2b4a"` // Subject of the user owning the budget
	Month         types.Month     `json:"month" gorm:"uniqueIndex:budget_user_month" example:"2024-05"`                               // The calendar month this budget is for
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,8)" example:"5000"`                                     // Declared income for the month
	Note          string          `json:"note,omitempty" example:"First month with the new job"`                                      // Notes about the budget
	Categories    []Category      `json:"categories"`                                                                                 // Spending categories, in declaration order
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.MonthlyIncome.IsNegative() {
		return ErrMonthlyIncomeNegative
	}

	return nil
}

// Transactions returns all transactions of the budget's user that fall into
// the budget's month, newest first.
func (b Budget) Transactions(db *gorm.DB) ([]Transaction, error) {
	return TransactionsForMonth(db, b.UserID, b.Month)
}

// BudgetForMonth returns the budget of a user for a month with its
// categories preloaded.
//
// A missing budget is a regular state, not an error: before the user sets up
// the month, the returned budget is nil.
func BudgetForMonth(db *gorm.DB, userID string, month types.Month) (*Budget, error) {
	var budget Budget

	err := db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.created_at ASC")
		}).
		Where(&Budget{UserID: userID, Month: month}).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}
