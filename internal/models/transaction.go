package models

import (
	"strings"
	"time"

	"github.com/flexfin/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single expense.
//
// CategoryID is a loose reference, not a foreign key: deleting a category
// does not delete or reassign its transactions. CategoryName is a snapshot
// of the category name at creation time so that orphaned transactions stay
// readable.
type Transaction struct {
	DefaultModel
	UserID          string          `json:"userId" example:"d1f7f5a4-9d25-4a41-9b6d-4b4b2e4b2b4a"`                     // Subject of the user owning the transaction
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:amount_positive,amount > 0" example:"14.03"` // The amount spent
	Description     string          `json:"description" example:"Lunch"`                                               // Free-text description
	CategoryID      uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`                 // Reference to a category, may be orphaned
	CategoryName    string          `json:"categoryName" example:"Food"`                                               // Category name snapshot at creation time
	Date            types.Date      `json:"date" example:"2024-05-12"`                                                 // Calendar day the expense happened on
	IsAICategorized bool            `json:"isAICategorized" example:"false" default:"false"`                           // True if the category was assigned by the categorization service
}

// BeforeSave normalizes the transaction before writing it.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now())
	}

	return nil
}

// TransactionsForMonth returns all transactions of a user within a month,
// newest first.
func TransactionsForMonth(db *gorm.DB, userID string, month types.Month) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(&Transaction{UserID: userID}).
		Where("transactions.date >= date(?) AND transactions.date < date(?)", month, month.AddDate(0, 1)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// TransactionsForRange returns all transactions of a user in the inclusive
// calendar-day range [from, to], newest first.
func TransactionsForRange(db *gorm.DB, userID string, from, to types.Date) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(&Transaction{UserID: userID}).
		Where("transactions.date >= date(?) AND transactions.date < date(?)", from, to.AddDays(1)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
