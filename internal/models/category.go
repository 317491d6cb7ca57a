package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category represents a spending category of a budget.
//
// The allocated amount may be zero. Transactions posted against the category
// survive its deletion, they simply lose their per-category attribution.
type Category struct {
	DefaultModel
	BudgetID        uuid.UUID       `json:"budgetId" gorm:"uniqueIndex:category_budget_name" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the budget the category belongs to
	Budget          Budget          `json:"-"`
	Name            string          `json:"name" gorm:"uniqueIndex:category_budget_name" example:"Groceries"` // Display name, unique per budget
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" gorm:"type:DECIMAL(20,8)" example:"450"`          // Amount of income assigned to this category
	Color           string          `json:"color" example:"#36a2eb"`                                          // Display color
	Icon            string          `json:"icon,omitempty" example:"cart"`                                    // Optional icon tag
	IsCustom        bool            `json:"isCustom" example:"true" default:"false"`                          // True for user-defined categories, false for defaults
}

// BeforeSave validates the category and normalizes the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.AllocatedAmount.IsNegative() {
		return ErrAllocatedAmountNegative
	}

	return nil
}
