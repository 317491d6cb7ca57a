package calc

import (
	"github.com/flexfin/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Flexibility describes how much of the monthly income is deliberately left
// unassigned. Unallocated funds are a flexibility buffer, not an error.
type Flexibility struct {
	TotalAllocated        decimal.Decimal `json:"totalAllocated" example:"3000"`    // Sum of all category allocations
	UnallocatedAmount     decimal.Decimal `json:"unallocatedAmount" example:"1000"` // Income not assigned to any category, never negative
	FlexibilityPercentage int64           `json:"flexibilityPercentage" example:"25"` // Rounded share of income left unallocated
	HasUnallocatedFunds   bool            `json:"hasUnallocatedFunds" example:"true"` // True if any income is unallocated
}

// BudgetFlexibility computes the allocated and unallocated income of a budget.
//
// Over-allocation (allocations exceeding income) is not an error here: the
// unallocated amount is floored at zero and the API layer rejects budgets
// where the allocations exceed the income.
func BudgetFlexibility(budget models.Budget) Flexibility {
	totalAllocated := decimal.Zero
	for _, category := range budget.Categories {
		totalAllocated = totalAllocated.Add(category.AllocatedAmount)
	}

	unallocated := budget.MonthlyIncome.Sub(totalAllocated)
	if unallocated.IsNegative() {
		unallocated = decimal.Zero
	}

	return Flexibility{
		TotalAllocated:        totalAllocated,
		UnallocatedAmount:     unallocated,
		FlexibilityPercentage: roundPercentage(unallocated, budget.MonthlyIncome),
		HasUnallocatedFunds:   unallocated.IsPositive(),
	}
}
