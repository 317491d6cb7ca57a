package calc

import (
	"github.com/flexfin/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DashboardStats are the aggregate figures shown on the dashboard.
type DashboardStats struct {
	TotalBudget          decimal.Decimal `json:"totalBudget" example:"5000"`     // The monthly income
	TotalSpent           decimal.Decimal `json:"totalSpent" example:"2200"`      // Sum of all transaction amounts in the month
	RemainingBudget      decimal.Decimal `json:"remainingBudget" example:"2800"` // Income minus spent, negative when overspent
	PercentageUsed       int64           `json:"percentageUsed" example:"44"`    // Rounded percentage of the income spent
	CategoriesOverBudget int             `json:"categoriesOverBudget" example:"1"` // Number of categories that exceeded their allocation
	TransactionCount     int             `json:"transactionCount" example:"23"`  // Number of transactions in the month
}

// Dashboard computes the aggregate statistics for a month.
//
// The total spent sums every transaction regardless of category attribution,
// including orphaned ones: the aggregate must reconcile with bank-level
// reality even when per-category attribution is lost.
//
// A nil budget is the regular "no budget yet" state: all monetary figures
// are zero, but the transactions are still counted.
func Dashboard(budget *models.Budget, transactions []models.Transaction, spending []CategorySpending) DashboardStats {
	stats := DashboardStats{
		TotalBudget:      decimal.Zero,
		TotalSpent:       decimal.Zero,
		RemainingBudget:  decimal.Zero,
		TransactionCount: len(transactions),
	}

	if budget == nil {
		return stats
	}

	stats.TotalBudget = budget.MonthlyIncome
	for _, transaction := range transactions {
		stats.TotalSpent = stats.TotalSpent.Add(transaction.Amount)
	}
	stats.RemainingBudget = stats.TotalBudget.Sub(stats.TotalSpent)
	stats.PercentageUsed = roundPercentage(stats.TotalSpent, stats.TotalBudget)

	// The synthetic "Unallocated" entry never counts as a category over
	// budget, it has nothing allocated by definition.
	for _, category := range spending {
		if !category.IsUnallocated && category.PercentageUsed > 100 {
			stats.CategoriesOverBudget++
		}
	}

	return stats
}
