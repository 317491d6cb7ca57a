// Package calc implements the derived figures of the budget model.
//
// Everything in this package is a pure function of its inputs: budgets and
// transactions are read, never mutated, and all outputs are freshly
// allocated. The persistence layer re-invokes these functions with full
// snapshots whenever data changes; there is no incremental update model.
// "Now" is always an explicit parameter, never the wall clock.
package calc

import (
	"github.com/flexfin/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// OverBudgetNoAllocationSentinel is the percentage reported for a category
// that has money spent against a zero allocation. It is a display
// convention, not a mathematically meaningful percentage: clients
// special-case it instead of rendering a bar at 999%.
const OverBudgetNoAllocationSentinel = 999

// UnallocatedColor is the display color of the synthetic pseudo-category
// representing unallocated income.
const UnallocatedColor = "#9e9e9e"

// CategorySpending is the per-category spending breakdown for one month.
type CategorySpending struct {
	CategoryID     uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	Name           string          `json:"name" example:"Groceries"`                                  // Name of the category
	Color          string          `json:"color" example:"#36a2eb"`                                   // Display color of the category
	Allocated      decimal.Decimal `json:"allocated" example:"450"`                                   // Amount allocated to the category
	Spent          decimal.Decimal `json:"spent" example:"213.17"`                                    // Sum of all transactions against the category
	Remaining      decimal.Decimal `json:"remaining" example:"236.83"`                                // Allocated minus spent, negative when over budget
	PercentageUsed int64           `json:"percentageUsed" example:"47"`                               // Rounded percentage of the allocation used
	IsUnallocated  bool            `json:"isUnallocated" example:"false"`                             // True only for the synthetic "Unallocated" entry
}

// Breakdown is the result of attributing a month's transactions to the
// budget's categories.
//
// Transactions whose category no longer exists are excluded from the
// per-category figures but tracked here, so that the aggregate spend still
// reconciles: the sum of all Spent fields plus OrphanedAmount equals the sum
// of all transaction amounts.
type Breakdown struct {
	Categories     []CategorySpending `json:"categories"`               // One entry per budget category, in declaration order
	OrphanedAmount decimal.Decimal    `json:"orphanedAmount" example:"50"` // Total amount of transactions without a matching category
	OrphanedCount  int                `json:"orphanedCount" example:"1"`   // Number of transactions without a matching category
}

// CategoryBreakdown computes the per-category spending for a budget.
//
// Orphaned transactions are a regular state, not an error: the user may
// delete a category that already has transactions posted against it. They
// are logged and reported in the Breakdown, and the calculation continues.
func CategoryBreakdown(budget models.Budget, transactions []models.Transaction) Breakdown {
	spending := make([]CategorySpending, 0, len(budget.Categories))
	index := make(map[uuid.UUID]int, len(budget.Categories))

	for i, category := range budget.Categories {
		spending = append(spending, CategorySpending{
			CategoryID: category.ID,
			Name:       category.Name,
			Color:      category.Color,
			Allocated:  category.AllocatedAmount,
			Spent:      decimal.Zero,
		})
		index[category.ID] = i
	}

	breakdown := Breakdown{OrphanedAmount: decimal.Zero}

	for _, transaction := range transactions {
		i, ok := index[transaction.CategoryID]
		if !ok {
			log.Debug().
				Str("transaction", transaction.ID.String()).
				Str("category", transaction.CategoryID.String()).
				Str("categoryName", transaction.CategoryName).
				Msg("transaction references a category that no longer exists")

			breakdown.OrphanedAmount = breakdown.OrphanedAmount.Add(transaction.Amount)
			breakdown.OrphanedCount++
			continue
		}

		spending[i].Spent = spending[i].Spent.Add(transaction.Amount)
	}

	for i := range spending {
		spending[i].Remaining = spending[i].Allocated.Sub(spending[i].Spent)
		spending[i].PercentageUsed = percentageUsed(spending[i].Spent, spending[i].Allocated)
	}

	breakdown.Categories = spending
	return breakdown
}

// WithUnallocated returns the category list with a synthetic "Unallocated"
// pseudo-category appended, representing the part of the income that is not
// assigned to any category. With it, the category list accounts for every
// unit of income, which is the point of zero-based budgeting.
func (b Breakdown) WithUnallocated(monthlyIncome decimal.Decimal) []CategorySpending {
	totalAllocated := decimal.Zero
	for _, category := range b.Categories {
		totalAllocated = totalAllocated.Add(category.Allocated)
	}

	unallocated := monthlyIncome.Sub(totalAllocated)
	if unallocated.IsNegative() {
		unallocated = decimal.Zero
	}

	categories := make([]CategorySpending, len(b.Categories), len(b.Categories)+1)
	copy(categories, b.Categories)

	return append(categories, CategorySpending{
		Name:          "Unallocated",
		Color:         UnallocatedColor,
		Allocated:     unallocated,
		Spent:         decimal.Zero,
		Remaining:     unallocated,
		IsUnallocated: true,
	})
}

// percentageUsed implements the sentinel rule for zero allocations: spending
// against a zero allocation reports the sentinel instead of dividing by
// zero, and a fully idle category reports zero.
func percentageUsed(spent, allocated decimal.Decimal) int64 {
	if allocated.IsZero() {
		if spent.IsPositive() {
			return OverBudgetNoAllocationSentinel
		}
		return 0
	}

	return roundPercentage(spent, allocated)
}

// roundPercentage returns round(part/whole*100), with zero whole guarded.
func roundPercentage(part, whole decimal.Decimal) int64 {
	if whole.IsZero() {
		return 0
	}

	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
