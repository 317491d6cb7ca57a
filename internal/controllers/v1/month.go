package v1

import (
	"net/http"

	"github.com/flexfin/backend/internal/calc"
	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for the month overview with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:user/:month", OptionsMonth)
	r.GET("/:user/:month", GetMonth)
}

// MonthOverview is the fully computed state of one budget month.
type MonthOverview struct {
	Month          types.Month             `json:"month" example:"2024-05"` // The month the overview is for
	Budget         *Budget                 `json:"budget"`                  // The budget, nil when none exists for the month
	Categories     []calc.CategorySpending `json:"categories"`              // Per-category spending including the unallocated pseudo-category
	Orphaned       OrphanedSpending        `json:"orphaned"`                // Spending that lost its category attribution
	Flexibility    calc.Flexibility        `json:"flexibility"`             // Allocated vs unallocated income
	Stats          calc.DashboardStats     `json:"stats"`                   // Aggregate dashboard figures
	Health         calc.Health             `json:"health"`                  // Overall budget health
	CategoryHealth []CategoryHealth        `json:"categoryHealth"`          // Health per category
	Velocity       calc.Velocity           `json:"velocity"`                // Spending pace and projection
}

// OrphanedSpending describes transactions whose category no longer exists.
type OrphanedSpending struct {
	Amount decimal.Decimal `json:"amount" example:"50"` // Total amount without category attribution
	Count  int             `json:"count" example:"1"`   // Number of orphaned transactions
}

// CategoryHealth is the health band of a single category.
type CategoryHealth struct {
	CategoryID uuid.UUID   `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	Name       string      `json:"name" example:"Groceries"`                                  // Name of the category
	Health     calc.Health `json:"health"`                                                    // The computed health
}

type MonthResponse struct {
	Data  *MonthOverview `json:"data"`                                                          // The overview for the month
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/{user}/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month overview
// @Description	Returns the computed overview of a budget month: per-category spending, flexibility, dashboard statistics, health and velocity
// @Tags			Months
// @Produce		json
// @Success		200			{object}	MonthResponse
// @Failure		400			{object}	MonthResponse
// @Failure		500			{object}	MonthResponse
// @Param			user		path	string	true	"Subject of the user"
// @Param			month		path	string	true	"The month in YYYY-MM format"
// @Param			reference	query	string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/months/{user}/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIUserMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	reference, err := referenceDate(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	budget, err := models.BudgetForMonth(models.DB, uri.UserID, uri.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	transactions, err := models.TransactionsForMonth(models.DB, uri.UserID, uri.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	overview := newMonthOverview(c, budget, transactions, uri.Month, reference)
	c.JSON(http.StatusOK, MonthResponse{Data: &overview})
}

// newMonthOverview assembles the overview from its calculators.
func newMonthOverview(c *gin.Context, budget *models.Budget, transactions []models.Transaction, month types.Month, reference types.Date) MonthOverview {
	overview := MonthOverview{
		Month:          month,
		Categories:     []calc.CategorySpending{},
		CategoryHealth: []CategoryHealth{},
	}

	daysInMonth := month.Days()
	dayOfMonth := elapsedDays(month, reference)

	if budget == nil {
		overview.Stats = calc.Dashboard(nil, transactions, nil)
		overview.Health = calc.BudgetHealth(decimal.Zero, overview.Stats.TotalSpent, dayOfMonth, daysInMonth)
		overview.Velocity = calc.SpendingVelocity(overview.Stats.TotalSpent, decimal.Zero, dayOfMonth, daysInMonth)
		return overview
	}

	resource := newBudget(c, *budget)
	overview.Budget = &resource

	breakdown := calc.CategoryBreakdown(*budget, transactions)
	overview.Categories = breakdown.WithUnallocated(budget.MonthlyIncome)
	overview.Orphaned = OrphanedSpending{
		Amount: breakdown.OrphanedAmount,
		Count:  breakdown.OrphanedCount,
	}
	overview.Flexibility = calc.BudgetFlexibility(*budget)
	overview.Stats = calc.Dashboard(budget, transactions, breakdown.Categories)
	overview.Health = calc.BudgetHealth(budget.MonthlyIncome, overview.Stats.TotalSpent, dayOfMonth, daysInMonth)
	overview.Velocity = calc.SpendingVelocity(overview.Stats.TotalSpent, budget.MonthlyIncome, dayOfMonth, daysInMonth)

	for _, spending := range breakdown.Categories {
		overview.CategoryHealth = append(overview.CategoryHealth, CategoryHealth{
			CategoryID: spending.CategoryID,
			Name:       spending.Name,
			Health:     calc.CategoryHealth(spending.Allocated, spending.Spent, dayOfMonth, daysInMonth),
		})
	}

	return overview
}

// referenceDate reads the reference date from the query, defaulting to
// today in the server's local calendar.
func referenceDate(c *gin.Context) (types.Date, error) {
	raw, ok := c.GetQuery("reference")
	if !ok {
		return types.DateOf(timeNow()), nil
	}

	reference, err := types.ParseDate(raw)
	if err != nil {
		return types.Date{}, httputil.ErrInvalidDate
	}

	return reference, nil
}

// elapsedDays returns how many days of the month have elapsed at the
// reference date: the day of the month while the reference is inside it,
// the full month once it is over and zero before it starts.
func elapsedDays(month types.Month, reference types.Date) int {
	if month.ContainsDate(reference) {
		return reference.Day()
	}

	if reference.After(month.Last()) {
		return month.Days()
	}

	return 0
}
