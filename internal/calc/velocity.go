package calc

import (
	"github.com/shopspring/decimal"
)

// Velocity relates the actual spend to the time-prorated expected spend and
// projects the month-end total from the current pace.
type Velocity struct {
	ExpectedSpentByNow decimal.Decimal `json:"expectedSpentByNow" example:"2500"` // Income prorated by the elapsed share of the month
	IsAheadOfPace      bool            `json:"isAheadOfPace" example:"false"`     // True if more was spent than the prorated expectation
	ProjectedMonthEnd  decimal.Decimal `json:"projectedMonthEnd" example:"4400"`  // Current spend extrapolated to the full month
	VelocityRatio      float64         `json:"velocityRatio" example:"0.88"`      // Actual spend divided by expected spend
}

// SpendingVelocity computes the spending pace for a month in progress.
//
// On day zero, or with zero income, the expected spend is zero; the velocity
// ratio is then reported as 1.0 ("on pace") instead of dividing by zero, and
// the projection stays at zero until a day has elapsed.
func SpendingVelocity(totalSpentMonthToDate, monthlyIncome decimal.Decimal, dayOfMonth, daysInMonth int) Velocity {
	velocity := Velocity{
		ExpectedSpentByNow: decimal.Zero,
		ProjectedMonthEnd:  decimal.Zero,
		VelocityRatio:      1.0,
	}

	if daysInMonth <= 0 {
		velocity.IsAheadOfPace = totalSpentMonthToDate.IsPositive()
		return velocity
	}

	days := decimal.NewFromInt(int64(daysInMonth))
	day := decimal.NewFromInt(int64(dayOfMonth))

	velocity.ExpectedSpentByNow = monthlyIncome.Mul(day).Div(days)
	velocity.IsAheadOfPace = totalSpentMonthToDate.GreaterThan(velocity.ExpectedSpentByNow)

	if velocity.ExpectedSpentByNow.IsPositive() {
		ratio, _ := totalSpentMonthToDate.Div(velocity.ExpectedSpentByNow).Float64()
		velocity.VelocityRatio = ratio
	}

	if dayOfMonth > 0 {
		velocity.ProjectedMonthEnd = totalSpentMonthToDate.Div(day).Mul(days)
	}

	return velocity
}
