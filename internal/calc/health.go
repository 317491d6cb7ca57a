package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// HealthStatus is the qualitative band a category or budget falls into.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthWarning   HealthStatus = "warning"
	HealthDanger    HealthStatus = "danger"
)

// Health classifies spending pace relative to the elapsed share of the month.
type Health struct {
	Score   float64      `json:"score" example:"85"`                    // 0 to 100, higher is healthier
	Status  HealthStatus `json:"status" example:"good"`                 // Qualitative band
	Message string       `json:"message" example:"On track"`            // Human-readable classification
}

// Scoring thresholds. These are product decisions shared with the clients:
// changing them changes what users are told about their budget, so they are
// fixed here rather than derived.
const (
	paceTolerance         = 1.2 // spending is "too fast" above 120% of the expected pace
	underUseThreshold     = 0.5 // spending is "under-utilizing" below 50% of the expected pace
	underUseMinimumElapse = 0.5 // but only once half the month has passed
)

// CategoryHealth scores a single category's spending pace.
//
// The score rubric is deterministic and shared bit-for-bit with the clients:
//   - over budget: danger, 100 - (utilization-1)*200, floored at 0
//   - above 120% of pace: warning, 100 - (spent/expected - 1)*100, floored at 20
//   - below 50% of pace after mid-month: good, 100 - (0.5 - spent/expected)*80, floored at 60
//   - otherwise: excellent, 100
func CategoryHealth(allocated, spent decimal.Decimal, dayOfMonth, daysInMonth int) Health {
	if allocated.IsZero() {
		if spent.IsPositive() {
			return Health{Score: 0, Status: HealthDanger, Message: "Spending without an allocation"}
		}
		return Health{Score: 100, Status: HealthExcellent, Message: "Nothing allocated, nothing spent"}
	}

	alloc := allocated.InexactFloat64()
	used := spent.InexactFloat64()

	var expected, timeProgress float64
	if daysInMonth > 0 {
		expected = alloc * float64(dayOfMonth) / float64(daysInMonth)
		timeProgress = float64(dayOfMonth) / float64(daysInMonth)
	}

	utilization := used / alloc

	switch {
	case utilization > 1:
		return Health{
			Score:   math.Max(0, 100-(utilization-1)*200),
			Status:  HealthDanger,
			Message: "Over budget",
		}

	case used > expected*paceTolerance:
		score := 20.0
		if expected > 0 {
			score = math.Max(20, 100-(used/expected-1)*100)
		}
		return Health{
			Score:   score,
			Status:  HealthWarning,
			Message: "Spending faster than the month is passing",
		}

	case used < expected*underUseThreshold && timeProgress > underUseMinimumElapse:
		return Health{
			Score:   math.Max(60, 100-(underUseThreshold-used/expected)*80),
			Status:  HealthGood,
			Message: "Well under the expected pace",
		}

	default:
		return Health{Score: 100, Status: HealthExcellent, Message: "On track"}
	}
}

// BudgetHealth scores the whole budget by applying the category rubric to
// the monthly income and the total spend.
func BudgetHealth(monthlyIncome, totalSpent decimal.Decimal, dayOfMonth, daysInMonth int) Health {
	return CategoryHealth(monthlyIncome, totalSpent, dayOfMonth, daysInMonth)
}
