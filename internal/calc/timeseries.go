package calc

import (
	"fmt"
	"time"

	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DailySeries is the per-day spending over a lookback window, ready for
// charting. All three slices have one entry per day, oldest first.
type DailySeries struct {
	Labels     []string          `json:"labels"`     // Date keys in YYYY-MM-DD form
	Daily      []decimal.Decimal `json:"daily"`      // Amount spent on each day
	Cumulative []decimal.Decimal `json:"cumulative"` // Running total over the window
}

// DailySpending buckets transaction amounts into one bucket per calendar day
// over the window ending at the reference date.
//
// Bucket and transaction dates are joined on their local calendar-day keys,
// so a late-evening transaction never slips into the neighboring bucket the
// way UTC-shifted instants would.
func DailySpending(transactions []models.Transaction, windowDays int, reference types.Date) DailySeries {
	if windowDays <= 0 {
		return DailySeries{
			Labels:     []string{},
			Daily:      []decimal.Decimal{},
			Cumulative: []decimal.Decimal{},
		}
	}

	start := reference.AddDays(-(windowDays - 1))

	series := DailySeries{
		Labels:     make([]string, windowDays),
		Daily:      make([]decimal.Decimal, windowDays),
		Cumulative: make([]decimal.Decimal, windowDays),
	}

	index := make(map[string]int, windowDays)
	for i := range windowDays {
		key := start.AddDays(i).String()
		series.Labels[i] = key
		series.Daily[i] = decimal.Zero
		index[key] = i
	}

	for _, transaction := range transactions {
		if i, ok := index[transaction.Date.String()]; ok {
			series.Daily[i] = series.Daily[i].Add(transaction.Amount)
		}
	}

	running := decimal.Zero
	for i := range series.Daily {
		running = running.Add(series.Daily[i])
		series.Cumulative[i] = running
	}

	return series
}

// Momentum compares the last seven days of spending with the seven days
// before them.
type Momentum struct {
	RecentSpending   decimal.Decimal `json:"recentSpending" example:"320"`   // Spending in the week up to and including the reference date
	PreviousSpending decimal.Decimal `json:"previousSpending" example:"250"` // Spending in the week before that
	PercentChange    decimal.Decimal `json:"percentChange" example:"28"`     // Week-over-week change in percent
}

// SpendingMomentum computes the week-over-week spending delta.
//
// The recent window is the inclusive range [reference-7, reference]; the
// boundary day belongs to the recent window, not the previous one.
func SpendingMomentum(transactions []models.Transaction, reference types.Date) Momentum {
	recentFrom := reference.AddDays(-7)
	previousFrom := reference.AddDays(-14)

	momentum := Momentum{
		RecentSpending:   decimal.Zero,
		PreviousSpending: decimal.Zero,
		PercentChange:    decimal.Zero,
	}

	for _, transaction := range transactions {
		switch {
		case transaction.Date.Between(recentFrom, reference):
			momentum.RecentSpending = momentum.RecentSpending.Add(transaction.Amount)
		case transaction.Date.Between(previousFrom, recentFrom.AddDays(-1)):
			momentum.PreviousSpending = momentum.PreviousSpending.Add(transaction.Amount)
		}
	}

	if momentum.PreviousSpending.IsPositive() {
		momentum.PercentChange = momentum.RecentSpending.
			Sub(momentum.PreviousSpending).
			Div(momentum.PreviousSpending).
			Mul(decimal.NewFromInt(100))
	}

	return momentum
}

// WeekdayBucket aggregates spending for one day of the week.
type WeekdayBucket struct {
	Weekday time.Weekday    `json:"weekday" swaggertype:"primitive,integer" example:"0"` // Day of the week, Sunday is 0
	Label   string          `json:"label" example:"Sunday"`                              // Name of the weekday
	Total   decimal.Decimal `json:"total" example:"120"`                                 // Total amount spent on this weekday
	Count   int             `json:"count" example:"4"`                                   // Number of transactions on this weekday
	Average decimal.Decimal `json:"average" example:"30"`                                // Average transaction amount on this weekday
}

// WeekdayBuckets groups transactions by their local day of the week,
// Sunday through Saturday.
func WeekdayBuckets(transactions []models.Transaction) [7]WeekdayBucket {
	var buckets [7]WeekdayBucket

	for i := range buckets {
		buckets[i] = WeekdayBucket{
			Weekday: time.Weekday(i),
			Label:   time.Weekday(i).String(),
			Total:   decimal.Zero,
			Average: decimal.Zero,
		}
	}

	for _, transaction := range transactions {
		i := int(transaction.Date.Weekday())
		buckets[i].Total = buckets[i].Total.Add(transaction.Amount)
		buckets[i].Count++
	}

	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].Average = buckets[i].Total.Div(decimal.NewFromInt(int64(buckets[i].Count)))
		}
	}

	return buckets
}

// PeriodBucket aggregates spending for one third of a month.
type PeriodBucket struct {
	Label           string          `json:"label" example:"1-10"` // Day-of-month range of the bucket
	FromDay         int             `json:"fromDay" example:"1"`  // First day of the bucket
	ToDay           int             `json:"toDay" example:"10"`   // Last day of the bucket
	Total           decimal.Decimal `json:"total" example:"430"`  // Total amount spent in the bucket
	Count           int             `json:"count" example:"7"`    // Number of transactions in the bucket
	IsCurrentPeriod bool            `json:"isCurrentPeriod" example:"false"` // True if the reference date falls into this bucket
}

// PeriodBuckets splits a month into three day-of-month ranges and
// aggregates spending per range.
//
// The boundaries are thirds of the month length rounded down, with the
// final bucket absorbing the remainder: a 31-day month splits into 1-10,
// 11-20 and 21-31, a 29-day month into 1-9, 10-18 and 19-29.
func PeriodBuckets(transactions []models.Transaction, month types.Month, reference types.Date) [3]PeriodBucket {
	days := month.Days()
	third := days / 3

	var buckets [3]PeriodBucket
	bounds := [3][2]int{
		{1, third},
		{third + 1, 2 * third},
		{2*third + 1, days},
	}

	for i, b := range bounds {
		buckets[i] = PeriodBucket{
			Label:   fmt.Sprintf("%d-%d", b[0], b[1]),
			FromDay: b[0],
			ToDay:   b[1],
			Total:   decimal.Zero,
		}
	}

	bucketFor := func(day int) int {
		switch {
		case day <= third:
			return 0
		case day <= 2*third:
			return 1
		default:
			return 2
		}
	}

	for _, transaction := range transactions {
		if !month.ContainsDate(transaction.Date) {
			continue
		}

		i := bucketFor(transaction.Date.Day())
		buckets[i].Total = buckets[i].Total.Add(transaction.Amount)
		buckets[i].Count++
	}

	if month.ContainsDate(reference) {
		buckets[bucketFor(reference.Day())].IsCurrentPeriod = true
	}

	return buckets
}
