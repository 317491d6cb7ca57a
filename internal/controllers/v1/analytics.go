package v1

import (
	"net/http"

	"github.com/flexfin/backend/internal/calc"
	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterAnalyticsRoutes registers the routes for spending analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/daily", OptionsAnalytics)
	r.GET("/daily", GetDailySpending)

	r.OPTIONS("/momentum", OptionsAnalytics)
	r.GET("/momentum", GetMomentum)

	r.OPTIONS("/weekdays", OptionsAnalytics)
	r.GET("/weekdays", GetWeekdays)

	r.OPTIONS("/periods", OptionsAnalytics)
	r.GET("/periods", GetPeriods)
}

type DailySpendingResponse struct {
	Data  *calc.DailySeries `json:"data"`                                                 // The daily spending series
	Error *string           `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

type MomentumResponse struct {
	Data  *calc.Momentum `json:"data"`                                                 // The spending momentum
	Error *string        `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

type WeekdayResponse struct {
	Data  []calc.WeekdayBucket `json:"data"`                                                 // Spending per weekday, Sunday first
	Error *string              `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

type PeriodResponse struct {
	Data  []calc.PeriodBucket `json:"data"`                                                 // Spending per month third
	Error *string             `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

// analyticsQuery holds the parameters shared by all analytics endpoints.
type analyticsQuery struct {
	UserID    string `form:"user"`      // Subject of the user
	Reference string `form:"reference"` // Reference date in YYYY-MM-DD format. Defaults to today.
	Month     string `form:"month"`     // Month in YYYY-MM format, where applicable
	Days      int    `form:"days"`      // Window length in days, where applicable
}

func (q analyticsQuery) reference() (types.Date, error) {
	if q.Reference == "" {
		return types.DateOf(timeNow()), nil
	}

	reference, err := types.ParseDate(q.Reference)
	if err != nil {
		return types.Date{}, httputil.ErrInvalidDate
	}

	return reference, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/daily [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Daily spending
// @Description	Returns daily and cumulative spending for a trailing window of days
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	DailySpendingResponse
// @Failure		400			{object}	DailySpendingResponse
// @Failure		500			{object}	DailySpendingResponse
// @Param			user		query	string	true	"Subject of the user"
// @Param			days		query	int		false	"Window length in days. Defaults to 30."
// @Param			reference	query	string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/analytics/daily [get]
func GetDailySpending(c *gin.Context) {
	var query analyticsQuery
	_ = c.Bind(&query)

	if query.UserID == "" {
		s := errUserNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, DailySpendingResponse{Error: &s})
		return
	}

	reference, err := query.reference()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DailySpendingResponse{Error: &s})
		return
	}

	days := query.Days
	if days <= 0 {
		days = 30
	}

	transactions, err := models.TransactionsForRange(models.DB, query.UserID, reference.AddDays(-(days-1)), reference)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailySpendingResponse{Error: &s})
		return
	}

	series := calc.DailySpending(transactions, days, reference)
	c.JSON(http.StatusOK, DailySpendingResponse{Data: &series})
}

// @Summary		Spending momentum
// @Description	Compares the trailing 7 days of spending against the 7 days before them
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	MomentumResponse
// @Failure		400			{object}	MomentumResponse
// @Failure		500			{object}	MomentumResponse
// @Param			user		query	string	true	"Subject of the user"
// @Param			reference	query	string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/analytics/momentum [get]
func GetMomentum(c *gin.Context) {
	var query analyticsQuery
	_ = c.Bind(&query)

	if query.UserID == "" {
		s := errUserNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MomentumResponse{Error: &s})
		return
	}

	reference, err := query.reference()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MomentumResponse{Error: &s})
		return
	}

	transactions, err := models.TransactionsForRange(models.DB, query.UserID, reference.AddDays(-14), reference)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MomentumResponse{Error: &s})
		return
	}

	momentum := calc.SpendingMomentum(transactions, reference)
	c.JSON(http.StatusOK, MomentumResponse{Data: &momentum})
}

// @Summary		Weekday spending
// @Description	Returns total, count and average spending per weekday for a month
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	WeekdayResponse
// @Failure		400		{object}	WeekdayResponse
// @Failure		500		{object}	WeekdayResponse
// @Param			user	query	string	true	"Subject of the user"
// @Param			month	query	string	true	"The month in YYYY-MM format"
// @Router			/v1/analytics/weekdays [get]
func GetWeekdays(c *gin.Context) {
	var query analyticsQuery
	_ = c.Bind(&query)

	if query.UserID == "" {
		s := errUserNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, WeekdayResponse{Error: &s})
		return
	}

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, WeekdayResponse{Error: &s})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, WeekdayResponse{Error: &s})
		return
	}

	transactions, err := models.TransactionsForMonth(models.DB, query.UserID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeekdayResponse{Error: &s})
		return
	}

	buckets := calc.WeekdayBuckets(transactions)
	c.JSON(http.StatusOK, WeekdayResponse{Data: buckets[:]})
}

// @Summary		Period spending
// @Description	Returns spending per month third (beginning, middle, end)
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	PeriodResponse
// @Failure		400			{object}	PeriodResponse
// @Failure		500			{object}	PeriodResponse
// @Param			user		query	string	true	"Subject of the user"
// @Param			month		query	string	true	"The month in YYYY-MM format"
// @Param			reference	query	string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/analytics/periods [get]
func GetPeriods(c *gin.Context) {
	var query analyticsQuery
	_ = c.Bind(&query)

	if query.UserID == "" {
		s := errUserNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, PeriodResponse{Error: &s})
		return
	}

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, PeriodResponse{Error: &s})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, PeriodResponse{Error: &s})
		return
	}

	reference, err := query.reference()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PeriodResponse{Error: &s})
		return
	}

	transactions, err := models.TransactionsForMonth(models.DB, query.UserID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{Error: &s})
		return
	}

	buckets := calc.PeriodBuckets(transactions, month, reference)
	c.JSON(http.StatusOK, PeriodResponse{Data: buckets[:]})
}
