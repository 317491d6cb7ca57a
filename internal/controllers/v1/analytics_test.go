package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/flexfin/backend/internal/controllers/v1"
	"github.com/flexfin/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDailySpending() {
	user := uuid.NewString()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(30), Date: date(2024, 5, 15)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(10), Date: date(2024, 5, 14)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(99), Date: date(2024, 5, 1)}) // outside the window

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/daily?user=%s&days=7&reference=2024-05-15", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DailySpendingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	require.Len(suite.T(), response.Data.Labels, 7)
	assert.Equal(suite.T(), "2024-05-09", response.Data.Labels[0])
	assert.Equal(suite.T(), "2024-05-15", response.Data.Labels[6])
	assert.True(suite.T(), response.Data.Daily[5].Equal(decimal.NewFromInt(10)))
	assert.True(suite.T(), response.Data.Daily[6].Equal(decimal.NewFromInt(30)))
	assert.True(suite.T(), response.Data.Cumulative[6].Equal(decimal.NewFromInt(40)))
}

func (suite *TestSuiteStandard) TestMomentum() {
	user := uuid.NewString()

	// Recent week, inclusive of the reference day
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(320), Date: date(2024, 5, 15)})
	// Previous week
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(250), Date: date(2024, 5, 3)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/momentum?user=%s&reference=2024-05-15", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MomentumResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.RecentSpending.Equal(decimal.NewFromInt(320)))
	assert.True(suite.T(), response.Data.PreviousSpending.Equal(decimal.NewFromInt(250)))
	assert.True(suite.T(), response.Data.PercentChange.Equal(decimal.NewFromInt(28)))
}

func (suite *TestSuiteStandard) TestWeekdays() {
	user := uuid.NewString()

	// 2024-05-04 and 2024-05-11 are Saturdays
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(40), Date: date(2024, 5, 4)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(20), Date: date(2024, 5, 11)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/weekdays?user=%s&month=2024-05", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WeekdayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 7)

	saturday := response.Data[6]
	assert.Equal(suite.T(), "Saturday", saturday.Label)
	assert.Equal(suite.T(), 2, saturday.Count)
	assert.True(suite.T(), saturday.Total.Equal(decimal.NewFromInt(60)))
	assert.True(suite.T(), saturday.Average.Equal(decimal.NewFromInt(30)))
}

func (suite *TestSuiteStandard) TestPeriods() {
	user := uuid.NewString()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(100), Date: date(2024, 5, 2)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(200), Date: date(2024, 5, 15)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Amount: decimal.NewFromInt(300), Date: date(2024, 5, 28)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/periods?user=%s&month=2024-05&reference=2024-05-15", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	assert.Equal(suite.T(), "1-10", response.Data[0].Label)
	assert.True(suite.T(), response.Data[0].Total.Equal(decimal.NewFromInt(100)))
	assert.False(suite.T(), response.Data[0].IsCurrentPeriod)

	assert.Equal(suite.T(), "11-20", response.Data[1].Label)
	assert.True(suite.T(), response.Data[1].Total.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), response.Data[1].IsCurrentPeriod)

	assert.Equal(suite.T(), "21-31", response.Data[2].Label)
	assert.True(suite.T(), response.Data[2].Total.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestAnalyticsParameterValidation() {
	tests := []struct {
		name string
		url  string
	}{
		{"daily without user", "http://example.com/v1/analytics/daily"},
		{"daily with invalid reference", fmt.Sprintf("http://example.com/v1/analytics/daily?user=%s&reference=yesterday", uuid.New())},
		{"momentum without user", "http://example.com/v1/analytics/momentum"},
		{"weekdays without month", fmt.Sprintf("http://example.com/v1/analytics/weekdays?user=%s", uuid.New())},
		{"weekdays with invalid month", fmt.Sprintf("http://example.com/v1/analytics/weekdays?user=%s&month=May", uuid.New())},
		{"periods without month", fmt.Sprintf("http://example.com/v1/analytics/periods?user=%s", uuid.New())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
