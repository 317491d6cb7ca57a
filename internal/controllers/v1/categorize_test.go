package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/flexfin/backend/internal/categorize"
	v1 "github.com/flexfin/backend/internal/controllers/v1"
	"github.com/flexfin/backend/internal/types"
	"github.com/flexfin/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// categorizeStub runs a stub categorization service returning the given
// result and points CATEGORIZE_URL at it for the duration of the test.
func (suite *TestSuiteStandard) categorizeStub(result categorize.Result) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	suite.T().Cleanup(server.Close)

	os.Setenv("CATEGORIZE_URL", server.URL)
	suite.T().Cleanup(func() { os.Unsetenv("CATEGORIZE_URL") })
}

func (suite *TestSuiteStandard) TestCategorize() {
	user := uuid.NewString()

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: user,
		Month:  types.NewMonth(2024, 5),
	})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID: budget.Data.ID,
		Name:     "Food",
	})

	suite.categorizeStub(categorize.Result{
		Amount:            decimal.NewFromFloat(12.5),
		Description:       "Lunch",
		SuggestedCategory: "food",
		Confidence:        0.92,
		Date:              "2024-05-14",
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categorize", v1.CategorizeRequest{
		UserID: user,
		Input:  "12.50 for lunch yesterday",
		Month:  types.NewMonth(2024, 5),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorizeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	suggestion := *response.Data
	assert.True(suite.T(), suggestion.Amount.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(suite.T(), "Lunch", suggestion.Description)
	assert.Equal(suite.T(), "2024-05-14", suggestion.Date.String())
	require.NotNil(suite.T(), suggestion.MatchedCategory)
	assert.Equal(suite.T(), "Food", suggestion.MatchedCategory.Name)
	assert.True(suite.T(), suggestion.IsAutoApplicable)
}

// Low-confidence answers are returned for manual confirmation, never
// marked auto-applicable.
func (suite *TestSuiteStandard) TestCategorizeLowConfidence() {
	user := uuid.NewString()

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: user,
		Month:  types.NewMonth(2024, 5),
	})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID: budget.Data.ID,
		Name:     "Food",
	})

	suite.categorizeStub(categorize.Result{
		Amount:            decimal.NewFromInt(30),
		Description:       "Something",
		SuggestedCategory: "Food",
		Confidence:        0.2,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categorize", v1.CategorizeRequest{
		UserID: user,
		Input:  "30 for something",
		Month:  types.NewMonth(2024, 5),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorizeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.IsAutoApplicable)
}

// A month without a budget still gets a suggestion, just without a
// category match.
func (suite *TestSuiteStandard) TestCategorizeWithoutBudget() {
	suite.categorizeStub(categorize.Result{
		Amount:            decimal.NewFromInt(15),
		Description:       "Cinema",
		SuggestedCategory: "Entertainment",
		Confidence:        0.9,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categorize", v1.CategorizeRequest{
		UserID: uuid.NewString(),
		Input:  "15 for the cinema",
		Month:  types.NewMonth(2024, 5),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorizeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Data.MatchedCategory)
	assert.False(suite.T(), response.Data.IsAutoApplicable)
}

func (suite *TestSuiteStandard) TestCategorizeServiceDown() {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	os.Setenv("CATEGORIZE_URL", server.URL)
	suite.T().Cleanup(func() { os.Unsetenv("CATEGORIZE_URL") })

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categorize", v1.CategorizeRequest{
		UserID: uuid.NewString(),
		Input:  "15 for the cinema",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestCategorizeEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categorize", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
