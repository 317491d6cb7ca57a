package v1_test

import (
	"bytes"
	"fmt"
	"net/http"

	v1 "github.com/flexfin/backend/internal/controllers/v1"
	"github.com/flexfin/backend/internal/types"
	"github.com/flexfin/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExport() {
	user := uuid.NewString()

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID:        user,
		Month:         types.NewMonth(2024, 5),
		MonthlyIncome: decimal.NewFromInt(4000),
	})
	category := createTestCategory(suite.T(), v1.CategoryEditable{
		BudgetID:        budget.Data.ID,
		Name:            "Groceries",
		AllocatedAmount: decimal.NewFromInt(450),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:      user,
		Amount:      decimal.NewFromFloat(23.42),
		Description: "Supermarket",
		CategoryID:  category.Data.ID,
		Date:        date(2024, 5, 12),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/export/%s/2024-05", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "attachment; filename=budget-2024-05.xlsx", r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.NoError(suite.T(), err)
	defer f.Close()

	income, err := f.GetCellValue("Summary", "B2")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "4000", income)

	description, err := f.GetCellValue("Transactions", "B2")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Supermarket", description)
}

// Exporting a month without a budget yields a workbook with the
// transactions only.
func (suite *TestSuiteStandard) TestExportWithoutBudget() {
	user := uuid.NewString()
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{UserID: user, Date: date(2024, 5, 10)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/export/%s/2024-05", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.NoError(suite.T(), err)
	defer f.Close()

	count, err := f.GetCellValue("Summary", "B5")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "1", count)
}

func (suite *TestSuiteStandard) TestExportInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/export/%s/void", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
