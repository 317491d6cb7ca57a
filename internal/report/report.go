// Package report renders budget months into downloadable XLSX workbooks.
package report

import (
	"fmt"

	"github.com/flexfin/backend/internal/calc"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// Filename returns the download name for a monthly report.
func Filename(month types.Month) string {
	return fmt.Sprintf("budget-%s.xlsx", month)
}

// Monthly builds an XLSX workbook with a category summary sheet and a
// transaction list sheet for one budget month.
//
// The budget may be nil when no budget exists for the month, in that case
// the summary only carries the aggregate numbers.
func Monthly(budget *models.Budget, transactions []models.Transaction, month types.Month) (*excelize.File, error) {
	var breakdown calc.Breakdown
	if budget != nil {
		breakdown = calc.CategoryBreakdown(*budget, transactions)
	}
	stats := calc.Dashboard(budget, transactions, breakdown.Categories)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	if err := writeSummary(f, budget, stats, breakdown, month, headerStyle, totalStyle); err != nil {
		return nil, err
	}

	if err := writeTransactions(f, transactions, stats, headerStyle, totalStyle); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSummary(f *excelize.File, budget *models.Budget, stats calc.DashboardStats, breakdown calc.Breakdown, month types.Month, headerStyle, totalStyle int) error {
	_ = f.SetColWidth(summarySheet, "A", "A", 24)
	_ = f.SetColWidth(summarySheet, "B", "E", 16)

	_ = f.SetCellValue(summarySheet, "A1", fmt.Sprintf("Budget %s", month))
	_ = f.SetCellStyle(summarySheet, "A1", "A1", totalStyle)

	facts := [][2]any{
		{"Monthly Income", stats.TotalBudget.InexactFloat64()},
		{"Total Spent", stats.TotalSpent.InexactFloat64()},
		{"Remaining", stats.RemainingBudget.InexactFloat64()},
		{"Transactions", stats.TransactionCount},
		{"Categories Over Budget", stats.CategoriesOverBudget},
	}
	for i, fact := range facts {
		row := i + 2
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), fact[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), fact[1])
	}

	if budget != nil {
		flexibility := calc.BudgetFlexibility(*budget)
		_ = f.SetCellValue(summarySheet, "A7", "Allocated")
		_ = f.SetCellValue(summarySheet, "B7", flexibility.TotalAllocated.InexactFloat64())
		_ = f.SetCellValue(summarySheet, "A8", "Unallocated")
		_ = f.SetCellValue(summarySheet, "B8", flexibility.UnallocatedAmount.InexactFloat64())
	}

	headerRow := 9
	headers := []string{"Category", "Allocated", "Spent", "Remaining", "Used %"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c%d", 'A'+i, headerRow)
		_ = f.SetCellValue(summarySheet, cell, header)
		_ = f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}

	for i, category := range breakdown.Categories {
		row := headerRow + 1 + i
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), category.Name)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), category.Allocated.InexactFloat64())
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), category.Spent.InexactFloat64())
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), category.Remaining.InexactFloat64())
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), category.PercentageUsed)
	}

	return nil
}

func writeTransactions(f *excelize.File, transactions []models.Transaction, stats calc.DashboardStats, headerStyle, totalStyle int) error {
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return err
	}

	_ = f.SetColWidth(transactionsSheet, "A", "A", 12)
	_ = f.SetColWidth(transactionsSheet, "B", "B", 40)
	_ = f.SetColWidth(transactionsSheet, "C", "D", 16)

	headers := []string{"Date", "Description", "Category", "Amount"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		_ = f.SetCellValue(transactionsSheet, cell, header)
		_ = f.SetCellStyle(transactionsSheet, cell, cell, headerStyle)
	}

	for i, transaction := range transactions {
		row := i + 2
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("A%d", row), transaction.Date.String())
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("B%d", row), transaction.Description)
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("C%d", row), transaction.CategoryName)
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("D%d", row), transaction.Amount.InexactFloat64())
	}

	totalRow := len(transactions) + 2
	_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("A%d", totalRow), "Total")
	_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("D%d", totalRow), stats.TotalSpent.InexactFloat64())
	_ = f.SetCellStyle(transactionsSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("D%d", totalRow), totalStyle)

	return nil
}
