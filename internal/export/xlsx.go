// Package export renders report workbooks with excelize.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"schoolledger/internal/models"
	"schoolledger/internal/reports"
)

const (
	incomeSheet  = "Income"
	expenseSheet = "Expenses"
	dateLayout   = "2006-01-02 15:04:05"
)

// Workbook builds an xlsx report with one sheet per ledger. Entity
// references are resolved to display names; the last row of each sheet
// totals the listed transactions.
func Workbook(income []models.IncomeTransaction, expenses []models.ExpenseTransaction, res reports.Resolver) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", incomeSheet)
	if _, err := f.NewSheet(expenseSheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeIncomeSheet(f, income, res, headerStyle, totalStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeExpenseSheet(f, expenses, res, headerStyle, totalStyle); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeIncomeSheet(f *excelize.File, txs []models.IncomeTransaction, res reports.Resolver, headerStyle, totalStyle int) error {
	headers := []string{"Date", "Parent", "Students", "Items", "Total", "Status", "Logged By"}
	if err := writeHeader(f, incomeSheet, headers, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(incomeSheet, "A", "A", 20)
	f.SetColWidth(incomeSheet, "B", "D", 30)
	f.SetColWidth(incomeSheet, "E", "G", 14)

	var total float64
	for i, tx := range txs {
		row := i + 2
		itemNames := make([]string, len(tx.Items))
		for j, item := range tx.Items {
			itemNames[j] = item.Name
		}
		cells := []any{
			tx.Date.Format(dateLayout),
			res.ParentName(tx.ParentID),
			joinNames(res.StudentNames(tx.StudentIDs)),
			joinNames(itemNames),
			tx.Total,
			string(tx.Status),
			tx.LoggedUser,
		}
		if err := writeRow(f, incomeSheet, row, cells); err != nil {
			return err
		}
		total += tx.Total
	}
	return writeTotalRow(f, incomeSheet, len(txs)+2, len(headers), total, len(txs), totalStyle)
}

func writeExpenseSheet(f *excelize.File, txs []models.ExpenseTransaction, res reports.Resolver, headerStyle, totalStyle int) error {
	headers := []string{"Date", "Items", "Cost Centers", "Description", "Total", "Logged By"}
	if err := writeHeader(f, expenseSheet, headers, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(expenseSheet, "A", "A", 20)
	f.SetColWidth(expenseSheet, "B", "D", 30)
	f.SetColWidth(expenseSheet, "E", "F", 14)

	var total float64
	for i, tx := range txs {
		row := i + 2
		itemNames := make([]string, len(tx.Items))
		centers := make([]string, len(tx.Items))
		for j, item := range tx.Items {
			itemNames[j] = item.Name
			centers[j] = res.CostCenterName(item.CostCenterID)
		}
		cells := []any{
			tx.Date.Format(dateLayout),
			joinNames(itemNames),
			joinNames(centers),
			tx.Description,
			tx.Total,
			tx.LoggedUser,
		}
		if err := writeRow(f, expenseSheet, row, cells); err != nil {
			return err
		}
		total += tx.Total
	}
	return writeTotalRow(f, expenseSheet, len(txs)+2, len(headers), total, len(txs), totalStyle)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for i, value := range cells {
		cell := fmt.Sprintf("%c%d", 'A'+i, row)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func writeTotalRow(f *excelize.File, sheet string, row, cols int, total float64, count int, style int) error {
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%d transaction(s)", count)); err != nil {
		return err
	}
	totalCol := 'E' // Total column in both sheets
	if err := f.SetCellValue(sheet, fmt.Sprintf("%c%d", totalCol, row), total); err != nil {
		return err
	}
	last := fmt.Sprintf("%c%d", 'A'+cols-1, row)
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), last, style)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
