// Package report renders a day's orders as an Excel workbook.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	OrdersSheet  = "Orders"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	summaryHeader = []interface{}{"Menu", "Category", "Option", "Count", "Members"}
	ordersHeader  = []interface{}{"Member", "Menu", "Category", "Source", "Option", "Ordered At"}
)

// FileName is the download name of the workbook for date.
func FileName(date string) string {
	return fmt.Sprintf("coffee-orders-%s.xlsx", date)
}

// WriteOrders writes the summary and order list of one day to w.
func WriteOrders(w io.Writer, date string, summary []domain.OrderSummary, orders []domain.OrderView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(OrdersSheet); err != nil {
		return fmt.Errorf("failed to add orders sheet: %w", err)
	}

	rows := [][]interface{}{summaryHeader}
	total := 0
	for _, s := range summary {
		rows = append(rows, []interface{}{s.MenuName, s.Category, option(s.PersonalOption), s.Count, strings.Join(s.TeamNames, ", ")})
		total += s.Count
	}
	rows = append(rows, []interface{}{"Total", "", "", total, date})
	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}

	rows = [][]interface{}{ordersHeader}
	for _, o := range orders {
		rows = append(rows, []interface{}{
			o.TeamName,
			o.MenuName,
			o.Category,
			string(o.MenuType),
			option(o.PersonalOption),
			o.CreatedAt.Format("15:04:05"),
		})
	}
	if err := writeRows(f, OrdersSheet, rows); err != nil {
		return err
	}

	if err := f.SetColWidth(SummarySheet, "A", "E", 20); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(OrdersSheet, "A", "F", 18); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func option(opt *string) string {
	if opt == nil {
		return ""
	}
	return *opt
}
