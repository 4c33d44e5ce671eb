// Package export renders order history as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"pharma_express/internal/domain/entities"
)

func statusLabel(s entities.OrderStatus) string {
	switch s {
	case entities.OrderStatusInProgress:
		return "In progress"
	case entities.OrderStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func medicineNames(o entities.Order) string {
	if len(o.Medicines) == 0 {
		return ""
	}
	names := make([]string, 0, len(o.Medicines))
	for _, m := range o.Medicines {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

// BuildHistoryPDF renders a minimal PDF for a user's order history.
func BuildHistoryPDF(userName string, orders []entities.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Order History")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if userName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("User: %s", userName))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Orders: %d", len(orders)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 6, "Order", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "Medicines", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, o := range orders {
		date := ""
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Format("2006-01-02")
		}
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", o.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, statusLabel(o.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", o.TotalCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(80, 6, medicineNames(o), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildHistoryXLSX renders a minimal XLSX for a user's order history.
func BuildHistoryXLSX(userName string, orders []entities.Order) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "history"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "Order History")
	_ = f.SetCellValue(sheet, "A2", "User")
	_ = f.SetCellValue(sheet, "B2", userName)

	_ = f.SetCellValue(sheet, "A4", "Order")
	_ = f.SetCellValue(sheet, "B4", "Date")
	_ = f.SetCellValue(sheet, "C4", "Status")
	_ = f.SetCellValue(sheet, "D4", "Total")
	_ = f.SetCellValue(sheet, "E4", "Medicines")
	for i, o := range orders {
		row := i + 5
		date := ""
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Format("2006-01-02")
		}
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), date)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), statusLabel(o.Status))
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), o.TotalCost)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), medicineNames(o))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
