package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yogahom/studio-api/internal/model"
)

const exportSheet = "Package Sales"

// ExportPackageSales renders the package sales report as an xlsx workbook.
func (s *Service) ExportPackageSales(ctx context.Context, startDate, endDate string) (*bytes.Buffer, error) {
	report, err := s.PackageSales(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return renderPackageSales(report)
}

func renderPackageSales(report *model.PackageSalesReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Package ID", "Package Name", "Sales", "Revenue", "Customers"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}
	f.SetCellStyle(exportSheet, "A1", "E1", headerStyle)
	f.SetColWidth(exportSheet, "B", "B", 28)
	f.SetColWidth(exportSheet, "E", "E", 48)

	row := 2
	for _, entry := range report.Packages {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), entry.PackageID)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), entry.PackageName)
		f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), entry.TotalSales)
		f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), entry.TotalRevenue)
		f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), strings.Join(entry.Customers, ", "))
		row++
	}

	row++
	f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), "Total")
	f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), report.TotalSales)
	f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), report.TotalRevenue)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
