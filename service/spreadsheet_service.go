package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"material-issue-sheet/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SpreadsheetService writes an order sheet as an .xlsx workbook with a single sheet
type SpreadsheetService struct{}

// NewSpreadsheetService creates a new SpreadsheetService
func NewSpreadsheetService() *SpreadsheetService {
	return &SpreadsheetService{}
}

// Ensure SpreadsheetService implements OrderSheetWriter
var _ OrderSheetWriter = (*SpreadsheetService)(nil)

func (s *SpreadsheetService) Extension() string   { return ".xlsx" }
func (s *SpreadsheetService) ContentType() string { return xlsxContentType }

// Write renders the grid, merges, title alignment and column widths into out
func (s *SpreadsheetService) Write(ctx context.Context, sheet *models.OrderSheet, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	name := sheet.SheetName
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, row := range sheet.Rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	for _, m := range sheet.Merges {
		start, end, err := rangeCells(m)
		if err != nil {
			return err
		}
		if err := f.MergeCell(name, start, end); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", start, end, err)
		}
	}

	if sheet.CenteredCell != nil {
		centered, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("failed to create title style: %w", err)
		}
		start, end, err := rangeCells(*sheet.CenteredCell)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, start, end, centered); err != nil {
			return fmt.Errorf("failed to style title: %w", err)
		}
	}

	for i, w := range sheet.ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, w); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// rangeCells converts a zero-based range to A1-style corner cells
func rangeCells(r models.CellRange) (string, string, error) {
	start, err := excelize.CoordinatesToCellName(r.StartCol+1, r.StartRow+1)
	if err != nil {
		return "", "", err
	}
	end, err := excelize.CoordinatesToCellName(r.EndCol+1, r.EndRow+1)
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}
