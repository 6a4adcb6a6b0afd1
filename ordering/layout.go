package ordering

import (
	"fmt"

	"material-issue-sheet/models"
)

const (
	// SheetName is the name of the single worksheet in the exported workbook
	SheetName = "Request"
	// SheetTitle is printed in the merged first row
	SheetTitle = "BROADBAND MATERIAL ISSUE SHEET"

	sheetColumns = 7
	headerRows   = 6

	displayDateLayout = "1/2/2006"
	fileDateLayout    = "2006-01-02"
)

var columnWidths = []float64{10, 35, 8, 5, 10, 35, 8}

// QuantityLookup is the read side of the cart ledger
type QuantityLookup interface {
	Quantity(itemName string) int
}

// BuildOrderSheet lays the catalog out in two side-by-side columns split at the
// midpoint of load order, with the ordered quantity next to each item. It performs
// no validation; see ValidateExport.
func BuildOrderSheet(items []models.CatalogItem, ledger QuantityLookup, header models.OrderSheetHeader) *models.OrderSheet {
	midpoint := (len(items) + 1) / 2
	left := items[:midpoint]
	right := items[midpoint:]

	rows := make([][]any, 0, headerRows+midpoint)
	rows = append(rows,
		[]any{SheetTitle},
		[]any{},
		[]any{"FROM WAREHOUSE:", header.FromWarehouse, "", "ISSUED BY:", header.IssuedBy, "DATE:", DisplayDate(header)},
		[]any{"TO WAREHOUSE:", header.ToWarehouse, "", "RECEIVED BY:", header.ReceivedBy, "", ""},
		[]any{},
		[]any{"ITEM #", "DESCRIPTION", "QTY", "", "ITEM #", "DESCRIPTION", "QTY"},
	)

	// left is never shorter than right
	for i := 0; i < len(left); i++ {
		l := left[i]
		var r models.CatalogItem
		if i < len(right) {
			r = right[i]
		}
		rows = append(rows, []any{
			l.ID, l.Name, quantityCell(ledger, l.Name), "",
			r.ID, r.Name, quantityCell(ledger, r.Name),
		})
	}

	title := models.CellRange{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: sheetColumns - 1}
	widths := make([]float64, len(columnWidths))
	copy(widths, columnWidths)

	return &models.OrderSheet{
		SheetName:    SheetName,
		FileBaseName: FileBaseName(header),
		Rows:         rows,
		Merges:       []models.CellRange{title},
		CenteredCell: &models.CellRange{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 0},
		ColumnWidths: widths,
		HeaderRows:   headerRows,
	}
}

// quantityCell is the ordered quantity, or a blank rather than 0 when nothing is ordered
func quantityCell(ledger QuantityLookup, itemName string) any {
	if qty := ledger.Quantity(itemName); qty > 0 {
		return qty
	}
	return ""
}

// DisplayDate formats the header date the way it is printed in the DATE cell
func DisplayDate(header models.OrderSheetHeader) string {
	if header.Date.IsZero() {
		return ""
	}
	return header.Date.Format(displayDateLayout)
}

// FileBaseName is the artifact name without extension
func FileBaseName(header models.OrderSheetHeader) string {
	return fmt.Sprintf("%s %s broadband order request", header.Date.Format(fileDateLayout), header.ToWarehouse)
}
