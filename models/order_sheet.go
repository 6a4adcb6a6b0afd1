package models

import "time"

// OrderSheetHeader holds the metadata printed above the item grid
type OrderSheetHeader struct {
	FromWarehouse string
	ToWarehouse   string // Destination warehouse or truck number
	IssuedBy      string
	ReceivedBy    string
	Date          time.Time
}

// CellRange is an inclusive, zero-based rectangle of cells to merge
type CellRange struct {
	StartRow int `json:"startRow"`
	StartCol int `json:"startCol"`
	EndRow   int `json:"endRow"`
	EndCol   int `json:"endCol"`
}

// OrderSheet is the fixed-shape grid handed to an export sink.
// Cells are strings except quantity cells, which hold an int when the item is ordered.
type OrderSheet struct {
	SheetName    string      `json:"sheetName"`
	FileBaseName string      `json:"fileBaseName"` // Without extension; each sink appends its own
	Rows         [][]any     `json:"rows"`
	Merges       []CellRange `json:"merges"`
	CenteredCell *CellRange  `json:"centeredCell,omitempty"`
	ColumnWidths []float64   `json:"columnWidths"`
	HeaderRows   int         `json:"headerRows"` // Number of fixed rows preceding the item rows
}

// DataRows returns the item rows below the fixed header block
func (s *OrderSheet) DataRows() [][]any {
	if s.HeaderRows >= len(s.Rows) {
		return nil
	}
	return s.Rows[s.HeaderRows:]
}

// OrderSheetRequest represents the request body for exporting or previewing an order sheet
// Example: {"fromWarehouse": "Main", "toWarehouse": "Truck 12", "issuedBy": "Dana", "receivedBy": "Lee", "date": "2026-10-16", "confirmMissingIssuer": false}
// date is optional (YYYY-MM-DD) and defaults to today
type OrderSheetRequest struct {
	FromWarehouse        string `json:"fromWarehouse" validate:"max=120"`
	ToWarehouse          string `json:"toWarehouse" validate:"max=120"`
	IssuedBy             string `json:"issuedBy" validate:"max=120"`
	ReceivedBy           string `json:"receivedBy" validate:"max=120"`
	Date                 string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ConfirmMissingIssuer bool   `json:"confirmMissingIssuer"`
}

// ExportErrorResponse is returned when an export is rejected before layout
// Example: {"error": "destination is required", "field": "toWarehouse"}
type ExportErrorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Prompt string `json:"prompt,omitempty"` // Confirmation question the user must answer to proceed
}
