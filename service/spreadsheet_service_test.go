package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"material-issue-sheet/models"
	"material-issue-sheet/ordering"
)

func scenarioSheet() *models.OrderSheet {
	catalog := []models.CatalogItem{
		{ID: "A1", Name: "Widget"},
		{ID: "B1", Name: "Gadget"},
		{ID: "C1", Name: "Gizmo"},
	}
	ledger := ordering.NewCartLedger()
	ledger.Adjust("Widget", 2)
	ledger.Adjust("Gizmo", 1)

	return ordering.BuildOrderSheet(catalog, ledger, models.OrderSheetHeader{
		FromWarehouse: "Main",
		ToWarehouse:   "Truck 12",
		IssuedBy:      "Dana",
		ReceivedBy:    "Lee",
		Date:          time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	})
}

func TestSpreadsheetService_Write(t *testing.T) {
	var buf bytes.Buffer
	svc := NewSpreadsheetService()

	require.NoError(t, svc.Write(context.Background(), scenarioSheet(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Request"}, f.GetSheetList())

	rows, err := f.GetRows("Request")
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"BROADBAND MATERIAL ISSUE SHEET"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, []string{"FROM WAREHOUSE:", "Main", "", "ISSUED BY:", "Dana", "DATE:", "10/16/2026"}, rows[2])
	assert.Equal(t, []string{"ITEM #", "DESCRIPTION", "QTY", "", "ITEM #", "DESCRIPTION", "QTY"}, rows[5])
	assert.Equal(t, []string{"A1", "Widget", "2", "", "C1", "Gizmo", "1"}, rows[6])
	assert.Equal(t, []string{"B1", "Gadget"}, rows[7])

	qtyType, err := f.GetCellType("Request", "C7")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, qtyType)

	merges, err := f.GetMergeCells("Request")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "A1", merges[0].GetStartAxis())
	assert.Equal(t, "G1", merges[0].GetEndAxis())

	width, err := f.GetColWidth("Request", "B")
	require.NoError(t, err)
	assert.Equal(t, 35.0, width)
}

func TestSpreadsheetService_Metadata(t *testing.T) {
	svc := NewSpreadsheetService()
	assert.Equal(t, ".xlsx", svc.Extension())
	assert.Contains(t, svc.ContentType(), "spreadsheetml")
}
