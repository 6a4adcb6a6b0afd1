package ordering

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"material-issue-sheet/models"
)

func testHeader() models.OrderSheetHeader {
	return models.OrderSheetHeader{
		FromWarehouse: "Main",
		ToWarehouse:   "Truck 12",
		IssuedBy:      "Dana",
		ReceivedBy:    "Lee",
		Date:          time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildOrderSheet_ThreeItemScenario(t *testing.T) {
	catalog := NewCatalogStore([]models.CatalogItem{
		{ID: "A1", Name: "Widget"},
		{ID: "B1", Name: "Gadget"},
		{ID: "C1", Name: "Gizmo"},
	})
	ledger := NewCartLedger()
	ledger.Adjust("Widget", 2)
	ledger.Adjust("Gizmo", 1)

	sheet := BuildOrderSheet(catalog.Items(), ledger, testHeader())

	assert.Equal(t, [][]any{
		{"A1", "Widget", 2, "", "C1", "Gizmo", 1},
		{"B1", "Gadget", "", "", "", "", ""},
	}, sheet.DataRows())
}

func TestBuildOrderSheet_HeaderRows(t *testing.T) {
	sheet := BuildOrderSheet(testCatalog(), NewCartLedger(), testHeader())

	require.GreaterOrEqual(t, len(sheet.Rows), 6)
	assert.Equal(t, []any{SheetTitle}, sheet.Rows[0])
	assert.Empty(t, sheet.Rows[1])
	assert.Equal(t, []any{"FROM WAREHOUSE:", "Main", "", "ISSUED BY:", "Dana", "DATE:", "3/7/2026"}, sheet.Rows[2])
	assert.Equal(t, []any{"TO WAREHOUSE:", "Truck 12", "", "RECEIVED BY:", "Lee", "", ""}, sheet.Rows[3])
	assert.Empty(t, sheet.Rows[4])
	assert.Equal(t, []any{"ITEM #", "DESCRIPTION", "QTY", "", "ITEM #", "DESCRIPTION", "QTY"}, sheet.Rows[5])
	assert.Equal(t, 6, sheet.HeaderRows)
}

func TestBuildOrderSheet_Directives(t *testing.T) {
	sheet := BuildOrderSheet(testCatalog(), NewCartLedger(), testHeader())

	assert.Equal(t, "Request", sheet.SheetName)
	assert.Equal(t, "2026-03-07 Truck 12 broadband order request", sheet.FileBaseName)
	assert.Equal(t, []models.CellRange{{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 6}}, sheet.Merges)
	assert.Equal(t, []float64{10, 35, 8, 5, 10, 35, 8}, sheet.ColumnWidths)
	require.NotNil(t, sheet.CenteredCell)
	assert.Equal(t, 0, sheet.CenteredCell.StartRow)
}

func TestBuildOrderSheet_DataRowCountIsHalfRoundedUp(t *testing.T) {
	for n := 0; n <= 11; n++ {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			var items []models.CatalogItem
			for i := 0; i < n; i++ {
				items = append(items, models.CatalogItem{ID: fmt.Sprintf("ID%d", i), Name: fmt.Sprintf("Item %d", i)})
			}

			sheet := BuildOrderSheet(items, NewCartLedger(), testHeader())

			assert.Len(t, sheet.DataRows(), (n+1)/2)
			for _, row := range sheet.DataRows() {
				assert.Len(t, row, 7)
			}
		})
	}
}

func TestBuildOrderSheet_SplitsByLoadOrderNotPopularity(t *testing.T) {
	items := NewCatalogStore([]models.CatalogItem{
		{ID: "Z9", Name: "Zulu", Category: "B"},
		{ID: "A1", Name: "Alpha", Category: "A", IsPopular: true},
		{ID: "M5", Name: "Mike", Category: "B"},
		{ID: "B2", Name: "Bravo", Category: "A", IsPopular: true},
	}).Items()

	rows := BuildOrderSheet(items, NewCartLedger(), testHeader()).DataRows()

	require.Len(t, rows, 2)
	assert.Equal(t, "Zulu", rows[0][1])
	assert.Equal(t, "Mike", rows[0][5])
	assert.Equal(t, "Alpha", rows[1][1])
	assert.Equal(t, "Bravo", rows[1][5])
}

func TestBuildOrderSheet_NoZeroQuantities(t *testing.T) {
	ledger := NewCartLedger()
	ledger.Adjust("Widget", 1)
	ledger.Adjust("Widget", -1)

	rows := BuildOrderSheet(testCatalog(), ledger, testHeader()).DataRows()

	for _, row := range rows {
		assert.Equal(t, "", row[2])
		assert.Equal(t, "", row[6])
	}
}

func TestDisplayDate_ZeroDate(t *testing.T) {
	assert.Equal(t, "", DisplayDate(models.OrderSheetHeader{}))
}
