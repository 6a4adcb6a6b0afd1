package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"material-issue-sheet/models"
)

func testBundles() []models.BundleDefinition {
	return []models.BundleDefinition{
		{Name: "Starter", Description: "basic drop", Items: []models.BundleLine{{Key: "A1", Qty: 2}, {Key: "ZZZ", Qty: 5}}},
		{Name: "Gizmos", Items: []models.BundleLine{{Key: "Gizmo", Qty: 1}}},
	}
}

func newTestSession() *Session {
	return NewSession(testCatalog(), testBundles(), zap.NewNop())
}

func TestSession_EmitsChangeEvents(t *testing.T) {
	session := newTestSession()
	var events []ChangeEvent
	session.Subscribe(func(e ChangeEvent) { events = append(events, e) })

	session.AdjustQuantity("Widget", 1)
	session.SetFilter(FilterState{Category: "Equipment"})
	_, err := session.ApplyBundle(1)
	require.NoError(t, err)
	session.Clear()

	assert.Equal(t, []ChangeEvent{
		{Kind: ChangeLedger, Revision: 1},
		{Kind: ChangeFilter, Revision: 2},
		{Kind: ChangeLedger, Revision: 3},
		{Kind: ChangeLedger, Revision: 4},
	}, events)
	assert.Equal(t, uint64(4), session.Revision())
}

func TestSession_AdjustByUID(t *testing.T) {
	session := newTestSession()

	item, qty, err := session.AdjustByUID(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Gadget", item.Name)
	assert.Equal(t, 3, qty)

	_, _, err = session.AdjustByUID(7, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, uint64(1), session.Revision(), "failed adjust must not emit")
}

func TestSession_ApplyBundle(t *testing.T) {
	session := newTestSession()

	result, err := session.ApplyBundle(0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, "Starter", result.Bundle)
	assert.Equal(t, 2, session.Quantity("Widget"))

	_, err = session.ApplyBundle(2)
	assert.ErrorIs(t, err, ErrBundleNotFound)
	_, err = session.ApplyBundle(-1)
	assert.ErrorIs(t, err, ErrBundleNotFound)
}

func TestSession_DisplayList(t *testing.T) {
	session := newTestSession()

	assert.Equal(t, []int{1, 0, 2}, uids(session.DisplayList()))

	session.SetFilter(FilterState{})
	assert.Equal(t, CategoryAll, session.Filter().Category)

	session.SetFilter(FilterState{Category: CategoryBundles})
	assert.Nil(t, session.DisplayList())
	assert.Len(t, session.Bundles(), 2)
}

func TestSession_CartLinesSortedByName(t *testing.T) {
	session := newTestSession()
	session.AdjustQuantity("Widget", 2)
	session.AdjustQuantity("Gizmo", 1)
	session.AdjustQuantity("Gadget", 4)

	lines := session.CartLines()

	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Gadget", "Gizmo", "Widget"}, []string{lines[0].Name, lines[1].Name, lines[2].Name})
	assert.Equal(t, models.CartLine{UID: 1, ID: "B1", Name: "Gadget", Qty: 4}, lines[0])
}

func TestSession_HasUnsavedChanges(t *testing.T) {
	session := newTestSession()
	assert.False(t, session.HasUnsavedChanges())

	session.AdjustQuantity("Gizmo", 1)
	assert.True(t, session.HasUnsavedChanges())

	session.AdjustQuantity("Gizmo", -1)
	assert.False(t, session.HasUnsavedChanges())
}

func TestSession_PrepareOrderSheet(t *testing.T) {
	session := newTestSession()

	_, err := session.PrepareOrderSheet(testHeader(), nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	session.AdjustQuantity("Widget", 2)
	session.AdjustQuantity("Gizmo", 1)

	header := testHeader()
	header.ToWarehouse = " Truck 12 "
	sheet, err := session.PrepareOrderSheet(header, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-07 Truck 12 broadband order request", sheet.FileBaseName)
	assert.Equal(t, []any{"A1", "Widget", 2, "", "C1", "Gizmo", 1}, sheet.DataRows()[0])
}
