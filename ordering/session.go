package ordering

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"material-issue-sheet/models"
)

// ChangeKind names what a ChangeEvent is about
type ChangeKind string

const (
	ChangeLedger ChangeKind = "ledger"
	ChangeFilter ChangeKind = "filter"
)

// ChangeEvent is emitted after every ledger or filter mutation
type ChangeEvent struct {
	Kind     ChangeKind
	Revision uint64
}

// Listener receives change events synchronously, in subscription order
type Listener func(ChangeEvent)

// Session owns the order state of one user: the immutable catalog and bundles,
// the cart ledger and the current filter. It is not safe for concurrent use;
// callers serialize access.
type Session struct {
	catalog   *CatalogStore
	bundles   []models.BundleDefinition
	ledger    *CartLedger
	applier   *BundleApplier
	filter    FilterState
	revision  uint64
	listeners []Listener
	logger    *zap.Logger
}

// NewSession builds a session over a freshly loaded catalog and bundle list
func NewSession(items []models.CatalogItem, bundles []models.BundleDefinition, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := NewCatalogStore(items)
	ledger := NewCartLedger()
	owned := make([]models.BundleDefinition, len(bundles))
	copy(owned, bundles)

	return &Session{
		catalog: catalog,
		bundles: owned,
		ledger:  ledger,
		applier: NewBundleApplier(catalog, ledger, logger),
		filter:  DefaultFilter(),
		logger:  logger,
	}
}

// Subscribe registers l for every subsequent change event
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(kind ChangeKind) {
	s.revision++
	event := ChangeEvent{Kind: kind, Revision: s.revision}
	for _, l := range s.listeners {
		l(event)
	}
}

// Catalog returns the read-only catalog
func (s *Session) Catalog() *CatalogStore {
	return s.catalog
}

// Revision counts the changes made so far
func (s *Session) Revision() uint64 {
	return s.revision
}

// Quantity returns the ordered quantity of an item
func (s *Session) Quantity(itemName string) int {
	return s.ledger.Quantity(itemName)
}

// DistinctCount returns the number of different items in the cart
func (s *Session) DistinctCount() int {
	return s.ledger.DistinctCount()
}

// HasUnsavedChanges reports whether leaving now would lose a non-empty cart
func (s *Session) HasUnsavedChanges() bool {
	return !s.ledger.IsEmpty()
}

// AdjustQuantity changes an item's quantity by delta and returns the new quantity
func (s *Session) AdjustQuantity(itemName string, delta int) int {
	qty := s.ledger.Adjust(itemName, delta)
	s.emit(ChangeLedger)
	return qty
}

// AdjustByUID changes the quantity of the item with the given session handle
func (s *Session) AdjustByUID(uid int, delta int) (models.CatalogItem, int, error) {
	item, err := s.catalog.ByUID(uid)
	if err != nil {
		return models.CatalogItem{}, 0, err
	}
	return item, s.AdjustQuantity(item.Name, delta), nil
}

// Bundles returns the bundle kits in load order
func (s *Session) Bundles() []models.BundleDefinition {
	out := make([]models.BundleDefinition, len(s.bundles))
	copy(out, s.bundles)
	return out
}

// ApplyBundle adds the bundle at index to the cart
func (s *Session) ApplyBundle(index int) (ApplyResult, error) {
	if index < 0 || index >= len(s.bundles) {
		return ApplyResult{}, fmt.Errorf("%w: index %d", ErrBundleNotFound, index)
	}
	result := s.applier.Apply(s.bundles[index])
	s.emit(ChangeLedger)
	return result, nil
}

// Clear empties the cart
func (s *Session) Clear() {
	s.ledger.Clear()
	s.emit(ChangeLedger)
}

// Filter returns the current filter
func (s *Session) Filter() FilterState {
	return s.filter
}

// SetFilter replaces the current filter. An empty category means All.
func (s *Session) SetFilter(f FilterState) {
	if f.Category == "" {
		f.Category = CategoryAll
	}
	s.filter = f
	s.emit(ChangeFilter)
}

// DisplayList returns the catalog items for the current filter.
// It returns nil in the Bundles view, where Bundles should be shown instead.
func (s *Session) DisplayList() []models.CatalogItem {
	if s.filter.IsBundleView() {
		return nil
	}
	return DeriveDisplayList(s.catalog.items, s.filter)
}

// CartLines returns the ordered items sorted by name
func (s *Session) CartLines() []models.CartLine {
	var lines []models.CartLine
	for _, item := range s.catalog.items {
		qty := s.ledger.Quantity(item.Name)
		if qty <= 0 {
			continue
		}
		lines = append(lines, models.CartLine{UID: item.UID, ID: item.ID, Name: item.Name, Qty: qty})
	}

	collator := collate.New(language.English)
	sort.SliceStable(lines, func(i, j int) bool {
		return collator.CompareString(lines[i].Name, lines[j].Name) < 0
	})
	return lines
}

// PrepareOrderSheet validates the export and lays out the order sheet.
// Layout runs only when validation passes.
func (s *Session) PrepareOrderSheet(header models.OrderSheetHeader, confirm Confirmer) (*models.OrderSheet, error) {
	header, err := ValidateExport(s.ledger, header, confirm)
	if err != nil {
		return nil, err
	}
	sheet := BuildOrderSheet(s.catalog.items, s.ledger, header)
	s.logger.Info("order sheet prepared",
		zap.String("destination", header.ToWarehouse),
		zap.Int("distinct_items", s.ledger.DistinctCount()),
		zap.Int("rows", len(sheet.Rows)),
	)
	return sheet, nil
}
