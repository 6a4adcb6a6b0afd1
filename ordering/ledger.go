package ordering

// CartLedger maps item names to ordered quantities.
// An entry exists only while its quantity is greater than zero.
type CartLedger struct {
	quantities map[string]int
}

// NewCartLedger creates an empty ledger
func NewCartLedger() *CartLedger {
	return &CartLedger{quantities: make(map[string]int)}
}

// Adjust adds delta to the item's quantity, saturating at zero, and returns the new quantity.
// Reaching zero removes the entry.
func (l *CartLedger) Adjust(itemName string, delta int) int {
	qty := l.quantities[itemName] + delta
	if qty <= 0 {
		delete(l.quantities, itemName)
		return 0
	}
	l.quantities[itemName] = qty
	return qty
}

// AddBundleQuantity folds a bundle line into the ledger. It adds, so applying
// the same bundle twice doubles its contribution.
func (l *CartLedger) AddBundleQuantity(itemName string, qty int) int {
	return l.Adjust(itemName, qty)
}

// Quantity returns the ordered quantity, zero when the item is not in the cart
func (l *CartLedger) Quantity(itemName string) int {
	return l.quantities[itemName]
}

// DistinctCount returns the number of items with a positive quantity
func (l *CartLedger) DistinctCount() int {
	return len(l.quantities)
}

// IsEmpty reports whether nothing is ordered
func (l *CartLedger) IsEmpty() bool {
	return l.DistinctCount() == 0
}

// Snapshot returns a copy of the name to quantity mapping
func (l *CartLedger) Snapshot() map[string]int {
	out := make(map[string]int, len(l.quantities))
	for name, qty := range l.quantities {
		out[name] = qty
	}
	return out
}

// Clear removes every entry
func (l *CartLedger) Clear() {
	l.quantities = make(map[string]int)
}
