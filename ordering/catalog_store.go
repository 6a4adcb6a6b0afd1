// Package ordering holds the order-state engine: the catalog, the cart ledger,
// bundle application, catalog filtering and the order sheet layout.
package ordering

import (
	"fmt"

	"material-issue-sheet/models"
)

// CatalogStore holds the loaded catalog in load order. It is read-only after construction.
type CatalogStore struct {
	items []models.CatalogItem
}

// NewCatalogStore copies rawItems and assigns each item its uid (its position in load order)
func NewCatalogStore(rawItems []models.CatalogItem) *CatalogStore {
	items := make([]models.CatalogItem, len(rawItems))
	copy(items, rawItems)
	for i := range items {
		items[i].UID = i
	}
	return &CatalogStore{items: items}
}

// Len returns the number of catalog items
func (s *CatalogStore) Len() int {
	return len(s.items)
}

// Items returns a copy of the catalog in load order
func (s *CatalogStore) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// ByUID returns the item with the given session handle
func (s *CatalogStore) ByUID(uid int) (models.CatalogItem, error) {
	if uid < 0 || uid >= len(s.items) {
		return models.CatalogItem{}, fmt.Errorf("%w: uid %d", ErrItemNotFound, uid)
	}
	return s.items[uid], nil
}

// Find resolves a bundle key against the catalog, see ResolveKey
func (s *CatalogStore) Find(key string) (models.CatalogItem, error) {
	return ResolveKey(s.items, key)
}

// Categories returns the distinct item categories in first-seen order
func (s *CatalogStore) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range s.items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// ResolveKey returns the first item whose id equals key, or failing that the first
// item whose name equals key. Matching is exact and case-sensitive, and an id match
// always wins over a name match elsewhere in the catalog.
func ResolveKey(items []models.CatalogItem, key string) (models.CatalogItem, error) {
	for _, item := range items {
		if item.ID == key {
			return item, nil
		}
	}
	for _, item := range items {
		if item.Name == key {
			return item, nil
		}
	}
	return models.CatalogItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, key)
}
