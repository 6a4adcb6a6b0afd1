package models

// CartLine represents a catalog item currently in the cart
type CartLine struct {
	UID  int    `json:"uid"`
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// CartResponse represents the cart drawer contents
// Example response:
// {
//   "revision": 7,
//   "distinctCount": 2,
//   "lines": [
//     {"uid": 1, "id": "B1", "name": "Gadget", "qty": 3},
//     {"uid": 0, "id": "A1", "name": "Widget", "qty": 2}
//   ]
// }
type CartResponse struct {
	Revision      uint64     `json:"revision"`
	DistinctCount int        `json:"distinctCount"`
	Lines         []CartLine `json:"lines"`
}

// AdjustQuantityRequest represents the request body for changing an item's quantity
// Example: {"delta": -1}
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ApplyBundleResponse represents the result of adding a bundle kit to the cart
// Example: {"message": "Added Drop Kit items to order!", "applied": 3, "unresolved": ["ZZZ"], "revision": 8}
type ApplyBundleResponse struct {
	Message    string   `json:"message"`
	Applied    int      `json:"applied"`
	Unresolved []string `json:"unresolved"`
	Revision   uint64   `json:"revision"`
}

// SessionStatus backs the before-navigate guard
// Example: {"revision": 3, "distinctCount": 1, "hasUnsavedChanges": true}
type SessionStatus struct {
	Revision          uint64 `json:"revision"`
	DistinctCount     int    `json:"distinctCount"`
	HasUnsavedChanges bool   `json:"hasUnsavedChanges"`
}

// FilterRequest represents the request body for changing the catalog filter
// Example: {"category": "Equipment", "searchTerm": "onu"}
type FilterRequest struct {
	Category   string `json:"category" validate:"required"`
	SearchTerm string `json:"searchTerm"`
}

// CatalogViewResponse represents what the grid renders for the current filter.
// Exactly one of Items or Bundles is set, depending on Mode.
type CatalogViewResponse struct {
	Mode     string        `json:"mode"` // "items" or "bundles"
	Category string        `json:"category"`
	Search   string        `json:"search"`
	Items    []CatalogCard `json:"items,omitempty"`
	Bundles  []BundleCard  `json:"bundles,omitempty"`
	Revision uint64        `json:"revision"`
}

// CatalogCard is a catalog item with its current cart quantity
type CatalogCard struct {
	CatalogItem
	Qty      int  `json:"qty"`
	Selected bool `json:"selected"`
}

// BundleCard is a bundle with its position, used to apply it
type BundleCard struct {
	Index int `json:"index"`
	BundleDefinition
}
