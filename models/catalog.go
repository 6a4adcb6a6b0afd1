package models

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// CatalogItem represents a single part in the reference catalog
type CatalogItem struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Category  string `json:"category" yaml:"category"`
	IsPopular bool   `json:"isPopular" yaml:"isPopular"`
	UID       int    `json:"uid" yaml:"-"` // Position in load order, assigned by the catalog store
}

// BundleDefinition is a named kit of catalog keys and quantities
// Example: {"name": "Drop Kit", "description": "Standard drop", "items": [["A1", 2], ["Gizmo", 1]]}
type BundleDefinition struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Items       []BundleLine `json:"items" yaml:"items"`
}

// BundleLine is one (key, qty) pair of a bundle. Key is a catalog id or name.
type BundleLine struct {
	Key string
	Qty int
}

// MarshalJSON writes the line as a two-element array, the same shape it is read from
func (l BundleLine) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{l.Key, l.Qty})
}

// UnmarshalJSON reads a ["key", qty] pair
func (l *BundleLine) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("bundle line must be a [key, qty] array: %w", err)
	}
	return l.fromPair(pair)
}

// UnmarshalYAML reads a [key, qty] sequence
func (l *BundleLine) UnmarshalYAML(value *yaml.Node) error {
	var pair []any
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("bundle line must be a [key, qty] sequence: %w", err)
	}
	return l.fromPair(pair)
}

func (l *BundleLine) fromPair(pair []any) error {
	if len(pair) != 2 {
		return fmt.Errorf("bundle line must have exactly 2 elements, got %d", len(pair))
	}

	key, ok := pair[0].(string)
	if !ok {
		return fmt.Errorf("bundle line key must be a string, got %T", pair[0])
	}

	var qty int
	switch v := pair[1].(type) {
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("bundle line %q quantity must be a whole number, got %v", key, v)
		}
		qty = int(v)
	case int:
		qty = v
	default:
		return fmt.Errorf("bundle line %q quantity must be a number, got %T", key, pair[1])
	}

	l.Key = key
	l.Qty = qty
	return nil
}

// CategoryList represents the filter bar entries
// Example: {"categories": ["All", "Bundles", "Equipment", "Fiber/Copper"]}
type CategoryList struct {
	Categories []string `json:"categories"`
}
