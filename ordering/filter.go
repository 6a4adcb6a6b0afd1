package ordering

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"material-issue-sheet/models"
)

const (
	// CategoryAll disables category filtering
	CategoryAll = "All"
	// CategoryBundles switches the grid from catalog items to bundle kits
	CategoryBundles = "Bundles"
)

// FilterState is the current category and search box content
type FilterState struct {
	Category   string `json:"category"`
	SearchTerm string `json:"searchTerm"`
}

// DefaultFilter shows the whole catalog
func DefaultFilter() FilterState {
	return FilterState{Category: CategoryAll}
}

// IsBundleView reports whether the caller should render bundles instead of items
func (f FilterState) IsBundleView() bool {
	return f.Category == CategoryBundles
}

// DeriveDisplayList returns the catalog items to show for f, popular items first.
// Items with the same popularity keep their load order. items is not modified.
// The Bundles view mode is the caller's concern and must be checked before calling.
func DeriveDisplayList(items []models.CatalogItem, f FilterState) []models.CatalogItem {
	display := make([]models.CatalogItem, len(items))
	copy(display, items)
	sort.SliceStable(display, func(i, j int) bool {
		return display[i].IsPopular && !display[j].IsPopular
	})

	fold := cases.Fold()
	term := fold.String(f.SearchTerm)

	out := display[:0]
	for _, item := range display {
		if f.Category != CategoryAll && item.Category != f.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(fold.String(item.Name), term) &&
			!strings.Contains(fold.String(item.ID), term) {
			continue
		}
		out = append(out, item)
	}
	return out
}
