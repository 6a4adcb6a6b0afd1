package ordering

import (
	"go.uber.org/zap"

	"material-issue-sheet/models"
)

// ApplyResult reports how much of a bundle made it into the cart
type ApplyResult struct {
	Bundle     string
	Applied    int      // Lines resolved against the catalog and added
	Unresolved []string // Keys that matched no catalog item
}

// BundleApplier folds bundle kits into a ledger
type BundleApplier struct {
	catalog *CatalogStore
	ledger  *CartLedger
	logger  *zap.Logger
}

// NewBundleApplier creates a BundleApplier writing into ledger
func NewBundleApplier(catalog *CatalogStore, ledger *CartLedger, logger *zap.Logger) *BundleApplier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BundleApplier{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// Apply adds every resolvable line of bundle to the ledger. A line whose key
// resolves to nothing is logged and skipped; the remaining lines still apply.
func (a *BundleApplier) Apply(bundle models.BundleDefinition) ApplyResult {
	result := ApplyResult{Bundle: bundle.Name}

	for _, line := range bundle.Items {
		item, err := a.catalog.Find(line.Key)
		if err != nil {
			a.logger.Warn("could not find bundle item in catalog",
				zap.String("bundle", bundle.Name),
				zap.String("key", line.Key),
				zap.Int("qty", line.Qty),
			)
			result.Unresolved = append(result.Unresolved, line.Key)
			continue
		}

		a.ledger.AddBundleQuantity(item.Name, line.Qty)
		result.Applied++
	}

	a.logger.Debug("bundle applied",
		zap.String("bundle", bundle.Name),
		zap.Int("applied", result.Applied),
		zap.Int("unresolved", len(result.Unresolved)),
	)
	return result
}
