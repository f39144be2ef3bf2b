package catalog

import (
	"log/slog"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
	"github.com/jfcharron/sqdc-strain-scraper/internal/sqdc"
)

// BuildFromInventory constructs the initial strain set from raw inventory
// entries. Entries with zero total quantity or zero available-to-promise
// quantity are dropped. Surviving strains carry only the SKU and quantities;
// pricing and listing data arrive in later stages. Empty input yields an
// empty set.
func BuildFromInventory(items []sqdc.InventoryItem) *Set {
	logger := slog.Default().With("component", "inventory_filter")

	set := NewSet()
	for _, item := range items {
		q := item.Quantity
		if q.Quantity == 0 || q.AvailableToPromiseQuantity == 0 {
			continue
		}
		set.Add(models.NewStrain(item.Sku, q.Quantity, q.AvailableToPromiseQuantity))
	}

	logger.Debug("filtered inventory", "items", len(items), "kept", set.Len())
	return set
}
