package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcharron/sqdc-strain-scraper/internal/sqdc"
)

func TestBuildFromInventoryFiltersZeroQuantity(t *testing.T) {
	items := []sqdc.InventoryItem{
		{Sku: "A1", Quantity: sqdc.InventoryQuantity{Quantity: 5, AvailableToPromiseQuantity: 3}},
		{Sku: "A2", Quantity: sqdc.InventoryQuantity{Quantity: 0, AvailableToPromiseQuantity: 0}},
	}

	set := BuildFromInventory(items)

	require.Equal(t, 1, set.Len())
	strain, ok := set.Get("A1-P")
	require.True(t, ok)
	assert.Equal(t, "A1", strain.SKU)
	assert.Equal(t, 5, *strain.Quantity)
	assert.Equal(t, 3, *strain.PromisedQuantity)
	assert.False(t, strain.IsProcessed())
}

func TestBuildFromInventoryDropsZeroPromise(t *testing.T) {
	items := []sqdc.InventoryItem{
		{Sku: "A1", Quantity: sqdc.InventoryQuantity{Quantity: 10, AvailableToPromiseQuantity: 0}},
		{Sku: "A2", Quantity: sqdc.InventoryQuantity{Quantity: 0, AvailableToPromiseQuantity: 10}},
		{Sku: "A3", Quantity: sqdc.InventoryQuantity{Quantity: 2, AvailableToPromiseQuantity: 2}},
	}

	set := BuildFromInventory(items)

	assert.Equal(t, 1, set.Len())
	_, ok := set.Get("A3-P")
	assert.True(t, ok)
}

func TestBuildFromInventoryEmptyInput(t *testing.T) {
	set := BuildFromInventory(nil)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Strains())
}

func TestBuildFromInventoryPreservesOrder(t *testing.T) {
	items := []sqdc.InventoryItem{
		{Sku: "C3", Quantity: sqdc.InventoryQuantity{Quantity: 1, AvailableToPromiseQuantity: 1}},
		{Sku: "A1", Quantity: sqdc.InventoryQuantity{Quantity: 1, AvailableToPromiseQuantity: 1}},
		{Sku: "B2", Quantity: sqdc.InventoryQuantity{Quantity: 1, AvailableToPromiseQuantity: 1}},
	}

	set := BuildFromInventory(items)
	assert.Equal(t, []string{"C3", "A1", "B2"}, set.SKUs())
}
