package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

func TestSetInsertionOrder(t *testing.T) {
	set := NewSet()
	set.Add(models.NewStrain("C3", 1, 1))
	set.Add(models.NewStrain("A1", 1, 1))
	set.Add(models.NewStrain("B2", 1, 1))

	assert.Equal(t, []string{"C3", "A1", "B2"}, set.SKUs())
}

func TestSetOverwriteKeepsPosition(t *testing.T) {
	set := NewSet()
	set.Add(models.NewStrain("A1", 1, 1))
	set.Add(models.NewStrain("B2", 1, 1))

	// Duplicate SKU silently overwrites, keeping first-seen order.
	replacement := models.NewStrain("A1", 9, 9)
	set.Add(replacement)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"A1", "B2"}, set.SKUs())

	got, ok := set.Get("A1-P")
	assert.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestSetDelete(t *testing.T) {
	set := NewSet()
	set.Add(models.NewStrain("A1", 1, 1))
	set.Add(models.NewStrain("B2", 1, 1))

	set.Delete("A1-P")
	assert.Equal(t, 1, set.Len())
	_, ok := set.Get("A1-P")
	assert.False(t, ok)
	assert.Equal(t, []string{"B2"}, set.SKUs())

	// Deleting a missing id is a no-op.
	set.Delete("Z9-P")
	assert.Equal(t, 1, set.Len())
}

func TestSetProcessed(t *testing.T) {
	complete := models.NewStrain("A1", 5, 3)
	complete.SetPricing(10.00, 12.00)
	complete.SetListing("Tangerine Dream", "https://www.sqdc.ca/p/A1")

	partial := models.NewStrain("B2", 5, 3)

	set := NewSet()
	set.Add(partial)
	set.Add(complete)

	processed := set.Processed()
	assert.Len(t, processed, 1)
	assert.Equal(t, "A1", processed[0].SKU)
}
