package sqdc

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingURL(t *testing.T) {
	filters := Filters{
		{Name: FilterInStock, Values: []string{"in store"}},
		{Name: FilterDominantSpecies, Values: []string{"Indica", "Sativa"}},
		{Name: FilterPotency, Values: []string{"3"}},
		{Name: FilterFormat, Values: []string{"3.5 g"}},
	}

	raw := filters.ListingURL()
	require.True(t, strings.HasPrefix(raw, ListingBaseURL))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, FilterInStock, params.Get("fn1"))
	assert.Equal(t, "in store", params.Get("fv1"))
	assert.Equal(t, FilterDominantSpecies, params.Get("fn2"))
	assert.Equal(t, "Indica|Sativa", params.Get("fv2"))
	assert.Equal(t, FilterPotency, params.Get("fn3"))
	assert.Equal(t, "3", params.Get("fv3"))
	assert.Equal(t, FilterFormat, params.Get("fn4"))
	assert.Equal(t, "3.5 g", params.Get("fv4"))
}

func TestListingURLEmptyFilters(t *testing.T) {
	parsed, err := url.Parse(Filters{}.ListingURL())
	require.NoError(t, err)
	assert.Empty(t, parsed.Query())
}

func TestListingURLNumberingFollowsOrder(t *testing.T) {
	a := Filters{
		{Name: FilterFormat, Values: []string{"3.5 g"}},
		{Name: FilterInStock, Values: []string{"in store"}},
	}
	parsed, err := url.Parse(a.ListingURL())
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, FilterFormat, params.Get("fn1"))
	assert.Equal(t, FilterInStock, params.Get("fn2"))
}

func TestDefaultFilters(t *testing.T) {
	filters := DefaultFilters()
	require.Len(t, filters, 4)
	assert.Equal(t, FilterInStock, filters[0].Name)
}
