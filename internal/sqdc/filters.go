package sqdc

import (
	"net/url"
	"strconv"
	"strings"
)

// Recognized listing filter names.
const (
	FilterInStock         = "InStock"
	FilterDominantSpecies = "DominantSpecies"
	FilterPotency         = "ProductAccessibilityLookupValue" // strength tier, "1"-"3"
	FilterFormat          = "Format"
)

// ListingBaseURL is the filtered dried-flowers listing.
const ListingBaseURL = "https://www.sqdc.ca/en-CA/dried-cannabis/dried-flowers?&"

// Filter is a single listing filter. Multiple values are rendered joined
// with "|".
type Filter struct {
	Name   string
	Values []string
}

// Filters is an ordered filter list; order determines the fn{i}/fv{i}
// parameter numbering.
type Filters []Filter

// DefaultFilters mirrors the stock in-store, strong indica/sativa 3.5 g
// selection.
func DefaultFilters() Filters {
	return Filters{
		{Name: FilterInStock, Values: []string{"in store"}},
		{Name: FilterDominantSpecies, Values: []string{"Indica", "Sativa"}},
		{Name: FilterPotency, Values: []string{"3"}},
		{Name: FilterFormat, Values: []string{"3.5 g"}},
	}
}

// ListingURL renders the filtered listing URL. Each filter becomes an
// incrementing fn{i}/fv{i} query-parameter pair.
func (f Filters) ListingURL() string {
	params := url.Values{}
	for i, filter := range f {
		n := strconv.Itoa(i + 1)
		params.Set("fn"+n, filter.Name)
		params.Set("fv"+n, strings.Join(filter.Values, "|"))
	}
	return ListingBaseURL + params.Encode()
}
