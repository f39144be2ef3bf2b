package models

// ProductIDSuffix is appended to a SKU to form the product id used by the
// pricing API and the listing DOM.
const ProductIDSuffix = "-P"

// ProductID derives the cross-source product id for a SKU. The derivation is
// pure: the same SKU always yields the same id.
func ProductID(sku string) string {
	return sku + ProductIDSuffix
}

// Strain is the per-product accumulator built up by the pipeline. It is
// created by the inventory filter with only the SKU and quantities set; the
// pricing reconciler and pagination walker fill in the rest. Pointer fields
// distinguish "unset" from zero values.
type Strain struct {
	SKU              string   `json:"sku"`
	Name             string   `json:"name,omitempty"`
	URL              string   `json:"url,omitempty"`
	Quantity         *int     `json:"quantity,omitempty"`
	PromisedQuantity *int     `json:"promised_quantity,omitempty"`
	ListPrice        *float64 `json:"list_price,omitempty"`
	DisplayPrice     *float64 `json:"display_price,omitempty"`
}

// NewStrain creates a strain from an inventory entry. Name, URL and prices
// remain unset.
func NewStrain(sku string, quantity, promisedQuantity int) *Strain {
	return &Strain{
		SKU:              sku,
		Quantity:         &quantity,
		PromisedQuantity: &promisedQuantity,
	}
}

// ProductID returns the derived identifier used as the map key across all
// pipeline stages.
func (s *Strain) ProductID() string {
	return ProductID(s.SKU)
}

// SetPricing records the parsed prices from the pricing source.
func (s *Strain) SetPricing(displayPrice, listPrice float64) {
	s.DisplayPrice = &displayPrice
	s.ListPrice = &listPrice
}

// SetListing records the display name and link target extracted from the
// product listing. Prior values are overwritten.
func (s *Strain) SetListing(name, url string) {
	s.Name = name
	s.URL = url
}

// IsProcessed reports whether every field has been populated. Only processed
// strains are eligible for output; partially filled strains are expected
// during the pipeline and are silently dropped at the end.
func (s *Strain) IsProcessed() bool {
	return s.SKU != "" &&
		s.Name != "" &&
		s.URL != "" &&
		s.Quantity != nil &&
		s.PromisedQuantity != nil &&
		s.ListPrice != nil &&
		s.DisplayPrice != nil
}
