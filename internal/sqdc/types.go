package sqdc

// InventoryQuantity is the stock sub-structure of an inventory entry.
type InventoryQuantity struct {
	Quantity                   int `json:"Quantity"`
	AvailableToPromiseQuantity int `json:"AvailableToPromiseQuantity"`
}

// InventoryItem is one entry from the store inventory endpoint.
type InventoryItem struct {
	Sku      string            `json:"Sku"`
	Quantity InventoryQuantity `json:"Quantity"`
}

// VariantPrice is a per-packaging-variant price. Prices arrive as
// currency-formatted strings, e.g. "$12.34".
type VariantPrice struct {
	DisplayPrice string `json:"DisplayPrice"`
	ListPrice    string `json:"ListPrice"`
}

// ProductPrice is one entry from the calculatePrices endpoint, keyed by the
// derived product id rather than the raw SKU.
type ProductPrice struct {
	ProductID        string         `json:"ProductId"`
	DisplayPrice     string         `json:"DisplayPrice"`
	DefaultListPrice string         `json:"DefaultListPrice"`
	VariantPrices    []VariantPrice `json:"VariantPrices"`
}

type inventoryResponse struct {
	InventoryItems []InventoryItem `json:"InventoryItems"`
}

type pricesResponse struct {
	ProductPrices []ProductPrice `json:"ProductPrices"`
}
