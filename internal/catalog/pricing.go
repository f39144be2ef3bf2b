package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jfcharron/sqdc-strain-scraper/internal/sqdc"
)

// minSanePrice guards against pricing glitches: any strain whose parsed
// display or list price falls below one dollar is treated as a data error
// and removed from the set.
var minSanePrice = decimal.NewFromInt(1)

// ApplyPrices merges the price entries into the strain set in place. Per
// entry: an unknown product id is a logged anomaly and skipped; the first
// variant price takes precedence over the top-level price strings when
// present; a strain whose fallback prices fail to parse, or whose prices
// fall below the sanity threshold, is removed from the set. Strains with no
// matching price entry at all are left unpriced and fall out later at the
// completeness check.
func ApplyPrices(prices []sqdc.ProductPrice, set *Set) {
	logger := slog.Default().With("component", "pricing_reconciler")

	var toRemove []string
	for _, p := range prices {
		strain, ok := set.Get(p.ProductID)
		if !ok {
			logger.Warn("price entry for unknown product", "product_id", p.ProductID)
			continue
		}

		var displayRaw, listRaw string
		if len(p.VariantPrices) > 0 {
			displayRaw = p.VariantPrices[0].DisplayPrice
			listRaw = p.VariantPrices[0].ListPrice
		} else {
			displayRaw = p.DisplayPrice
			listRaw = p.DefaultListPrice
		}

		display, err := parsePrice(displayRaw)
		if err != nil {
			logger.Warn("unparseable display price", "product_id", p.ProductID, "raw", displayRaw)
			toRemove = append(toRemove, p.ProductID)
			continue
		}
		list, err := parsePrice(listRaw)
		if err != nil {
			logger.Warn("unparseable list price", "product_id", p.ProductID, "raw", listRaw)
			toRemove = append(toRemove, p.ProductID)
			continue
		}

		if display.LessThan(minSanePrice) || list.LessThan(minSanePrice) {
			logger.Warn("price below sanity threshold",
				"product_id", p.ProductID,
				"display_price", display.String(),
				"list_price", list.String())
			toRemove = append(toRemove, p.ProductID)
			continue
		}

		strain.SetPricing(display.InexactFloat64(), list.InexactFloat64())
	}

	for _, productID := range toRemove {
		set.Delete(productID)
	}
}

// parsePrice converts a currency-formatted string like "$12.34" to an exact
// decimal amount.
func parsePrice(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("empty price string")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse price %q: %w", raw, err)
	}
	return d, nil
}
