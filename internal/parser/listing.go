// Package parser extracts product data from SQDC listing page HTML.
package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jfcharron/sqdc-strain-scraper/internal/catalog"
)

const (
	productTileSelector = "a.js-equalized-name[data-productid]"
	nextItemSelector    = "li.page-item.next"
)

// ParseListing extracts the product tiles from a listing page. Each tile
// carries the raw product identifier attribute, its visible text and its
// link target. Tiles without an identifier are skipped.
func ParseListing(html string) ([]catalog.ListedProduct, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	var products []catalog.ListedProduct
	doc.Find(productTileSelector).Each(func(_ int, sel *goquery.Selection) {
		sku, ok := sel.Attr("data-productid")
		if !ok || sku == "" {
			return
		}
		url, _ := sel.Attr("href")
		products = append(products, catalog.ListedProduct{
			SKU:  sku,
			Name: strings.TrimSpace(sel.Text()),
			URL:  url,
		})
	})

	return products, nil
}

// NextPageDisabled reports whether the listing's next control is disabled.
// A listing without a next control counts as disabled.
func NextPageDisabled(html string) (bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	next := doc.Find(nextItemSelector)
	if next.Length() == 0 {
		return true, nil
	}
	return next.HasClass("disabled"), nil
}
