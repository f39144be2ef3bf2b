package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

// ListedProduct is one product tile on a listing page. The DOM exposes the
// raw SKU-like identifier; the walker applies the product id derivation
// before lookup.
type ListedProduct struct {
	SKU  string
	Name string
	URL  string
}

// ListingView is a live, stateful paginated product listing. Pagination is
// server-session-bound, so pages must be consumed strictly in sequence.
type ListingView interface {
	// Products returns the product tiles visible on the current page.
	Products() ([]ListedProduct, error)
	// NextPage advances the listing to the next page, returning false when
	// the next control is disabled and no further pages exist.
	NextPage(ctx context.Context) (bool, error)
}

// Walker drives the page-by-page extraction of names and URLs into the
// strain set.
type Walker struct {
	logger *slog.Logger
}

// NewWalker returns a walker.
func NewWalker() *Walker {
	return &Walker{logger: slog.Default().With("component", "pagination_walker")}
}

// Walk iterates the listing until the next control is disabled, merging each
// page's names and URLs into the set. A tile whose derived product id is not
// in the set is a logged anomaly and skipped. Returns the number of pages
// visited and the total number of strains updated. Termination is guaranteed
// on a finite listing because the next control eventually reports disabled.
func (w *Walker) Walk(ctx context.Context, view ListingView, set *Set) (pages, updated int, err error) {
	for {
		pages++
		w.logger.Info("processing listing page", "page", pages)

		n, err := w.extractPage(view, set)
		if err != nil {
			return pages, updated, fmt.Errorf("failed to extract page %d: %w", pages, err)
		}
		updated += n
		w.logger.Debug("updated strains from page", "page", pages, "count", n)

		hasNext, err := view.NextPage(ctx)
		if err != nil {
			return pages, updated, fmt.Errorf("failed to advance past page %d: %w", pages, err)
		}
		if !hasNext {
			w.logger.Info("no more pages to load", "pages", pages, "updated", updated)
			return pages, updated, nil
		}
	}
}

// extractPage merges one page's tiles into the set and returns how many
// strains were updated.
func (w *Walker) extractPage(view ListingView, set *Set) (int, error) {
	products, err := view.Products()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, product := range products {
		productID := models.ProductID(product.SKU)
		strain, ok := set.Get(productID)
		if !ok {
			// A listed product outside the already-filtered priced set.
			w.logger.Warn("listed product not in strain set", "product_id", productID)
			continue
		}
		strain.SetListing(product.Name, product.URL)
		updated++
	}
	return updated, nil
}
