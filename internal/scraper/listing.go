package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"github.com/jfcharron/sqdc-strain-scraper/internal/catalog"
	"github.com/jfcharron/sqdc-strain-scraper/internal/parser"
	"github.com/jfcharron/sqdc-strain-scraper/internal/ratelimit"
)

const (
	productTileSelector = "a.js-equalized-name[data-productid]"
	nextLinkSelector    = "li.page-item.next a.page-link"
)

// ListingPage is the live playwright-backed catalog.ListingView. Pagination
// state lives server-side in the session, so pages are consumed strictly in
// sequence.
type ListingPage struct {
	page    playwright.Page
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

func NewListingPage(page playwright.Page, limiter *ratelimit.Limiter) *ListingPage {
	return &ListingPage{
		page:    page,
		limiter: limiter,
		logger:  slog.Default().With("component", "listing_page"),
	}
}

// Navigate loads the filtered listing URL.
func (lp *ListingPage) Navigate(url string) error {
	lp.logger.Info("navigating to listing", "url", url)
	if _, err := lp.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to navigate to listing: %w", err)
	}
	return nil
}

// Products waits for the current page's tiles and parses them out of the
// page content.
func (lp *ListingPage) Products() ([]catalog.ListedProduct, error) {
	if _, err := lp.page.WaitForSelector(productTileSelector); err != nil {
		return nil, fmt.Errorf("failed to wait for product tiles: %w", err)
	}

	html, err := lp.page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read page content: %w", err)
	}

	return parser.ParseListing(html)
}

// NextPage checks the next control's disabled state and, when enabled,
// activates it and waits for the listing to reload.
func (lp *ListingPage) NextPage(ctx context.Context) (bool, error) {
	html, err := lp.page.Content()
	if err != nil {
		return false, fmt.Errorf("failed to read page content: %w", err)
	}

	disabled, err := parser.NextPageDisabled(html)
	if err != nil {
		return false, err
	}
	if disabled {
		return false, nil
	}

	if err := lp.limiter.Wait(ctx); err != nil {
		return false, err
	}

	// Tie the click to the resulting navigation so the tile wait in
	// Products cannot match the old page's DOM.
	if _, err := lp.page.ExpectNavigation(func() error {
		return lp.page.Locator(nextLinkSelector).Click()
	}); err != nil {
		return false, fmt.Errorf("failed to advance to next page: %w", err)
	}

	return true, nil
}
