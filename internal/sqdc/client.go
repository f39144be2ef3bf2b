package sqdc

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

const (
	defaultBaseURL = "https://www.sqdc.ca/api"
	siteOrigin     = "https://www.sqdc.ca"
	websiteID      = "f3dbd28d-365f-4d3e-91c3-7b730b39b294"
)

// APIError is returned for any non-2xx response from the SQDC API. It is
// fatal for the run; no retries are attempted.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sqdc api %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client calls the site's internal JSON API using the cookie set captured
// from an authenticated browser session. The cookies are read-only for the
// lifetime of the client; a run fails outright if the session expires.
type Client struct {
	http    *resty.Client
	storeID int
	logger  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithReferer sets the Referer header sent with every request; the site
// expects the filtered listing URL here.
func WithReferer(referer string) Option {
	return func(c *Client) {
		c.http.SetHeader("Referer", referer)
	}
}

// NewClient builds an API client for one store from a captured session
// cookie set.
func NewClient(cookies map[string]string, storeID int, opts ...Option) *Client {
	c := &Client{
		http:    resty.New().SetBaseURL(defaultBaseURL),
		storeID: storeID,
		logger:  slog.Default().With("component", "sqdc_client"),
	}

	c.http.SetHeaders(map[string]string{
		"Content-Type":     "application/json",
		"Accept":           "application/json, text/javascript, */*; q=0.01",
		"Accept-Language":  "en-CA",
		"Origin":           siteOrigin,
		"Referer":          siteOrigin + "/en-CA/Stores",
		"X-Requested-With": "XMLHttpRequest",
		"WebsiteId":        websiteID,
		"Cookie":           buildCookieHeader(cookies, storeID),
	})

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// buildCookieHeader flattens the captured cookie set into a header value,
// prefixed with the selected store and the support-widget state cookie the
// site expects.
func buildCookieHeader(cookies map[string]string, storeID int) string {
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(cookies)+2)
	pairs = append(pairs, "SelectedStore="+strconv.Itoa(storeID))
	pairs = append(pairs, `_hd={"heyday-widget-state": "welcome"}`)
	for _, name := range names {
		pairs = append(pairs, name+"="+cookies[name])
	}
	return strings.Join(pairs, "; ")
}

// GetStoreInventory fetches the raw inventory for the client's store.
func (c *Client) GetStoreInventory(ctx context.Context) ([]InventoryItem, error) {
	var result inventoryResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]int{"InventoryLocationId": c.storeID}).
		SetResult(&result).
		ForceContentType("application/json").
		Post("/olivestoreinventory/getmystoreinventory")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store inventory: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{
			Endpoint:   "olivestoreinventory/getmystoreinventory",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	c.logger.Debug("fetched store inventory", "store_id", c.storeID, "items", len(result.InventoryItems))
	return result.InventoryItems, nil
}

// CalculatePrices fetches prices for the given SKUs, each suffixed with the
// product id marker the pricing endpoint expects.
func (c *Client) CalculatePrices(ctx context.Context, skus []string) ([]ProductPrice, error) {
	products := make([]string, len(skus))
	for i, sku := range skus {
		products[i] = models.ProductID(sku)
	}

	var result pricesResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string][]string{"products": products}).
		SetResult(&result).
		ForceContentType("application/json").
		Post("/product/calculatePrices")
	if err != nil {
		return nil, fmt.Errorf("failed to calculate prices: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{
			Endpoint:   "product/calculatePrices",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	c.logger.Debug("calculated prices", "skus", len(skus), "prices", len(result.ProductPrices))
	return result.ProductPrices, nil
}
