// Package scraper drives a full catalog run: session bootstrap, inventory
// and price fetches, reconciliation and the pagination walk.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jfcharron/sqdc-strain-scraper/internal/browser"
	"github.com/jfcharron/sqdc-strain-scraper/internal/catalog"
	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
	"github.com/jfcharron/sqdc-strain-scraper/internal/ratelimit"
	"github.com/jfcharron/sqdc-strain-scraper/internal/session"
	"github.com/jfcharron/sqdc-strain-scraper/internal/sqdc"
)

// Agent sequences one catalog run. Runs are single-threaded and sequential:
// the session is captured once, every external call blocks, and the strain
// set is owned by the run from start to finish.
type Agent struct {
	browser    *browser.Browser
	dob        session.DateOfBirth
	limiter    *ratelimit.Limiter
	clientOpts []sqdc.Option
	logger     *slog.Logger
}

// AgentOption customizes an Agent.
type AgentOption func(*Agent)

// WithClientOptions forwards options to the API client built for each run.
func WithClientOptions(opts ...sqdc.Option) AgentOption {
	return func(a *Agent) {
		a.clientOpts = append(a.clientOpts, opts...)
	}
}

// WithPageDelay overrides the pacing between page navigations.
func WithPageDelay(min, max time.Duration) AgentOption {
	return func(a *Agent) {
		a.limiter = ratelimit.New(min, max)
	}
}

func NewAgent(b *browser.Browser, dob session.DateOfBirth, opts ...AgentOption) *Agent {
	a := &Agent{
		browser: b,
		dob:     dob,
		limiter: ratelimit.New(500*time.Millisecond, time.Second),
		logger:  slog.Default().With("component", "agent"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run builds the priced, in-stock strain catalog for one store. Returns only
// fully populated strains, in the order they were first seen during
// inventory filtering.
func (a *Agent) Run(ctx context.Context, storeID int, filters sqdc.Filters) ([]*models.Strain, error) {
	if filters == nil {
		filters = sqdc.DefaultFilters()
	}
	listingURL := filters.ListingURL()

	page, err := a.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	sess, err := session.NewProvider(a.browser, a.dob).Login(session.WrapPage(page))
	if err != nil {
		return nil, fmt.Errorf("session bootstrap failed: %w", err)
	}

	listing := NewListingPage(page, a.limiter)
	if err := listing.Navigate(listingURL); err != nil {
		return nil, err
	}

	clientOpts := append([]sqdc.Option{sqdc.WithReferer(listingURL)}, a.clientOpts...)
	client := sqdc.NewClient(sess.Cookies, storeID, clientOpts...)

	items, err := client.GetStoreInventory(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("fetched inventory", "store_id", storeID, "items", len(items))

	set := catalog.BuildFromInventory(items)

	prices, err := client.CalculatePrices(ctx, set.SKUs())
	if err != nil {
		return nil, err
	}
	catalog.ApplyPrices(prices, set)

	pages, updated, err := catalog.NewWalker().Walk(ctx, listing, set)
	if err != nil {
		return nil, err
	}
	a.logger.Info("pagination walk complete", "pages", pages, "updated", updated)

	processed := set.Processed()
	a.logger.Info("run complete",
		"store_id", storeID,
		"strains", set.Len(),
		"processed", len(processed))
	return processed, nil
}
