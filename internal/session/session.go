// Package session bootstraps an authenticated SQDC browser session by
// walking the cookie banner and age-gate form, then capturing the resulting
// cookie set for the JSON API client.
package session

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	homeURL = "https://www.sqdc.ca/en-CA/"

	cookieBannerSelector = "#didomi-notice-agree-button"
	monthSelector        = "#month"
	daySelector          = "#day"
	yearSelector         = "#year"
	submitSelector       = "button[type='submit']"

	// Short settle pause between form interactions.
	interactionPause = 500 * time.Millisecond
)

// Page is the minimal browser-page surface the login sequence drives.
type Page interface {
	Navigate(url string) error
	Click(selector string) error
	Fill(selector, value string) error
}

// CookieSource yields the browser context's current cookie set.
type CookieSource interface {
	Cookies() (map[string]string, error)
}

// playwrightPage adapts a live playwright page to the Page surface.
type playwrightPage struct {
	page playwright.Page
}

// WrapPage adapts a playwright page for the login sequence.
func WrapPage(page playwright.Page) Page {
	return playwrightPage{page: page}
}

func (p playwrightPage) Navigate(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	return err
}

func (p playwrightPage) Click(selector string) error {
	return p.page.Locator(selector).Click()
}

func (p playwrightPage) Fill(selector, value string) error {
	return p.page.Locator(selector).Fill(value)
}

// DateOfBirth is the age-gate answer.
type DateOfBirth struct {
	Day   int
	Month int
	Year  int
}

// Session is the captured authenticated state. The cookie set is read-only
// for the rest of the run; a run fails outright if it expires.
type Session struct {
	Cookies map[string]string
}

// Provider drives the login sequence against a live page.
type Provider struct {
	cookies CookieSource
	dob     DateOfBirth
	pause   time.Duration
	logger  *slog.Logger
}

func NewProvider(cookies CookieSource, dob DateOfBirth) *Provider {
	return &Provider{
		cookies: cookies,
		dob:     dob,
		pause:   interactionPause,
		logger:  slog.Default().With("component", "session"),
	}
}

// Login accepts the cookie banner, submits the date of birth and extracts
// the session cookies. Missing login elements are fatal for the run.
func (p *Provider) Login(page Page) (*Session, error) {
	p.logger.Info("starting log-in sequence")

	if err := page.Navigate(homeURL); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", homeURL, err)
	}

	p.logger.Info("accepting cookie banner")
	if err := page.Click(cookieBannerSelector); err != nil {
		return nil, fmt.Errorf("failed to accept cookie banner: %w", err)
	}
	time.Sleep(p.pause)

	p.logger.Info("entering date of birth")
	fields := []struct {
		selector string
		value    int
	}{
		{monthSelector, p.dob.Month},
		{daySelector, p.dob.Day},
		{yearSelector, p.dob.Year},
	}
	for _, f := range fields {
		if err := page.Fill(f.selector, strconv.Itoa(f.value)); err != nil {
			return nil, fmt.Errorf("failed to fill age-gate field %s: %w", f.selector, err)
		}
	}

	if err := page.Click(submitSelector); err != nil {
		return nil, fmt.Errorf("failed to submit age gate: %w", err)
	}
	time.Sleep(p.pause)

	cookies, err := p.cookies.Cookies()
	if err != nil {
		return nil, fmt.Errorf("failed to capture session cookies: %w", err)
	}

	p.logger.Info("log-in sequence complete", "cookies", len(cookies))
	return &Session{Cookies: cookies}, nil
}
