package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrBrowserNotFound is returned when no Chromium binary can be located.
var ErrBrowserNotFound = errors.New("rod browser dependency not found")

// pageTimeout bounds a single page load.
const pageTimeout = 30 * time.Second

// descriptionSelectors are tried in order until one yields content.
var descriptionSelectors = []string{
	`meta[name="description"]`,
	`meta[property="og:description"]`,
	`meta[name="twitter:description"]`,
}

// RodScraper implements Scraper with a headless browser launched per call.
// Launches are rate limited since each one starts a Chromium process.
type RodScraper struct {
	log     logrus.FieldLogger
	limiter *rate.Limiter
}

// NewRodScraper allows one browser launch per interval. interval <= 0 disables the limit.
func NewRodScraper(interval time.Duration, logger logrus.FieldLogger) *RodScraper {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &RodScraper{
		log:     logger.WithField("component", "scraper"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// ScrapeMetadata loads url and reads its <title> and description meta tag.
func (s *RodScraper) ScrapeMetadata(ctx context.Context, url string) (title string, description string, err error) {
	log := s.log.WithField("url", url)

	if err := s.limiter.Wait(ctx); err != nil {
		return "", "", fmt.Errorf("scrape rate limit: %w", err)
	}

	path, exists := launcher.LookPath()
	if !exists {
		log.Error("Cannot find browser executable for rod")
		return "", "", ErrBrowserNotFound
	}
	controlURL, err := launcher.New().Bin(path).Launch()
	if err != nil {
		log.WithError(err).Error("Failed to launch browser")
		return "", "", fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		log.WithError(err).Error("Failed to connect to rod browser")
		return "", "", fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Error closing rod browser instance")
		}
	}()

	pageCtx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	page, err := browser.Context(pageCtx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		log.WithError(err).Error("Failed to open page")
		return "", "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		if errors.Is(pageCtx.Err(), context.DeadlineExceeded) {
			log.Warn("Scraping timed out")
			return "", "", fmt.Errorf("scraping timed out for %s: %w", url, pageCtx.Err())
		}
		return "", "", fmt.Errorf("failed waiting for page load: %w", err)
	}

	if info, err := page.Info(); err == nil {
		title = strings.TrimSpace(info.Title)
	}

	// Element() waits for a match, so only query selectors that exist right now.
	for _, selector := range descriptionSelectors {
		has, el, err := page.Has(selector)
		if err != nil || !has {
			continue
		}
		content, err := el.Attribute("content")
		if err != nil || content == nil {
			continue
		}
		if description = strings.TrimSpace(*content); description != "" {
			break
		}
	}

	log.WithFields(logrus.Fields{
		"title":           title,
		"has_description": description != "",
	}).Info("Metadata scraped")
	return title, description, nil
}
