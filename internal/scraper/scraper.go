package scraper

import "context"

// Scraper fetches page metadata used to fill in a listing submission.
type Scraper interface {
	// ScrapeMetadata returns the page title and meta description for url.
	ScrapeMetadata(ctx context.Context, url string) (title string, description string, err error)
}
