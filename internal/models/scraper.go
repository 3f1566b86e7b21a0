package models

import "context"

// Scraper performs one fetch-and-parse cycle against an external page.
// A nil result without an error means the page yielded no product.
type Scraper interface {
  Scrape(ctx context.Context, url string) (*ScrapedProduct, error)
}
