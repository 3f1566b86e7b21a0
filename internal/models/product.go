package models

import (
  "fmt"
  "time"

  "github.com/pricewise/pricewatch/pkg/pricing"
  "github.com/samber/lo"
)

// Tracking is a monitored e-commerce page with its accumulated
// price history and subscriber list. Stored one document per URL.
type Tracking struct {
  URL           string             `bson:"url" json:"url"`
  Title         string             `bson:"title" json:"title"`
  Currency      string             `bson:"currency" json:"currency"`
  ImageURL      string             `bson:"image_url" json:"image_url"`
  CurrentPrice  float64            `bson:"current_price" json:"current_price"`
  OriginalPrice float64            `bson:"original_price" json:"original_price"`
  DiscountRate  float64            `bson:"discount_rate" json:"discount_rate"`
  IsOutOfStock  bool               `bson:"is_out_of_stock" json:"is_out_of_stock"`
  PriceHistory  []PricePoint       `bson:"price_history" json:"price_history"`
  LowestPrice   float64            `bson:"lowest_price" json:"lowest_price"`
  HighestPrice  float64            `bson:"highest_price" json:"highest_price"`
  AveragePrice  float64            `bson:"average_price" json:"average_price"`
  Users         []Subscriber       `bson:"users" json:"users"`
  Timestamps    TrackingTimestamps `bson:"timestamps" json:"timestamps"`
}

type TrackingTimestamps struct {
  CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
  RefreshedAt *time.Time `bson:"refreshed_at" json:"refreshed_at"`
}

// PricePoint is a single immutable price observation.
// History order is insertion order, never reordered or deduplicated.
type PricePoint struct {
  Price float64   `bson:"price" json:"price"`
  At    time.Time `bson:"at" json:"at"`
}

type Subscriber struct {
  Email       string  `bson:"email" json:"email"`
  TargetPrice float64 `bson:"my_price" json:"my_price"`
}

func (s Subscriber) TargetMet(currentPrice float64) bool {
  return currentPrice <= s.TargetPrice
}

// ScrapedProduct is the ephemeral result of one scrape cycle.
// It is never persisted directly, only merged into a Tracking snapshot.
type ScrapedProduct struct {
  URL           string    `json:"url"`
  Title         string    `json:"title"`
  ImageURL      string    `json:"image_url"`
  Currency      string    `json:"currency"`
  CurrentPrice  float64   `json:"current_price"`
  OriginalPrice float64   `json:"original_price"`
  DiscountRate  float64   `json:"discount_rate"`
  IsOutOfStock  bool      `json:"is_out_of_stock"`
  ParsedAt      time.Time `json:"parsed_at"`
}

// WithScrape merges a fresh scrape into the tracking: the scraped fields
// overwrite the stored ones, the scraped current price is appended to the
// history and the summary statistics are recomputed over the full history.
// The receiver is not mutated.
func (t Tracking) WithScrape(scraped ScrapedProduct, at time.Time) (Tracking, error) {
  history := make([]PricePoint, 0, len(t.PriceHistory)+1)
  history = append(history, t.PriceHistory...)
  history = append(history, PricePoint{
    Price: scraped.CurrentPrice,
    At:    at,
  })

  prices := lo.Map(history, func(point PricePoint, _ int) float64 {
    return point.Price
  })

  summary, err := pricing.Summarize(prices)
  if err != nil {
    return Tracking{}, fmt.Errorf("pricing.Summarize: %w", err)
  }

  updated := t

  updated.Title = scraped.Title
  updated.Currency = scraped.Currency
  updated.ImageURL = scraped.ImageURL
  updated.CurrentPrice = scraped.CurrentPrice
  updated.OriginalPrice = scraped.OriginalPrice
  updated.DiscountRate = scraped.DiscountRate
  updated.IsOutOfStock = scraped.IsOutOfStock

  updated.PriceHistory = history
  updated.LowestPrice = summary.Lowest
  updated.HighestPrice = summary.Highest
  updated.AveragePrice = summary.Average

  updated.Timestamps.RefreshedAt = lo.ToPtr(at)

  return updated, nil
}
