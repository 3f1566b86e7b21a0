package models

type NotificationKind string

const (
  NotificationWelcome      NotificationKind = "welcome"
  NotificationBackInStock  NotificationKind = "back_in_stock"
  NotificationLowestPrice  NotificationKind = "lowest_price"
  NotificationThresholdMet NotificationKind = "threshold_met"
  NotificationTargetMet    NotificationKind = "target_met"
)

// DiscountThresholdPercent is the discount rate above which a refresh
// is considered notify-worthy on its own.
const DiscountThresholdPercent = 40

// ProductInfo is the payload rendered into a notification email.
type ProductInfo struct {
  Title string  `json:"title"`
  URL   string  `json:"url"`
  Price float64 `json:"price"`
}

type EmailContent struct {
  Subject string `json:"subject"`
  Body    string `json:"body"`
  SHA256  string `json:"sha256"`
}

// ClassifyNotification decides whether the transition between the stored
// snapshot and the fresh scrape warrants a notification. Pure and
// deterministic; first matching kind wins.
func ClassifyNotification(scraped ScrapedProduct, stored Tracking) (NotificationKind, bool) {
  switch {
  case scraped.CurrentPrice < stored.LowestPrice:
    return NotificationLowestPrice, true

  case !scraped.IsOutOfStock && stored.IsOutOfStock:
    return NotificationBackInStock, true

  case scraped.DiscountRate > DiscountThresholdPercent:
    return NotificationThresholdMet, true
  }

  return "", false
}
