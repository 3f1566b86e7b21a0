package mailer

import (
  "fmt"

  "github.com/pricewise/pricewatch/internal/models"
  "github.com/pricewise/pricewatch/pkg/hasher"
  "github.com/pricewise/pricewatch/pkg/money"
)

const shortTitleLimit = 40

// RenderBody builds the subject and HTML body for a notification kind.
// Pure; delivery is the Client's job.
func RenderBody(info models.ProductInfo, kind models.NotificationKind) (models.EmailContent, error) {
  title := shortenTitle(info.Title)

  var subject, body string

  switch kind {
  case models.NotificationWelcome:
    subject = fmt.Sprintf("Welcome to price tracking for %s", title)
    body = fmt.Sprintf(`<div>
<h2>Welcome to Pricewatch 🚀</h2>
<p>You are now tracking %s.</p>
<p>We will keep an eye on <a href="%s" target="_blank">%s</a> and let you know as soon as something changes.</p>
</div>`, title, info.URL, title)

  case models.NotificationBackInStock:
    subject = fmt.Sprintf("%s is now back in stock!", title)
    body = fmt.Sprintf(`<div>
<h4>%s is restocked! Grab yours before they run out again!</h4>
<p>See the product <a href="%s" target="_blank">here</a>.</p>
</div>`, title, info.URL)

  case models.NotificationLowestPrice:
    subject = fmt.Sprintf("Lowest price alert for %s", title)
    body = fmt.Sprintf(`<div>
<h4>%s has reached its lowest price ever %s!</h4>
<p>Grab it <a href="%s" target="_blank">right away</a>.</p>
</div>`, title, money.String(info.Price), info.URL)

  case models.NotificationThresholdMet:
    subject = fmt.Sprintf("Discount alert for %s", title)
    body = fmt.Sprintf(`<div>
<h4>%s is now more than %d%% off its original price!</h4>
<p>Grab it <a href="%s" target="_blank">here</a>.</p>
</div>`, title, models.DiscountThresholdPercent, info.URL)

  case models.NotificationTargetMet:
    subject = fmt.Sprintf("Price target reached for %s", title)
    body = fmt.Sprintf(`<div>
<h4>%s dropped to your target price of %s!</h4>
<p>See it <a href="%s" target="_blank">here</a>.</p>
</div>`, title, money.String(info.Price), info.URL)

  default:
    return models.EmailContent{}, fmt.Errorf("unknown notification kind: %s", kind)
  }

  return models.EmailContent{
    Subject: subject,
    Body:    body,
    SHA256:  hasher.SHA256(body),
  }, nil
}

func shortenTitle(title string) string {
  runes := []rune(title)

  if len(runes) <= shortTitleLimit {
    return title
  }
  return string(runes[:shortTitleLimit]) + "..."
}
