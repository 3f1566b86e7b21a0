package amazon

import (
  "context"
  "fmt"
  "regexp"
  "time"

  "github.com/pricewise/pricewatch/internal/models"
  "github.com/pricewise/pricewatch/pkg/ext"
  "github.com/pricewise/pricewatch/pkg/parser/xpath"
  "github.com/pricewise/pricewatch/pkg/stringer"
  "github.com/pricewise/pricewatch/pkg/validator"
  log "github.com/sirupsen/logrus"
)

var regexURL = regexp.MustCompile(`https?://(www\.)?amazon\.[a-z.]+/.+`)

var regexCurrency = regexp.MustCompile(`[$€£¥₹]`)

const (
  xpathTitle         = `//span[@id="productTitle"]`
  xpathPriceToPay    = `//span[contains(@class,"priceToPay")]//span[@class="a-offscreen"]`
  xpathPriceFallback = `//span[@id="priceblock_ourprice" or @id="priceblock_dealprice"]`
  xpathPriceOriginal = `//span[contains(@class,"a-text-price") and contains(@class,"basisPrice")]//span[@class="a-offscreen"]`
  xpathSavings       = `//span[contains(@class,"savingsPercentage")]`
  xpathAvailability  = `//div[@id="availability"]//span`
  xpathImage         = `//img[@id="landingImage"]`
)

type Parser struct {
  deps Dependencies
}

type Dependencies struct {
  Xpath *xpath.Parser
}

func NewParser(deps Dependencies) *Parser {
  return &Parser{deps: deps}
}

func validateURL(url string) error {
  if err := validator.URL(url); err != nil {
    return fmt.Errorf("url invalid: %w", err)
  }
  if !regexURL.MatchString(url) {
    return fmt.Errorf("url %s does not match regex %s", url, regexURL.String())
  }
  return nil
}

func (p *Parser) Scrape(ctx context.Context, url string) (*models.ScrapedProduct, error) {
  log.
    WithField("scrape.url", url).
    Debug("amazon product scrape started")

  if err := validateURL(url); err != nil {
    return nil, fmt.Errorf("invalid url: %s. error: %w", url, err)
  }

  doc, err := p.deps.Xpath.GetHtmlDoc(ctx, url)
  if err != nil {
    return nil, fmt.Errorf("p.deps.Xpath.GetHtmlDoc: %w", err)
  }

  scraped, err := parseDocument(doc)
  if err != nil {
    return nil, fmt.Errorf("parseDocument: %w", err)
  }

  log.
    WithFields(log.Fields{
      "scrape.url":           url,
      "scrape.title":         scraped.Title,
      "scrape.current_price": scraped.CurrentPrice,
    }).
    Debug("amazon product scrape completed")

  return scraped, nil
}

func parseDocument(doc *xpath.HtmlDocument) (*models.ScrapedProduct, error) {
  title, ok := findTitle(doc)
  if !ok {
    return nil, fmt.Errorf("product title not found: %s", doc.Url)
  }

  priceString, ok := findPriceString(doc)
  if !ok {
    return nil, fmt.Errorf("product price not found: %s", doc.Url)
  }

  currentPrice := stringer.ParseFloatStr(priceString)
  if currentPrice <= 0 {
    return nil, fmt.Errorf("product price %q not parsable: %s", priceString, doc.Url)
  }

  originalPrice := currentPrice
  if originalString, found := findOriginalPriceString(doc); found {
    if parsed := stringer.ParseFloatStr(originalString); parsed > 0 {
      originalPrice = parsed
    }
  }

  scraped := &models.ScrapedProduct{
    URL:           doc.Url,
    Title:         title,
    Currency:      findCurrency(priceString),
    ImageURL:      findImageURL(doc),
    CurrentPrice:  currentPrice,
    OriginalPrice: originalPrice,
    DiscountRate:  findDiscountRate(doc, currentPrice, originalPrice),
    IsOutOfStock:  findOutOfStock(doc),
    ParsedAt:      time.Now(),
  }

  return scraped, nil
}

func findTitle(doc *xpath.HtmlDocument) (string, bool) {
  node := xpath.GetFirstElement(doc, xpathTitle)

  title, ok := xpath.GetInnerText(node)
  if !ok {
    return "", false
  }

  return stringer.ToTitle(title), true
}

func findPriceString(doc *xpath.HtmlDocument) (string, bool) {
  if node := xpath.GetFirstElement(doc, xpathPriceToPay); node != nil {
    if value, ok := xpath.GetInnerText(node); ok {
      return value, true
    }
  }

  node := xpath.GetFirstElement(doc, xpathPriceFallback)

  return xpath.GetInnerText(node)
}

func findOriginalPriceString(doc *xpath.HtmlDocument) (string, bool) {
  node := xpath.GetFirstElement(doc, xpathPriceOriginal)

  return xpath.GetInnerText(node)
}

func findCurrency(priceString string) string {
  if symbol := regexCurrency.FindString(priceString); symbol != "" {
    return symbol
  }
  return "$"
}

func findImageURL(doc *xpath.HtmlDocument) string {
  node := xpath.GetFirstElement(doc, xpathImage)

  src, ok := xpath.GetAttribute(node, "src")
  if !ok || !ext.IsImageURL(src) {
    return ""
  }

  return src
}

func findDiscountRate(doc *xpath.HtmlDocument, currentPrice, originalPrice float64) float64 {
  if node := xpath.GetFirstElement(doc, xpathSavings); node != nil {
    if value, ok := xpath.GetInnerText(node); ok {
      if rate := stringer.ParseIntStr(value); rate > 0 {
        return float64(rate)
      }
    }
  }

  if originalPrice <= currentPrice {
    return 0
  }

  return (originalPrice - currentPrice) / originalPrice * 100
}

func findOutOfStock(doc *xpath.HtmlDocument) bool {
  node := xpath.GetFirstElement(doc, xpathAvailability)

  value, ok := xpath.GetInnerText(node)
  if !ok {
    return false
  }

  return stringer.ContainsFold(value, "unavailable", "out of stock")
}
