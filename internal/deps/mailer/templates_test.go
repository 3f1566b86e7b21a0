package mailer

import (
  "strings"
  "testing"

  "github.com/pricewise/pricewatch/internal/models"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestRenderBodyTargetMet(t *testing.T) {
  info := models.ProductInfo{
    Title: "Sony WH-1000XM5",
    URL:   "https://www.amazon.com/dp/B09XS7JWHH",
    Price: 90,
  }

  content, err := RenderBody(info, models.NotificationTargetMet)
  require.NoError(t, err)

  assert.Contains(t, content.Subject, "Sony WH-1000XM5")
  assert.Contains(t, content.Body, "$90.00")
  assert.Contains(t, content.Body, info.URL)
  assert.NotEmpty(t, content.SHA256)
}

func TestRenderBodyAllKinds(t *testing.T) {
  info := models.ProductInfo{Title: "Gadget", URL: "https://www.amazon.com/dp/B0TEST", Price: 19.99}

  kinds := []models.NotificationKind{
    models.NotificationWelcome,
    models.NotificationBackInStock,
    models.NotificationLowestPrice,
    models.NotificationThresholdMet,
    models.NotificationTargetMet,
  }

  for _, kind := range kinds {
    kind := kind

    t.Run(string(kind), func(t *testing.T) {
      content, err := RenderBody(info, kind)
      require.NoError(t, err)

      assert.NotEmpty(t, content.Subject)
      assert.Contains(t, content.Body, info.URL)
    })
  }
}

func TestRenderBodyUnknownKind(t *testing.T) {
  _, err := RenderBody(models.ProductInfo{}, models.NotificationKind("bogus"))

  assert.Error(t, err)
}

func TestRenderBodyShortensLongTitles(t *testing.T) {
  info := models.ProductInfo{
    Title: strings.Repeat("x", 100),
    URL:   "https://www.amazon.com/dp/B0TEST",
  }

  content, err := RenderBody(info, models.NotificationWelcome)
  require.NoError(t, err)

  assert.Contains(t, content.Subject, "...")
  assert.NotContains(t, content.Subject, strings.Repeat("x", 41))
}
