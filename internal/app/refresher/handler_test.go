package refresher

import (
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/pricewise/pricewatch/internal/models"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestHandlerOk(t *testing.T) {
  storage := &fakeStorage{trackings: []models.Tracking{trackingFixture()}}
  scraper := &fakeScraper{}
  sender := &fakeMailer{}

  server := httptest.NewServer(newRefresherForTest(storage, scraper, sender).Handler())
  defer server.Close()

  resp, err := http.Get(server.URL + "/api/cron")
  require.NoError(t, err)
  defer resp.Body.Close()

  require.Equal(t, http.StatusOK, resp.StatusCode)
  assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

  var payload refreshResponse
  require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

  assert.Equal(t, "Ok", payload.Message)
  require.Len(t, payload.Data, 1)
  assert.Equal(t, models.OutcomeAbsent, payload.Data[0].Status)
}

func TestHandlerBulkReadFailure(t *testing.T) {
  storage := &fakeStorage{findErr: fmt.Errorf("connection refused")}

  server := httptest.NewServer(newRefresherForTest(storage, &fakeScraper{}, &fakeMailer{}).Handler())
  defer server.Close()

  resp, err := http.Get(server.URL + "/api/cron")
  require.NoError(t, err)
  defer resp.Body.Close()

  assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
