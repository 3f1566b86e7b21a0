package refresher

import (
  "encoding/json"
  "net/http"

  "github.com/go-chi/chi/v5"
  "github.com/pricewise/pricewatch/internal/models"
  log "github.com/sirupsen/logrus"
)

type refreshResponse struct {
  Message string                  `json:"message"`
  Data    []models.ProductOutcome `json:"data"`
}

func (c *Refresher) Handler() http.Handler {
  router := chi.NewRouter()

  router.Get("/api/cron", c.handleRefresh)

  return router
}

func (c *Refresher) handleRefresh(w http.ResponseWriter, r *http.Request) {
  summary, err := c.Run(r.Context())
  if err != nil {
    log.Errorf("refresher.handleRefresh: %v", err)

    http.Error(w, err.Error(), http.StatusInternalServerError)
    return
  }

  w.Header().Set("Content-Type", "application/json")

  if err = json.NewEncoder(w).Encode(refreshResponse{
    Message: "Ok",
    Data:    summary.Results,
  }); err != nil {
    log.Errorf("refresher.handleRefresh: encode: %v", err)
  }
}
