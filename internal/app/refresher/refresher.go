package refresher

import (
  "context"
  "errors"

  "github.com/pricewise/pricewatch/internal/models"
)

// ErrRefreshJob wraps any failure that aborts a whole refresh run.
// Per-product failures never do; they are collected into the summary.
var ErrRefreshJob = errors.New("refresh job failed")

type Storage interface {
  FindAll(ctx context.Context) ([]models.Tracking, error)
  UpdateByURL(ctx context.Context, tracking models.Tracking) error
  RetractAlert(ctx context.Context, url string, email string) error
}

type Mailer interface {
  Send(ctx context.Context, content models.EmailContent, recipients []string) error
}

type Refresher struct {
  deps Dependencies
}

type Dependencies struct {
  Storage Storage
  Scraper models.Scraper
  Mailer  Mailer
}

func NewRefresher(deps Dependencies) *Refresher {
  return &Refresher{deps: deps}
}
