package refresher

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"
  "github.com/pricewise/pricewatch/internal/deps/mailer"
  "github.com/pricewise/pricewatch/internal/models"
  "github.com/pricewise/pricewatch/pkg/worker"
  log "github.com/sirupsen/logrus"
)

// Run refreshes every tracked product once: scrape, extend history,
// recompute statistics, persist and notify on notify-worthy changes.
// One task per product, all independent; the run waits for all of them.
func (c *Refresher) Run(ctx context.Context) (*models.RunSummary, error) {
  runId := uuid.NewString()

  trackings, err := c.deps.Storage.FindAll(ctx)
  if err != nil {
    return nil, fmt.Errorf("%w: failed to get all products: %w", ErrRefreshJob, err)
  }

  log.
    WithFields(log.Fields{
      "run.uuid":      runId,
      "run.trackings": len(trackings),
    }).
    Info("refresh run starting")

  outcomes := make([]models.ProductOutcome, len(trackings))

  group := worker.NewGroup()

  for index, tracking := range trackings {
    index, tracking := index, tracking

    group.Go(ctx, func(ctx context.Context) error {
      outcomes[index] = c.refresh(ctx, tracking)
      return nil
    })
  }

  group.Wait()

  summary := &models.RunSummary{
    UUID:    runId,
    Status:  models.RunStatusOk,
    Results: outcomes,
  }

  counts := summary.Counts()

  log.
    WithFields(log.Fields{
      "run.uuid":    runId,
      "run.updated": counts[models.OutcomeUpdated],
      "run.skipped": counts[models.OutcomeSkipped],
      "run.absent":  counts[models.OutcomeAbsent],
      "run.failed":  counts[models.OutcomeFailed],
    }).
    Info("refresh run completed")

  return summary, nil
}

// refresh handles a single tracked product. Every failure is absorbed
// into the outcome so a product can never abort its siblings.
func (c *Refresher) refresh(ctx context.Context, tracking models.Tracking) models.ProductOutcome {
  scraped, err := c.deps.Scraper.Scrape(ctx, tracking.URL)
  if err != nil {
    log.
      WithField("tracking.url", tracking.URL).
      Warnf("scrape yielded nothing: %v", err)

    return models.AbsentOutcome(tracking.URL)
  }
  if scraped == nil {
    return models.AbsentOutcome(tracking.URL)
  }

  updated, err := tracking.WithScrape(*scraped, time.Now())
  if err != nil {
    return models.FailedOutcome(tracking.URL, fmt.Errorf("tracking.WithScrape: %w", err))
  }

  kind, ok := models.ClassifyNotification(*scraped, tracking)
  if !ok {
    // Records are written only on notify-worthy transitions, so this
    // scrape's data is dropped for the cycle and the history is not a
    // continuous time series.
    return models.SkippedOutcome(tracking)
  }

  log.
    WithFields(log.Fields{
      "tracking.url":      tracking.URL,
      "notification.kind": kind,
    }).
    Info("notify-worthy change detected")

  if err = c.deps.Storage.UpdateByURL(ctx, updated); err != nil {
    return models.FailedOutcome(tracking.URL, fmt.Errorf("c.deps.Storage.UpdateByURL: %w", err))
  }

  if errs := c.notifySubscribers(ctx, updated, *scraped); len(errs) > 0 {
    return models.FailedOutcome(tracking.URL, fmt.Errorf("notify subscribers: %s", joinErrs(errs)))
  }

  return models.UpdatedOutcome(updated)
}

// notifySubscribers emails every subscriber whose target price the
// fresh scrape met and retracts their alert. Users run independently,
// one user's failure never blocks the others.
func (c *Refresher) notifySubscribers(ctx context.Context, updated models.Tracking, scraped models.ScrapedProduct) []error {
  group := worker.NewGroup()

  for _, user := range updated.Users {
    user := user

    if !user.TargetMet(scraped.CurrentPrice) {
      continue
    }

    group.Go(ctx, func(ctx context.Context) error {
      if err := c.notifyUser(ctx, updated, user); err != nil {
        return fmt.Errorf("user %s: %w", user.Email, err)
      }
      return nil
    })
  }

  return group.Wait()
}

func (c *Refresher) notifyUser(ctx context.Context, tracking models.Tracking, user models.Subscriber) error {
  info := models.ProductInfo{
    Title: tracking.Title,
    URL:   tracking.URL,
    Price: user.TargetPrice,
  }

  content, err := mailer.RenderBody(info, models.NotificationTargetMet)
  if err != nil {
    return fmt.Errorf("mailer.RenderBody: %w", err)
  }

  if err = c.deps.Mailer.Send(ctx, content, []string{user.Email}); err != nil {
    return fmt.Errorf("c.deps.Mailer.Send: %w", err)
  }

  if err = c.deps.Storage.RetractAlert(ctx, tracking.URL, user.Email); err != nil {
    return fmt.Errorf("c.deps.Storage.RetractAlert: %w", err)
  }

  log.
    WithFields(log.Fields{
      "tracking.url": tracking.URL,
      "user.email":   user.Email,
    }).
    Info("target met: user notified and alert retracted")

  return nil
}

func joinErrs(errs []error) string {
  parts := make([]string, 0, len(errs))
  for _, err := range errs {
    parts = append(parts, err.Error())
  }
  return strings.Join(parts, "; ")
}
