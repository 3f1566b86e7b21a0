package models

import "github.com/samber/lo"

type OutcomeStatus string

const (
  // OutcomeUpdated: notify-worthy change, record persisted.
  OutcomeUpdated OutcomeStatus = "updated"
  // OutcomeSkipped: scrape succeeded but no notify-worthy change,
  // record left untouched.
  OutcomeSkipped OutcomeStatus = "skipped"
  // OutcomeAbsent: scrape yielded nothing, record left untouched.
  OutcomeAbsent OutcomeStatus = "absent"
  // OutcomeFailed: persistence or notification failed for this product.
  OutcomeFailed OutcomeStatus = "failed"
)

type ProductOutcome struct {
  URL     string        `json:"url"`
  Status  OutcomeStatus `json:"status"`
  Product *Tracking     `json:"product,omitempty"`
  Error   string        `json:"error,omitempty"`
}

const RunStatusOk = "ok"

type RunSummary struct {
  UUID    string           `json:"uuid"`
  Status  string           `json:"status"`
  Results []ProductOutcome `json:"results"`
}

func (s RunSummary) Counts() map[OutcomeStatus]int {
  return lo.CountValuesBy(s.Results, func(outcome ProductOutcome) OutcomeStatus {
    return outcome.Status
  })
}

func UpdatedOutcome(tracking Tracking) ProductOutcome {
  return ProductOutcome{
    URL:     tracking.URL,
    Status:  OutcomeUpdated,
    Product: lo.ToPtr(tracking),
  }
}

func SkippedOutcome(tracking Tracking) ProductOutcome {
  return ProductOutcome{
    URL:     tracking.URL,
    Status:  OutcomeSkipped,
    Product: lo.ToPtr(tracking),
  }
}

func AbsentOutcome(url string) ProductOutcome {
  return ProductOutcome{
    URL:    url,
    Status: OutcomeAbsent,
  }
}

func FailedOutcome(url string, err error) ProductOutcome {
  outcome := ProductOutcome{
    URL:    url,
    Status: OutcomeFailed,
  }
  if err != nil {
    outcome.Error = err.Error()
  }
  return outcome
}
