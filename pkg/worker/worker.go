package worker

import (
  "context"
  "sync"

  log "github.com/sirupsen/logrus"
)

type Call func(ctx context.Context) error

// Group runs one goroutine per pushed call and collects their errors.
// Unlike a fixed pool there is no bound on calls in flight.
type Group struct {
  wg   sync.WaitGroup
  mu   sync.Mutex
  errs []error
}

func NewGroup() *Group {
  return &Group{}
}

func (g *Group) Go(ctx context.Context, call Call) {
  g.wg.Add(1)

  go func() {
    defer g.wg.Done()

    select {
    case <-ctx.Done():
      log.Warn("worker.group: context cancelled: call skipped")

      g.appendErr(ctx.Err())
      return

    default:
    }

    if err := call(ctx); err != nil {
      log.Errorf("worker.group: call failed: %v", err)

      g.appendErr(err)
    }
  }()
}

func (g *Group) appendErr(err error) {
  g.mu.Lock()
  defer g.mu.Unlock()

  g.errs = append(g.errs, err)
}

// Wait blocks until every pushed call has returned.
func (g *Group) Wait() []error {
  g.wg.Wait()

  g.mu.Lock()
  defer g.mu.Unlock()

  return g.errs
}
