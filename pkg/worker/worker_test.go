package worker

import (
  "context"
  "fmt"
  "sync/atomic"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestGroupWaitsForAllCalls(t *testing.T) {
  ctx := context.Background()

  var counter int64

  group := NewGroup()

  for index := 0; index < 100; index++ {
    group.Go(ctx, func(ctx context.Context) error {
      atomic.AddInt64(&counter, 1)
      return nil
    })
  }

  errs := group.Wait()

  require.Empty(t, errs)
  assert.EqualValues(t, 100, counter)
}

func TestGroupCollectsErrors(t *testing.T) {
  ctx := context.Background()

  group := NewGroup()

  for index := 0; index < 5; index++ {
    index := index

    group.Go(ctx, func(ctx context.Context) error {
      if index%2 == 0 {
        return fmt.Errorf("call %d failed", index)
      }
      return nil
    })
  }

  errs := group.Wait()

  assert.Len(t, errs, 3)
}

func TestGroupFailureDoesNotAbortSiblings(t *testing.T) {
  ctx := context.Background()

  var counter int64

  group := NewGroup()

  group.Go(ctx, func(ctx context.Context) error {
    return fmt.Errorf("boom")
  })
  group.Go(ctx, func(ctx context.Context) error {
    atomic.AddInt64(&counter, 1)
    return nil
  })

  errs := group.Wait()

  require.Len(t, errs, 1)
  assert.EqualValues(t, 1, counter)
}
