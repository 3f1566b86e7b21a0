package pricing

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
  summary, err := Summarize([]float64{100, 85})
  require.NoError(t, err)

  assert.InDelta(t, 85, summary.Lowest, 1e-9)
  assert.InDelta(t, 100, summary.Highest, 1e-9)
  assert.InDelta(t, 92.5, summary.Average, 1e-9)
}

func TestSummarizeSingleObservation(t *testing.T) {
  summary, err := Summarize([]float64{49.99})
  require.NoError(t, err)

  assert.InDelta(t, 49.99, summary.Lowest, 1e-9)
  assert.InDelta(t, 49.99, summary.Highest, 1e-9)
  assert.InDelta(t, 49.99, summary.Average, 1e-9)
}

func TestSummarizeOrdering(t *testing.T) {
  histories := [][]float64{
    {100, 85},
    {10, 10, 10},
    {1, 2, 3, 4, 5},
    {99.99, 0.01, 50},
  }

  for _, prices := range histories {
    summary, err := Summarize(prices)
    require.NoError(t, err)

    assert.LessOrEqual(t, summary.Lowest, summary.Average)
    assert.LessOrEqual(t, summary.Average, summary.Highest)
  }
}

func TestEmptyHistory(t *testing.T) {
  _, err := Lowest(nil)
  assert.ErrorIs(t, err, ErrEmptyHistory)

  _, err = Highest(nil)
  assert.ErrorIs(t, err, ErrEmptyHistory)

  _, err = Average(nil)
  assert.ErrorIs(t, err, ErrEmptyHistory)

  _, err = Summarize([]float64{})
  assert.ErrorIs(t, err, ErrEmptyHistory)
}
