package pricing

import "errors"

var ErrEmptyHistory = errors.New("price history is empty")

type Summary struct {
  Lowest  float64
  Highest float64
  Average float64
}

func Lowest(prices []float64) (float64, error) {
  if len(prices) == 0 {
    return 0, ErrEmptyHistory
  }

  lowest := prices[0]

  for _, price := range prices[1:] {
    if price < lowest {
      lowest = price
    }
  }

  return lowest, nil
}

func Highest(prices []float64) (float64, error) {
  if len(prices) == 0 {
    return 0, ErrEmptyHistory
  }

  highest := prices[0]

  for _, price := range prices[1:] {
    if price > highest {
      highest = price
    }
  }

  return highest, nil
}

func Average(prices []float64) (float64, error) {
  if len(prices) == 0 {
    return 0, ErrEmptyHistory
  }

  var sum float64

  for _, price := range prices {
    sum += price
  }

  return sum / float64(len(prices)), nil
}

func Summarize(prices []float64) (Summary, error) {
  lowest, err := Lowest(prices)
  if err != nil {
    return Summary{}, err
  }

  highest, err := Highest(prices)
  if err != nil {
    return Summary{}, err
  }

  average, err := Average(prices)
  if err != nil {
    return Summary{}, err
  }

  return Summary{
    Lowest:  lowest,
    Highest: highest,
    Average: average,
  }, nil
}
