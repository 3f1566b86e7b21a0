package money

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
  assert.Equal(t, "$90.00", String(90))
  assert.Equal(t, "$1,299.95", String(1299.95))
  assert.Equal(t, "$0.00", String(0))
}
