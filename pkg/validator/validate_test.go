package validator

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
  assert.NoError(t, URL("https://www.amazon.com/dp/B09XS7JWHH"))
  assert.Error(t, URL("not a url"))
  assert.Error(t, URL(""))
}
