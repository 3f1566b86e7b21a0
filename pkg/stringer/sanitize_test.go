package stringer

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestNormalizeFloatStr(t *testing.T) {
  cases := []struct {
    name     string
    input    string
    expected string
  }{
    {name: "plain", input: "85", expected: "85"},
    {name: "currency symbol", input: "$1,299.95", expected: "1299.95"},
    {name: "comma decimal", input: "92,50", expected: "92.50"},
    {name: "trailing separator", input: "100.", expected: "0"},
    {name: "empty", input: "", expected: "0"},
    {name: "letters only", input: "unavailable", expected: "0"},
  }

  for _, tc := range cases {
    tc := tc

    t.Run(tc.name, func(t *testing.T) {
      assert.Equal(t, tc.expected, NormalizeFloatStr(tc.input))
    })
  }
}

func TestParseFloatStr(t *testing.T) {
  assert.InDelta(t, 1299.95, ParseFloatStr("$1,299.95"), 1e-9)
  assert.InDelta(t, 85, ParseFloatStr("85"), 1e-9)
  assert.Zero(t, ParseFloatStr("out of stock"))
}

func TestStripTags(t *testing.T) {
  assert.Equal(t, "Sony WH-1000XM5", StripTags("<span id=\"productTitle\"> Sony WH-1000XM5 </span>"))
}

func TestSanitizeString(t *testing.T) {
  assert.Equal(t, "Sony WH-1000XM5 Headphones", SanitizeString("Sony   WH-1000XM5\n\tHeadphones "))
}

func TestParseIntStr(t *testing.T) {
  assert.Equal(t, 40, ParseIntStr("-40%"))
}
