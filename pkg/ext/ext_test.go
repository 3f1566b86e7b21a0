package ext

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestIsImageURL(t *testing.T) {
  assert.True(t, IsImageURL("https://m.media-amazon.com/images/I/example.jpg"))
  assert.True(t, IsImageURL("https://example.com/pic.PNG?size=large"))
  assert.False(t, IsImageURL("https://example.com/script.js"))
  assert.False(t, IsImageURL("https://example.com/noextension"))
}
