package ext

import (
  "net/url"
  "strings"

  set "github.com/deckarep/golang-set/v2"
)

var extImage = set.NewSet("jpg", "jpeg", "png", "svg", "webp")

func IsImageURL(value string) bool {
  parsed, err := url.Parse(value)
  if err != nil {
    return false
  }

  parts := strings.Split(parsed.Path, ".")
  if len(parts) < 2 {
    return false
  }
  extension := strings.ToLower(parts[len(parts)-1])

  return extImage.ContainsOne(extension)
}
