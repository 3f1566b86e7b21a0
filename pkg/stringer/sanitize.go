package stringer

import (
  "html"
  "regexp"
  "strconv"
  "strings"

  "github.com/microcosm-cc/bluemonday"
  "golang.org/x/text/cases"
  "golang.org/x/text/language"
)

var (
  policy         = bluemonday.StrictPolicy()
  RegexNonDigit  = regexp.MustCompile(`[^0-9]`)
  RegexNonFloat  = regexp.MustCompile(`[^0-9.,]`)
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

func StripTags(s string) string {
  return strings.TrimSpace(policy.Sanitize(s))
}

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func SanitizeString(s string) string {
  s = RegexRepeatSep.ReplaceAllLiteralString(s, " ")
  s = html.UnescapeString(s)
  s = strings.TrimSpace(s)
  return s
}

// ContainsFold reports whether s contains any of parts, case-insensitively.
func ContainsFold(s string, parts ...string) bool {
  lowered := strings.ToLower(s)

  for _, part := range parts {
    if strings.Contains(lowered, strings.ToLower(part)) {
      return true
    }
  }
  return false
}

func ToTitle(s string, lang ...language.Tag) string {
  lTag := language.Und
  for _, l := range lang {
    lTag = l
    break
  }
  return cases.Title(lTag, cases.NoLower).String(s)
}

// NormalizeFloatStr strips everything except digits and separators,
// keeping only the last separator as the decimal point.
// "1,299.95$" -> "1299.95".
func NormalizeFloatStr(s string) string {
  const (
    sepComma      = ","
    sepPoint      = "."
    zeroAmountStr = "0"
  )

  s = RegexNonFloat.ReplaceAllString(s, "")
  s = strings.ReplaceAll(s, sepComma, sepPoint)

  parts := strings.Split(s, sepPoint)
  count := len(parts)

  if count == 0 || s == "" {
    return zeroAmountStr
  }
  if count == 1 {
    return s
  }

  frac := parts[count-1]
  if frac == "" {
    return zeroAmountStr
  }

  return strings.Join(parts[:count-1], "") + sepPoint + frac
}

func ParseFloatStr(s string) float64 {
  v, _ := strconv.ParseFloat(NormalizeFloatStr(s), 64)
  return v
}

func NormalizeIntStr(s string) string {
  return RegexNonDigit.ReplaceAllLiteralString(s, "")
}

func ParseIntStr(s string) int {
  v, _ := strconv.Atoi(NormalizeIntStr(s))
  return v
}
