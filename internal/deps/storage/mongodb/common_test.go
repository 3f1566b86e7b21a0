package mongodb

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "go.mongodb.org/mongo-driver/bson"
)

type testDoc struct {
  URL          string   `bson:"url"`
  Title        string   `bson:"title"`
  IsOutOfStock bool     `bson:"is_out_of_stock"`
  Price        float64  `bson:"price"`
  Note         *string  `bson:"note"`
  Ignored      string   `bson:"-"`
  History      []string `bson:"history"`
}

func TestMakeBsonDUpdatesSkipsKeyField(t *testing.T) {
  updates := makeBsonDUpdates(testDoc{URL: "https://example.com", Title: "A"})

  set := updatesSet(t, updates)

  assert.NotContains(t, keysOf(set), "url")
  assert.Contains(t, keysOf(set), "title")
}

func TestMakeBsonDUpdatesKeepsZeroScalars(t *testing.T) {
  updates := makeBsonDUpdates(testDoc{
    URL:          "https://example.com",
    IsOutOfStock: false,
    Price:        0,
  })

  keys := keysOf(updatesSet(t, updates))

  assert.Contains(t, keys, "is_out_of_stock")
  assert.Contains(t, keys, "price")
}

func TestMakeBsonDUpdatesSkipsNilPointersAndDashedTags(t *testing.T) {
  updates := makeBsonDUpdates(&testDoc{URL: "https://example.com", Ignored: "x"})

  keys := keysOf(updatesSet(t, updates))

  assert.NotContains(t, keys, "note")
  assert.NotContains(t, keys, "-")
}

func TestNewDecodeTarget(t *testing.T) {
  doc := newDecodeTarget(testDoc{})

  target, ok := doc.(*testDoc)
  require.True(t, ok)
  assert.Equal(t, testDoc{}, *target)

  _, ok = newDecodeTarget(nil).(map[string]any)
  assert.True(t, ok)
}

func TestMakeBsonDFilters(t *testing.T) {
  filters := makeBsonDFilters(map[string]any{"url": "https://example.com"})

  require.Len(t, filters, 1)
  assert.Equal(t, bson.E{Key: "url", Value: "https://example.com"}, filters[0])
}

func updatesSet(t *testing.T, updates bson.D) bson.D {
  t.Helper()

  require.Len(t, updates, 1)
  require.Equal(t, "$set", updates[0].Key)

  set, ok := updates[0].Value.(bson.D)
  require.True(t, ok)

  return set
}

func keysOf(set bson.D) []string {
  keys := make([]string, 0, len(set))
  for _, e := range set {
    keys = append(keys, e.Key)
  }
  return keys
}
