package mongodb

import (
  "context"
  "fmt"
  "reflect"

  log "github.com/sirupsen/logrus"
  "go.mongodb.org/mongo-driver/bson"
)

type CommonParams struct {
  Database   string
  Collection string
  StructType any
}

type ScanParams struct {
  CommonParams

  Filters  map[string]any
  Callback func(ctx context.Context, value any) error
}

// Scan streams every matching document through the callback, decoding
// each one into a fresh value of StructType.
func (c *Client) Scan(ctx context.Context, params ScanParams) error {
  filters := makeBsonDFilters(params.Filters)

  cursor, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    Find(ctx, filters)

  if err != nil {
    return fmt.Errorf("c.client.Database.Collection.Find: %w", err)
  }

  defer func() {
    if err = cursor.Close(ctx); err != nil {
      log.Errorf("mongodb.Scan: cursor.Close: %v", err)
    }
  }()

  for cursor.Next(ctx) {
    doc := newDecodeTarget(params.StructType)

    if err = cursor.Decode(doc); err != nil {
      return fmt.Errorf("cursor.Decode: %T: %w", doc, err)
    }

    if err = params.Callback(ctx, doc); err != nil {
      return fmt.Errorf("params.Callback: %T: %w", doc, err)
    }
  }

  if err = cursor.Err(); err != nil {
    return fmt.Errorf("cursor.Err: %w", err)
  }

  return nil
}

type UpdateParams struct {
  CommonParams

  Filters  map[string]any
  Document any
}

// Update overwrites the fields of the single document matching the
// filters. The first struct field is treated as the key and skipped.
func (c *Client) Update(ctx context.Context, params UpdateParams) (count int64, err error) {
  filters := makeBsonDFilters(params.Filters)
  updates := makeBsonDUpdates(params.Document)

  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    UpdateOne(ctx, filters, updates)

  if err != nil {
    return 0, fmt.Errorf("c.client.Database.Collection.UpdateOne: %w", err)
  }

  return res.MatchedCount, nil
}

type PullParams struct {
  CommonParams

  Filters map[string]any
  Field   string
  Match   map[string]any
}

// Pull removes array entries matching Match from Field on the documents
// matching Filters. Pulling an absent entry is a no-op.
func (c *Client) Pull(ctx context.Context, params PullParams) (count int64, err error) {
  filters := makeBsonDFilters(params.Filters)

  updates := bson.D{{
    Key: "$pull",
    Value: bson.D{{
      Key:   params.Field,
      Value: makeBsonDFilters(params.Match),
    }},
  }}

  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    UpdateOne(ctx, filters, updates)

  if err != nil {
    return 0, fmt.Errorf("c.client.Database.Collection.UpdateOne: %w", err)
  }

  return res.ModifiedCount, nil
}

func newDecodeTarget(structType any) any {
  if structType == nil {
    return any(make(map[string]any))
  }

  typ := reflect.TypeOf(structType)

  return reflect.New(typ).Interface()
}
