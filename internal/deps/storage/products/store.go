package products

import (
  "context"
  "errors"
  "fmt"

  "github.com/pricewise/pricewatch/internal/deps/storage/mongodb"
  "github.com/pricewise/pricewatch/internal/models"
)

const (
  databaseName   = "pricewatch"
  collectionName = "trackings"
)

// ErrDataAccess marks storage failures so callers can tell a failed
// bulk read apart from an empty collection.
var ErrDataAccess = errors.New("data access failed")

type Store struct {
  deps Dependencies
}

type Dependencies struct {
  Mongodb *mongodb.Client
}

func NewStore(deps Dependencies) *Store {
  return &Store{deps: deps}
}

func commonParams() mongodb.CommonParams {
  return mongodb.CommonParams{
    Database:   databaseName,
    Collection: collectionName,
    StructType: models.Tracking{},
  }
}

// FindAll returns every tracked product. Zero tracked products is a
// valid empty result, never an error.
func (s *Store) FindAll(ctx context.Context) ([]models.Tracking, error) {
  out := make([]models.Tracking, 0)

  err := s.deps.Mongodb.Scan(ctx, mongodb.ScanParams{
    CommonParams: commonParams(),

    Callback: func(_ context.Context, value any) error {
      tracking, ok := value.(*models.Tracking)
      if !ok {
        return fmt.Errorf("cast %v with type: %[1]T to: %T failed", value, new(models.Tracking))
      }

      out = append(out, *tracking)
      return nil
    },
  })
  if err != nil {
    return nil, fmt.Errorf("%w: s.deps.Mongodb.Scan: %v", ErrDataAccess, err)
  }

  return out, nil
}

// UpdateByURL overwrites the fields of the tracking document matching
// the URL. The document must already exist; this never inserts.
func (s *Store) UpdateByURL(ctx context.Context, tracking models.Tracking) error {
  matched, err := s.deps.Mongodb.Update(ctx, mongodb.UpdateParams{
    CommonParams: commonParams(),
    Filters: map[string]any{
      "url": tracking.URL,
    },
    Document: tracking,
  })
  if err != nil {
    return fmt.Errorf("%w: s.deps.Mongodb.Update: %v", ErrDataAccess, err)
  }

  if matched == 0 {
    return fmt.Errorf("%w: no tracking matched url %s", ErrDataAccess, tracking.URL)
  }

  return nil
}

// RetractAlert removes the subscriber with the given email from the
// product's subscriber set. Idempotent.
func (s *Store) RetractAlert(ctx context.Context, url string, email string) error {
  _, err := s.deps.Mongodb.Pull(ctx, mongodb.PullParams{
    CommonParams: commonParams(),
    Filters: map[string]any{
      "url": url,
    },
    Field: "users",
    Match: map[string]any{
      "email": email,
    },
  })
  if err != nil {
    return fmt.Errorf("%w: s.deps.Mongodb.Pull: %v", ErrDataAccess, err)
  }

  return nil
}
