package mongodb

import (
  "reflect"

  "github.com/pricewise/pricewatch/pkg/reflection"
  "go.mongodb.org/mongo-driver/bson"
)

// makeBsonDUpdates builds a $set document from the struct fields.
// The first field is assumed to be the lookup key and is skipped;
// nil pointers are skipped so unset optional fields are not erased.
// Scalars are always set, a false flag or zero price is a real value.
func makeBsonDUpdates(document any) bson.D {
  updates := bson.D{}

  typ := reflect.TypeOf(document)
  value := reflect.ValueOf(document)

  if typ.Kind() == reflect.Ptr {
    typ = typ.Elem()
    value = value.Elem()
  }

  for i := 1; i < typ.NumField(); i++ {
    field := typ.Field(i)

    tag := field.Tag.Get("bson")
    if tag == "" || tag == "-" {
      continue
    }

    val := value.Field(i)

    if reflection.IsNilPtr(val) {
      continue
    }

    updates = append(updates, bson.E{
      Key:   tag,
      Value: val.Interface(),
    })
  }

  return bson.D{{
    Key:   "$set",
    Value: updates,
  }}
}

func makeBsonDFilters(kv map[string]any) bson.D {
  out := bson.D{}

  for key, value := range kv {
    out = append(out, bson.E{
      Key:   key,
      Value: value,
    })
  }

  return out
}
