package reflection

import "reflect"

func IsNilPtr(value reflect.Value) bool {
  return value.Kind() == reflect.Ptr && value.IsNil()
}
