package automap

import (
	"database/sql"
	"reflect"
	"time"
)

// TypeHandlers decides whether a property type can be read from a result column.
type TypeHandlers interface {
	HasTypeHandler(t reflect.Type) bool
}

// TypeHandlerFunc adapts a function to TypeHandlers.
type TypeHandlerFunc func(t reflect.Type) bool

// HasTypeHandler calls f(t).
func (f TypeHandlerFunc) HasTypeHandler(t reflect.Type) bool {
	return f(t)
}

// DefaultTypeHandlers accepts booleans, numbers and strings (including named
// types over them), []byte, time.Time, empty interfaces, types whose pointer
// implements sql.Scanner, and a single pointer to any of these.
var DefaultTypeHandlers TypeHandlers = TypeHandlerFunc(hasDefaultTypeHandler)

var (
	scannerType = reflect.TypeFor[sql.Scanner]()
	timeType    = reflect.TypeFor[time.Time]()
)

func hasDefaultTypeHandler(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == timeType || (t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(scannerType)) {
		return true
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	case reflect.Interface:
		return t.NumMethod() == 0
	default:
		return false
	}
}
