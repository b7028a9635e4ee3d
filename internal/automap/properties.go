package automap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"rowmap/internal/behavior"
)

// ColumnTag is the struct tag key naming the result column of a field.
const ColumnTag = "db"

var (
	// ErrNotStruct is returned when a result type is not a struct or pointer to struct.
	ErrNotStruct = errors.New("result type is not a struct")
	// ErrUnsettableField is returned by ScanDest for a field reflection cannot set,
	// such as one behind a nil pointer to an unexported embedded struct.
	ErrUnsettableField = errors.New("cannot set field")
)

// PropertiesOf lists the auto-mapping targets of t in field order: exported
// fields, then for each embedded struct its promoted fields marked Embedded.
// Fields tagged `db:"-"` and fields promoted through a pointer to an
// unexported struct are skipped.
func PropertiesOf(t reflect.Type, handlers TypeHandlers) ([]Property, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotStruct)
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, behavior.TypeName(t))
	}

	if handlers == nil {
		handlers = DefaultTypeHandlers
	}

	var props []Property

	collectProperties(t, nil, false, handlers, map[reflect.Type]bool{t: true}, &props)

	return props, nil
}

func collectProperties(
	t reflect.Type,
	index []int,
	embedded bool,
	handlers TypeHandlers,
	visiting map[reflect.Type]bool,
	out *[]Property,
) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}

		tag := f.Tag.Get(ColumnTag)
		if tag == "-" {
			continue
		}

		// A nil pointer to an unexported embedded struct cannot be allocated
		// through reflection, so its promoted fields are not targets.
		if f.Anonymous && !f.IsExported() && f.Type.Kind() == reflect.Pointer {
			continue
		}

		fieldIndex := append(append([]int(nil), index...), i)

		if f.IsExported() {
			*out = append(*out, Property{
				Name:      f.Name,
				Column:    columnFromTag(tag),
				TypeName:  behavior.TypeName(f.Type),
				Supported: handlers.HasTypeHandler(f.Type),
				Embedded:  embedded,
				Index:     fieldIndex,
			})
		}

		if !f.Anonymous {
			continue
		}

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		if ft.Kind() == reflect.Struct && !visiting[ft] {
			visiting[ft] = true
			collectProperties(ft, fieldIndex, true, handlers, visiting, out)
			delete(visiting, ft)
		}
	}
}

func columnFromTag(tag string) string {
	if i := strings.IndexByte(tag, ','); i >= 0 {
		return tag[:i]
	}

	return tag
}
