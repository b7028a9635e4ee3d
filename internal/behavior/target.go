package behavior

import (
	"fmt"
	"reflect"
	"strings"
)

// Target describes one auto-mapping target that could not be mapped.
// It is built by the caller for each detection and only read here.
type Target struct {
	// StatementID identifies the mapped statement being processed.
	StatementID string
	// ColumnName is the result column name.
	ColumnName string
	// PropertyName is the property the column was expected to map to.
	PropertyName string
	// PropertyType is the fully qualified name of the property type.
	// It is empty when the property was not found; when set, the property
	// exists but no type handler is registered for its type.
	PropertyType string
}

// HasPropertyType reports whether the property was found but its type is unsupported.
func (t Target) HasPropertyType() bool {
	return t.PropertyType != ""
}

// BuildMessage formats the diagnostic for an unmapped target.
func BuildMessage(t Target) string {
	propertyType := "null"
	if t.HasPropertyType() {
		propertyType = t.PropertyType
	}

	return fmt.Sprintf(
		"Unknown column is detected on '%s' auto-mapping. Mapping parameters are [columnName=%s,propertyName=%s,propertyType=%s]",
		t.StatementID, t.ColumnName, t.PropertyName, propertyType)
}

// TypeName returns the fully qualified name of a runtime type.
// Named types render as "import/path.Name", predeclared types by their name,
// unnamed composites are built from their qualified element names, and the
// empty interface renders as "any".
// A nil type renders as the empty string.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}

	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}

		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), TypeName(t.Elem()))
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any"
		}

		return t.String()
	default:
		return strings.ReplaceAll(t.String(), "interface {}", "any")
	}
}
