package check

import (
	"go/token"

	"rowmap/internal/analyze"
	"rowmap/internal/automap"
)

// PropertiesOf lists the auto-mapping targets of an analyzed struct, in the
// same order and with the same embedding rules as automap.PropertiesOf,
// including structs embedded from packages that were not loaded.
// Index is left nil.
func PropertiesOf(info *analyze.TypeInfo) []automap.Property {
	var props []automap.Property

	collectProperties(info, false, map[*analyze.TypeInfo]bool{info: true}, &props)

	return props
}

func collectProperties(info *analyze.TypeInfo, embedded bool, visiting map[*analyze.TypeInfo]bool, out *[]automap.Property) {
	fields := info.StructFields()
	for i := range fields {
		f := &fields[i]
		if f.Skipped() {
			continue
		}

		if token.IsExported(f.Name) {
			*out = append(*out, automap.Property{
				Name:      f.Name,
				Column:    f.ColumnName(),
				TypeName:  analyze.QualifiedName(f.Type.GoType),
				Supported: analyze.Supported(f.Type.GoType),
				Embedded:  embedded,
			})
		}

		if !f.Embedded {
			continue
		}

		elem := f.Type
		if elem.Kind == analyze.TypeKindPointer {
			if !token.IsExported(f.Name) {
				continue
			}
			elem = elem.ElemType
		}

		if elem == nil || len(elem.StructFields()) == 0 || visiting[elem] {
			continue
		}

		visiting[elem] = true
		collectProperties(elem, true, visiting, out)
		delete(visiting, elem)
	}
}
