package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"rowmap/internal/common"
)

// ColumnTag is the struct tag key naming the result column of a field.
const ColumnTag = "db"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "rowmap/store"
	Name    string // e.g., "User"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ParseTypeID splits "import/path.Name" at the last dot.
// It returns false when either part is empty.
func ParseTypeID(s string) (TypeID, bool) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return TypeID{}, false
	}

	return TypeID{PkgPath: s[:i], Name: s[i+1:]}, true
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindAlias             // named type wrapping a non-struct type
	TypeKindExternal          // named type from a package that was not loaded (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID       TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind     TypeKind    // Kind of type
	ElemType *TypeInfo   // For pointers and slices, the element type
	Fields   []FieldInfo // For structs and embedded external structs, the exported fields
	GoType   types.Type  // The original go/types.Type
}

// StructFields returns the fields of t, looking through one pointer level.
// External types only have fields when they are embedded by an analyzed struct.
func (t *TypeInfo) StructFields() []FieldInfo {
	if t == nil {
		return nil
	}

	if t.Kind == TypeKindPointer {
		return t.ElemType.StructFields()
	}

	if t.Kind != TypeKindStruct && t.Kind != TypeKindExternal {
		return nil
	}

	return t.Fields
}

// FieldInfo describes an exported struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// ColumnName returns the column named by the db tag, or "" when untagged.
func (f *FieldInfo) ColumnName() string {
	tag := f.Tag.Get(ColumnTag)
	if tag == "" || tag == "-" {
		return ""
	}

	if i := strings.IndexByte(tag, ','); i >= 0 {
		return tag[:i]
	}

	return tag
}

// Skipped reports whether the field is excluded with `db:"-"`.
func (f *FieldInfo) Skipped() bool {
	return f.Tag.Get(ColumnTag) == "-"
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
