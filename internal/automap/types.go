package automap

import "rowmap/internal/behavior"

// Property is an auto-mapping target of a result type.
type Property struct {
	// Name is the Go field name.
	Name string
	// Column is the column named by the db tag, or "" when untagged.
	Column string
	// TypeName is the fully qualified property type.
	TypeName string
	// Supported reports whether a type handler exists for the property type.
	Supported bool
	// Embedded marks properties promoted from an embedded struct.
	Embedded bool
	// Index is the reflect field index path; nil for properties loaded from source.
	Index []int
}

// ColumnMapping binds one result column to one property.
type ColumnMapping struct {
	Column   string
	Property string
	Index    []int
}

// Plan is the auto-mapping outcome for one statement, result type and column set.
// Plans returned by Mapper are shared and must not be modified.
type Plan struct {
	StatementID string
	Mappings    []ColumnMapping
	// Unmapped holds the detections that NONE or WARNING let through.
	Unmapped []behavior.Target
}

// Options carry the per-statement inputs of a resolution.
type Options struct {
	// ColumnPrefix restricts auto-mapping to columns starting with it
	// (case-insensitively) and is stripped before the property lookup.
	ColumnPrefix string
	// Mapped are columns bound by an explicit result mapping.
	Mapped []string
}

// Property returns the property mapped from column, or "" when none is.
func (p *Plan) Property(column string) string {
	for _, m := range p.Mappings {
		if m.Column == column {
			return m.Property
		}
	}

	return ""
}
