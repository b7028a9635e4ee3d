package mapping

import "rowmap/internal/behavior"

// MappingFile represents the root of a YAML mapping configuration file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Settings selects the auto-mapping policies.
	Settings Settings `yaml:"settings"`

	// Statements lists the mapped statements whose result columns are checked.
	Statements []Statement `yaml:"statements,omitempty"`
}

// Settings holds the auto-mapping policies of one mapping configuration.
// The zero value auto-maps PARTIAL and ignores unknown columns.
type Settings struct {
	// AutoMappingBehavior controls whether and how deep columns are auto-mapped.
	AutoMappingBehavior behavior.AutoMappingBehavior `yaml:"autoMappingBehavior"`

	// AutoMappingUnknownColumnBehavior is the action taken for unknown columns.
	AutoMappingUnknownColumnBehavior behavior.UnknownColumnBehavior `yaml:"autoMappingUnknownColumnBehavior"`

	// MapUnderscoreToCamelCase drops underscores from column names before
	// looking up properties, so "user_name" maps to UserName.
	MapUnderscoreToCamelCase bool `yaml:"mapUnderscoreToCamelCase"`
}

// Statement defines a mapped statement and the result columns it returns.
type Statement struct {
	// ID identifies the statement, e.g. "UserMapper.selectAll".
	ID string `yaml:"id"`

	// ResultType is the result struct as "import/path.TypeName".
	ResultType string `yaml:"resultType"`

	// Columns are the result column names in select order.
	Columns []string `yaml:"columns"`

	// ColumnPrefix restricts auto-mapping to columns with this prefix and
	// strips it before the property lookup.
	ColumnPrefix string `yaml:"columnPrefix,omitempty"`

	// Mapped lists columns bound by an explicit result mapping.
	// They are excluded from auto-mapping.
	Mapped []string `yaml:"mapped,omitempty"`
}

// Statement returns the statement with the given id.
func (mf *MappingFile) Statement(id string) (*Statement, bool) {
	for i := range mf.Statements {
		if mf.Statements[i].ID == id {
			return &mf.Statements[i], true
		}
	}

	return nil, false
}
