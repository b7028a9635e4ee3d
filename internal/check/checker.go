package check

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"rowmap/internal/analyze"
	"rowmap/internal/automap"
	"rowmap/internal/behavior"
	"rowmap/internal/diagnostic"
	"rowmap/internal/mapping"
	"rowmap/internal/match"
)

// Diagnostic codes reported by Run in addition to those of mapping.Validate.
const (
	CodeResultTypeNotFound = "result_type_not_found"
	CodeUnknownColumn      = "unknown_column"
	CodeNoTypeHandler      = "no_type_handler"
	CodeAutoMapped         = "auto_mapped"
)

// Config holds the inputs of a Checker.
type Config struct {
	// Graph holds the result types referenced by the mapping file.
	Graph *analyze.TypeGraph
	// Settings select the auto-mapping policies. They usually come from the
	// mapping file after env and flag overrides.
	Settings mapping.Settings
	// Logger receives the records of the WARNING behavior.
	Logger zerolog.Logger
	// MaxSuggestions limits the "did you mean" names per unknown column.
	MaxSuggestions int
}

// DefaultMaxSuggestions is used when Config.MaxSuggestions is zero.
const DefaultMaxSuggestions = 3

// Checker reports auto-mapping problems of mapping file statements.
type Checker struct {
	graph          *analyze.TypeGraph
	settings       mapping.Settings
	resolver       *automap.Resolver
	logger         zerolog.Logger
	maxSuggestions int
}

// New creates a Checker.
func New(cfg Config) *Checker {
	maxSuggestions := cfg.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	return &Checker{
		graph:          cfg.Graph,
		settings:       cfg.Settings,
		resolver:       automap.NewResolver(cfg.Settings, cfg.Logger),
		logger:         cfg.Logger,
		maxSuggestions: maxSuggestions,
	}
}

// Run validates mf and checks every statement. Statements are only resolved
// when the file has no validation errors.
func (c *Checker) Run(mf *mapping.MappingFile) *diagnostic.Diagnostics {
	res := mapping.Validate(mf)
	if res.HasErrors() {
		return res
	}

	var checked diagnostic.Diagnostics
	for i := range mf.Statements {
		c.checkStatement(&checked, &mf.Statements[i])
	}

	res.Merge(checked)

	c.logger.Debug().
		Int("statements", len(mf.Statements)).
		Int("errors", len(res.Errors)).
		Int("warnings", len(res.Warnings)).
		Msg("mapping file checked")

	return res
}

func (c *Checker) checkStatement(res *diagnostic.Diagnostics, st *mapping.Statement) {
	id, _ := analyze.ParseTypeID(st.ResultType)

	info, err := c.graph.GetStruct(id)
	if err != nil {
		res.AddError(CodeResultTypeNotFound, err.Error(), st.ID, "resultType")
		return
	}

	props := PropertiesOf(info)

	plan, err := c.resolver.Resolve(st.ID, st.Columns, props, automap.Options{
		ColumnPrefix: st.ColumnPrefix,
		Mapped:       st.Mapped,
	})
	if err != nil {
		var uce *behavior.UnknownColumnError
		if !errors.As(err, &uce) {
			res.AddError(CodeUnknownColumn, err.Error(), st.ID, "")
			return
		}

		res.Add(c.detection(diagnostic.DiagnosticError, uce.Target, props))

		return
	}

	if c.settings.AutoMappingUnknownColumnBehavior == behavior.UnknownColumnWarning {
		for _, t := range plan.Unmapped {
			res.Add(c.detection(diagnostic.DiagnosticWarning, t, props))
		}
	}

	if c.settings.AutoMappingBehavior.Enabled() {
		res.AddInfo(CodeAutoMapped,
			fmt.Sprintf("%d of %d columns auto-mapped onto %s", len(plan.Mappings), len(st.Columns), id),
			st.ID, "")
	}
}

func (c *Checker) detection(severity diagnostic.DiagnosticSeverity, t behavior.Target, props []automap.Property) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity:  severity,
		Code:      CodeNoTypeHandler,
		Message:   behavior.BuildMessage(t),
		Statement: t.StatementID,
		Subject:   t.ColumnName,
	}

	if t.HasPropertyType() {
		return d
	}

	d.Code = CodeUnknownColumn
	d.Suggestions = match.Names(match.Suggest(t.PropertyName, c.candidates(props), match.DefaultMinSimilarity, c.maxSuggestions))

	return d
}

// candidates returns the names a column could have been meant to match:
// the db tag of tagged properties, the field name of the others.
func (c *Checker) candidates(props []automap.Property) []string {
	includeEmbedded := c.settings.AutoMappingBehavior.IncludesEmbedded()

	var names []string
	for _, p := range props {
		if !p.Supported || (p.Embedded && !includeEmbedded) {
			continue
		}

		if p.Column != "" {
			names = append(names, p.Column)
		} else {
			names = append(names, p.Name)
		}
	}

	return names
}
