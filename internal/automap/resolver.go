package automap

import (
	"strings"

	"github.com/rs/zerolog"

	"rowmap/internal/behavior"
	"rowmap/internal/common"
	"rowmap/internal/mapping"
	"rowmap/internal/match"
	"rowmap/internal/metrics"
)

// Resolver applies the auto-mapping rules of one mapping configuration.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	settings mapping.Settings
	logger   zerolog.Logger
}

// NewResolver creates a Resolver. Warnings of UnknownColumnWarning go to logger.
func NewResolver(settings mapping.Settings, logger zerolog.Logger) *Resolver {
	return &Resolver{
		settings: settings,
		logger:   logger,
	}
}

// Resolve maps columns onto props for the statement statementID.
//
// The returned error is non-nil only when the unknown-column behavior is
// FAILING; it is the *behavior.UnknownColumnError of the first detection.
func (r *Resolver) Resolve(statementID string, columns []string, props []Property, opts Options) (*Plan, error) {
	plan := &Plan{StatementID: statementID}

	if !r.settings.AutoMappingBehavior.Enabled() {
		return plan, nil
	}

	idx := newPropertyIndex(props, r.settings.AutoMappingBehavior.IncludesEmbedded())

	for _, column := range columns {
		if common.ContainsFold(opts.Mapped, column) {
			continue
		}

		propertyName := column
		if opts.ColumnPrefix != "" {
			if !hasPrefixFold(column, opts.ColumnPrefix) {
				continue
			}
			propertyName = column[len(opts.ColumnPrefix):]
		}

		prop, ok := idx.find(propertyName, r.settings.MapUnderscoreToCamelCase)

		switch {
		case !ok:
			target := behavior.Target{
				StatementID:  statementID,
				ColumnName:   column,
				PropertyName: propertyName,
			}
			if err := r.detect(plan, target, metrics.ReasonUnknownProperty); err != nil {
				return nil, err
			}

		case !prop.Supported:
			target := behavior.Target{
				StatementID:  statementID,
				ColumnName:   column,
				PropertyName: prop.Name,
				PropertyType: prop.TypeName,
			}
			if err := r.detect(plan, target, metrics.ReasonNoTypeHandler); err != nil {
				return nil, err
			}

		default:
			plan.Mappings = append(plan.Mappings, ColumnMapping{
				Column:   column,
				Property: prop.Name,
				Index:    prop.Index,
			})
		}
	}

	return plan, nil
}

func (r *Resolver) detect(plan *Plan, t behavior.Target, reason string) error {
	b := r.settings.AutoMappingUnknownColumnBehavior
	metrics.RecordUnknownColumn(b.String(), reason)

	if err := b.DoAction(r.logger, t); err != nil {
		return err
	}

	plan.Unmapped = append(plan.Unmapped, t)

	return nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// propertyIndex looks properties up by db tag or, for untagged ones, by name key.
// Direct fields shadow promoted ones, as in Go selector rules.
type propertyIndex struct {
	byColumn map[string]*Property
	byName   map[string]*Property
}

func newPropertyIndex(props []Property, includeEmbedded bool) *propertyIndex {
	idx := &propertyIndex{
		byColumn: make(map[string]*Property),
		byName:   make(map[string]*Property),
	}

	// Two passes so that order in props never lets a promoted field win.
	for _, embedded := range []bool{false, true} {
		if embedded && !includeEmbedded {
			break
		}

		for i := range props {
			p := &props[i]
			if p.Embedded != embedded {
				continue
			}

			// A db tag replaces the field name as the lookup key.
			if p.Column != "" {
				putIfAbsent(idx.byColumn, strings.ToLower(p.Column), p)
			} else {
				putIfAbsent(idx.byName, match.PropertyKey(p.Name), p)
			}
		}
	}

	return idx
}

func putIfAbsent(m map[string]*Property, key string, p *Property) {
	if _, ok := m[key]; !ok {
		m[key] = p
	}
}

func (idx *propertyIndex) find(name string, underscoreToCamel bool) (*Property, bool) {
	if p, ok := idx.byColumn[strings.ToLower(name)]; ok {
		return p, true
	}

	p, ok := idx.byName[match.ColumnKey(name, underscoreToCamel)]

	return p, ok
}
