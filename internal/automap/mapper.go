package automap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"rowmap/internal/mapping"
	"rowmap/internal/metrics"
)

// Mapper resolves runtime result types and caches the resulting plans.
// Detections are reported once per cached plan; failed resolutions are not
// cached and report again on the next call.
type Mapper struct {
	resolver *Resolver
	handlers TypeHandlers

	mu    sync.RWMutex
	plans map[planKey]*Plan
}

type planKey struct {
	statementID string
	resultType  reflect.Type
	columns     string
	prefix      string
	mapped      string
}

func newPlanKey(statementID string, columns []string, resultType reflect.Type, opts Options) planKey {
	return planKey{
		statementID: statementID,
		resultType:  resultType,
		columns:     strings.Join(columns, "\x00"),
		prefix:      strings.ToLower(opts.ColumnPrefix),
		mapped:      strings.ToLower(strings.Join(opts.Mapped, "\x00")),
	}
}

// NewMapper creates a Mapper. A nil handlers uses DefaultTypeHandlers.
func NewMapper(settings mapping.Settings, logger zerolog.Logger, handlers TypeHandlers) *Mapper {
	if handlers == nil {
		handlers = DefaultTypeHandlers
	}

	return &Mapper{
		resolver: NewResolver(settings, logger),
		handlers: handlers,
		plans:    make(map[planKey]*Plan),
	}
}

// Resolve returns the auto-mapping plan of columns onto resultType.
// Errors of the FAILING behavior are returned unwrapped.
func (m *Mapper) Resolve(statementID string, columns []string, resultType reflect.Type, opts Options) (*Plan, error) {
	key := newPlanKey(statementID, columns, resultType, opts)

	m.mu.RLock()
	plan, ok := m.plans[key]
	m.mu.RUnlock()

	metrics.RecordPlanCache(ok)

	if ok {
		return plan, nil
	}

	props, err := PropertiesOf(resultType, m.handlers)
	if err != nil {
		return nil, fmt.Errorf("statement %s: %w", statementID, err)
	}

	plan, err = m.resolver.Resolve(statementID, columns, props, opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.plans[key]; ok {
		return existing, nil
	}

	m.plans[key] = plan

	return plan, nil
}

// ResolveFor is Resolve with the result type given as a type parameter.
func ResolveFor[T any](m *Mapper, statementID string, columns []string, opts Options) (*Plan, error) {
	return m.Resolve(statementID, columns, reflect.TypeFor[T](), opts)
}

// ScanDest returns one scan destination per column for dest, a non-nil
// pointer to the result struct. Mapped columns point at their field; all
// other columns scan into a discarded value. Nil embedded pointers on the
// path to a field are allocated.
func (p *Plan) ScanDest(columns []string, dest any) ([]any, error) {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: scan destination %T", ErrNotStruct, dest)
	}

	byColumn := make(map[string][]int, len(p.Mappings))
	for _, m := range p.Mappings {
		byColumn[m.Column] = m.Index
	}

	out := make([]any, len(columns))

	for i, column := range columns {
		index, ok := byColumn[column]
		if !ok || index == nil {
			out[i] = new(any)
			continue
		}

		field, err := fieldByIndexAlloc(v.Elem(), index)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", column, err)
		}

		out[i] = field.Addr().Interface()
	}

	return out, nil
}

func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsettableField, v.Type())
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}

		v = v.Field(x)
	}

	if !v.CanSet() {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsettableField, v.Type())
	}

	return v, nil
}
