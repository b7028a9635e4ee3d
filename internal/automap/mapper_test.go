package automap

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"rowmap/internal/behavior"
	"rowmap/internal/mapping"
	"rowmap/internal/metrics"
	"rowmap/store"
)

func TestMapper_CachesPlans(t *testing.T) {
	logger, buf := captureLogger()
	m := NewMapper(mapping.Settings{
		AutoMappingUnknownColumnBehavior: behavior.UnknownColumnWarning,
	}, logger, nil)

	hits := testutil.ToFloat64(metrics.AutoMappingPlanCacheTotal.WithLabelValues("hit"))
	columns := []string{"id", "extra_col"}

	first, err := ResolveFor[store.User](m, "UserMapper.selectAll", columns, Options{})
	require.NoError(t, err)

	second, err := m.Resolve("UserMapper.selectAll", columns, reflect.TypeFor[store.User](), Options{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, warnings(t, buf), 1, "cached plans do not warn again")
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.AutoMappingPlanCacheTotal.WithLabelValues("hit")))

	other, err := m.Resolve("UserMapper.selectAll", columns, reflect.TypeFor[store.User](), Options{Mapped: []string{"extra_col"}})
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Empty(t, other.Unmapped)
}

func TestMapper_FailingIsNotCached(t *testing.T) {
	m := NewMapper(mapping.Settings{
		AutoMappingUnknownColumnBehavior: behavior.UnknownColumnFailing,
	}, zerolog.Nop(), nil)

	columns := []string{"id", "extra_col"}
	expected := "Unknown column is detected on 'UserMapper.selectAll' auto-mapping. Mapping parameters are [columnName=extra_col,propertyName=extra_col,propertyType=null]"

	for range 2 {
		plan, err := ResolveFor[*store.User](m, "UserMapper.selectAll", columns, Options{})
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, behavior.ErrUnknownColumn)
		assert.EqualError(t, err, expected)
	}
}

func TestMapper_NotStruct(t *testing.T) {
	m := NewMapper(mapping.Settings{}, zerolog.Nop(), nil)

	_, err := ResolveFor[int](m, "CountMapper.count", []string{"count"}, Options{})
	assert.ErrorIs(t, err, ErrNotStruct)
	assert.ErrorContains(t, err, "CountMapper.count")
}

func TestMapper_CustomTypeHandlers(t *testing.T) {
	onlyStrings := TypeHandlerFunc(func(t reflect.Type) bool {
		return t.Kind() == reflect.String
	})

	m := NewMapper(mapping.Settings{
		AutoMappingUnknownColumnBehavior: behavior.UnknownColumnFailing,
	}, zerolog.Nop(), onlyStrings)

	_, err := ResolveFor[store.User](m, "UserMapper.selectAll", []string{"username", "id"}, Options{})
	require.Error(t, err)
	assert.Equal(t, "Unknown column is detected on 'UserMapper.selectAll' auto-mapping. Mapping parameters are [columnName=id,propertyName=ID,propertyType=int64]", err.Error())
}

func TestMapper_ConcurrentResolve(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	m := NewMapper(mapping.Settings{}, zerolog.Nop(), nil)
	columns := []string{"id", "username", "status"}

	plans := make([]*Plan, 16)

	var wg sync.WaitGroup
	for i := range plans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plan, err := ResolveFor[store.User](m, "UserMapper.selectAll", columns, Options{})
			assert.NoError(t, err)
			plans[i] = plan
		}()
	}
	wg.Wait()

	for _, p := range plans {
		assert.Same(t, plans[0], p)
	}
}

func TestPlan_ScanDest(t *testing.T) {
	m := NewMapper(mapping.Settings{AutoMappingBehavior: behavior.AutoMappingFull}, zerolog.Nop(), nil)
	columns := []string{"id", "username", "created_at", "extra_col"}

	plan, err := ResolveFor[store.User](m, "UserMapper.selectAll", columns, Options{})
	require.NoError(t, err)

	var user store.User
	dest, err := plan.ScanDest(columns, &user)
	require.NoError(t, err)
	require.Len(t, dest, 4)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	*dest[0].(*int64) = 42
	*dest[1].(*string) = "ada"
	*dest[2].(*time.Time) = created
	*dest[3].(*any) = "ignored"

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "ada", user.UserName)
	assert.Equal(t, created, user.CreatedAt)
}

type auditedOrder struct {
	*store.Audit
	ID int64
}

func TestPlan_ScanDestAllocatesEmbeddedPointer(t *testing.T) {
	m := NewMapper(mapping.Settings{AutoMappingBehavior: behavior.AutoMappingFull}, zerolog.Nop(), nil)
	columns := []string{"id", "created_at"}

	plan, err := ResolveFor[auditedOrder](m, "OrderMapper.audit", columns, Options{})
	require.NoError(t, err)

	var row auditedOrder
	dest, err := plan.ScanDest(columns, &row)
	require.NoError(t, err)

	require.NotNil(t, row.Audit)
	assert.IsType(t, (*time.Time)(nil), dest[1])
}

func TestPlan_ScanDestRejectsNonPointer(t *testing.T) {
	plan := &Plan{}

	_, err := plan.ScanDest(nil, store.User{})
	assert.ErrorIs(t, err, ErrNotStruct)

	_, err = plan.ScanDest(nil, (*store.User)(nil))
	assert.ErrorIs(t, err, ErrNotStruct)
}

func TestPlan_ScanDestSkipsUnexportedEmbeddedPointer(t *testing.T) {
	m := NewMapper(mapping.Settings{AutoMappingBehavior: behavior.AutoMappingFull}, zerolog.Nop(), nil)
	columns := []string{"id", "note"}

	plan, err := ResolveFor[store.Event](m, "EventMapper.select", columns, Options{})
	require.NoError(t, err)
	assert.Equal(t, "", plan.Property("note"))
	require.Len(t, plan.Unmapped, 1)
	assert.Equal(t, "note", plan.Unmapped[0].ColumnName)

	var (
		row  store.Event
		dest []any
	)
	require.NotPanics(t, func() {
		dest, err = plan.ScanDest(columns, &row)
	})
	require.NoError(t, err)

	*dest[0].(*int64) = 7
	assert.Equal(t, int64(7), row.ID)
	assert.IsType(t, new(any), dest[1])
}

func TestPlan_ScanDestRejectsUnsettableField(t *testing.T) {
	plan := &Plan{Mappings: []ColumnMapping{{Column: "note", Property: "Note", Index: []int{1, 0}}}}

	var (
		row store.Event
		err error
	)
	require.NotPanics(t, func() {
		_, err = plan.ScanDest([]string{"note"}, &row)
	})
	assert.ErrorIs(t, err, ErrUnsettableField)
	assert.ErrorContains(t, err, "column note")
}
