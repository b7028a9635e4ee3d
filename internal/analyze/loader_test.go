package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "rowmap/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func fieldByName(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}
	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)
	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "User"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Order"})
}

func TestAnalyzer_UserFields(t *testing.T) {
	graph := loadStore(t)

	user, err := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "User"})
	require.NoError(t, err)

	names := make([]string, 0, len(user.Fields))
	for _, f := range user.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"ID", "UserName", "Email", "Status", "Tags", "Profile", "Audit"}, names)

	audit := fieldByName(t, user, "Audit")
	assert.True(t, audit.Embedded)
	assert.Equal(t, TypeKindStruct, audit.Type.Kind)
	assert.Len(t, audit.Type.StructFields(), 2)

	email := fieldByName(t, user, "Email")
	assert.Equal(t, TypeKindExternal, email.Type.Kind)
	assert.Equal(t, "database/sql.NullString", email.Type.ID.String())

	status := fieldByName(t, user, "Status")
	assert.Equal(t, TypeKindAlias, status.Type.Kind)
	assert.Equal(t, TypeKindBasic, status.Type.ElemType.Kind)
}

func TestAnalyzer_ColumnTags(t *testing.T) {
	graph := loadStore(t)

	order, err := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NoError(t, err)

	id := fieldByName(t, order, "ID")
	assert.Equal(t, "order_id", id.ColumnName())
	assert.False(t, id.Skipped())

	internal := fieldByName(t, order, "Internal")
	assert.Equal(t, "", internal.ColumnName())
	assert.True(t, internal.Skipped())

	userID := fieldByName(t, order, "UserID")
	assert.Equal(t, "", userID.ColumnName())
}

func TestAnalyzer_GetStructErrors(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(storePkg)
	require.NoError(t, err)

	_, err = analyzer.GetStruct(storePkg, "Missing")
	assert.ErrorContains(t, err, "not found")

	_, err = analyzer.GetStruct(storePkg, "Status")
	assert.ErrorContains(t, err, "is not a struct")
}

func TestAnalyzer_LoadPackagesError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("rowmap/does/not/exist")
	assert.Error(t, err)
}

func TestParseTypeID(t *testing.T) {
	id, ok := ParseTypeID("rowmap/store.User")
	require.True(t, ok)
	assert.Equal(t, TypeID{PkgPath: storePkg, Name: "User"}, id)
	assert.Equal(t, "rowmap/store.User", id.String())

	for _, bad := range []string{"", "User", ".User", "rowmap/store."} {
		_, ok := ParseTypeID(bad)
		assert.False(t, ok, bad)
	}
}

func TestAnalyzer_ExternalEmbeddedStruct(t *testing.T) {
	graph := loadStore(t)

	comment, err := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Comment"})
	require.NoError(t, err)

	base := fieldByName(t, comment, "Base")
	assert.True(t, base.Embedded)
	assert.Equal(t, TypeKindExternal, base.Type.Kind)
	assert.Equal(t, "rowmap/store/shared.Base", base.Type.ID.String())

	version := fieldByName(t, base.Type, "Version")
	assert.Equal(t, "version", version.ColumnName())
	assert.Len(t, base.Type.StructFields(), 2)

	assert.Equal(t, "any", QualifiedName(fieldByName(t, comment, "Extra").Type.GoType))
	assert.Equal(t, "map[string]any", QualifiedName(fieldByName(t, comment, "Meta").Type.GoType))

	email := fieldByName(t, mustStruct(t, graph, "User"), "Email")
	assert.Empty(t, email.Type.StructFields(), "only embedded external structs are expanded")
}

func mustStruct(t *testing.T, graph *TypeGraph, name string) *TypeInfo {
	t.Helper()

	info, err := graph.GetStruct(TypeID{PkgPath: storePkg, Name: name})
	require.NoError(t, err)

	return info
}
