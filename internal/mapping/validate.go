package mapping

import (
	"fmt"
	"strings"

	"rowmap/internal/common"
	"rowmap/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeMappingIsNil        = "mapping_is_nil"
	CodeInvalidSetting      = "invalid_setting"
	CodeMissingStatementID  = "missing_statement_id"
	CodeDuplicateStatement  = "duplicate_statement"
	CodeInvalidResultType   = "invalid_result_type"
	CodeNoColumns           = "no_columns"
	CodeDuplicateColumn     = "duplicate_column"
	CodeUnknownMappedColumn = "unknown_mapped_column"
	CodePrefixMatchesNone   = "prefix_matches_no_column"
)

// Validate checks the structure of a mapping file. It does not load any Go
// types; result types are only checked for the "import/path.Name" form.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError(CodeMappingIsNil, "mapping file is nil", "", "")
		return res
	}

	if !mf.Settings.AutoMappingBehavior.IsValid() {
		res.AddError(CodeInvalidSetting,
			fmt.Sprintf("invalid autoMappingBehavior %s", mf.Settings.AutoMappingBehavior), "", "autoMappingBehavior")
	}

	if !mf.Settings.AutoMappingUnknownColumnBehavior.IsValid() {
		res.AddError(CodeInvalidSetting,
			fmt.Sprintf("invalid autoMappingUnknownColumnBehavior %s", mf.Settings.AutoMappingUnknownColumnBehavior),
			"", "autoMappingUnknownColumnBehavior")
	}

	seen := map[string]struct{}{}

	for i := range mf.Statements {
		st := &mf.Statements[i]

		if st.ID == "" {
			res.AddError(CodeMissingStatementID, fmt.Sprintf("statement #%d has no id", i+1), "", "")
			continue
		}

		if _, ok := seen[st.ID]; ok {
			res.AddError(CodeDuplicateStatement, fmt.Sprintf("duplicate statement %q", st.ID), st.ID, "")
			continue
		}

		seen[st.ID] = struct{}{}

		validateStatement(res, st)
	}

	return res
}

func validateStatement(res *diagnostic.Diagnostics, st *Statement) {
	if !isQualifiedTypeName(st.ResultType) {
		res.AddError(CodeInvalidResultType,
			fmt.Sprintf("resultType %q must have the form import/path.TypeName", st.ResultType), st.ID, "resultType")
	}

	if len(st.Columns) == 0 {
		res.AddError(CodeNoColumns, "statement declares no columns", st.ID, "columns")
		return
	}

	columns := map[string]struct{}{}
	prefixed := false

	for _, c := range st.Columns {
		key := strings.ToLower(c)
		if _, ok := columns[key]; ok {
			res.AddWarning(CodeDuplicateColumn, fmt.Sprintf("column %q is selected more than once", c), st.ID, c)
		}

		columns[key] = struct{}{}

		if st.ColumnPrefix == "" || strings.HasPrefix(key, strings.ToLower(st.ColumnPrefix)) {
			prefixed = true
		}
	}

	for _, m := range st.Mapped {
		if !common.ContainsFold(st.Columns, m) {
			res.AddError(CodeUnknownMappedColumn,
				fmt.Sprintf("mapped column %q is not among the statement columns", m), st.ID, m)
		}
	}

	if !prefixed {
		res.AddWarning(CodePrefixMatchesNone,
			fmt.Sprintf("no column starts with prefix %q", st.ColumnPrefix), st.ID, "columnPrefix")
	}
}

func isQualifiedTypeName(s string) bool {
	i := strings.LastIndex(s, ".")
	return i > 0 && i < len(s)-1
}
