package analyze

import (
	"go/types"
	"strings"
)

// QualifiedName renders t with full import paths, e.g. "*time.Time" or
// "rowmap/store.Status". The empty interface renders as "any" whether it was
// written as any or interface{}.
func QualifiedName(t types.Type) string {
	return strings.ReplaceAll(types.TypeString(t, nil), "interface{}", "any")
}

// Supported reports whether a property of type t has a type handler.
//
// Accepted are booleans, numbers and strings (including named types over
// them), []byte, time.Time, empty interfaces, types whose pointer implements
// Scan(any) error, and a single pointer to any of these.
func Supported(t types.Type) bool {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	if isTime(t) || implementsScanner(t) {
		return true
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Info()&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsString) != 0
	case *types.Slice:
		b, ok := u.Elem().Underlying().(*types.Basic)
		return ok && b.Kind() == types.Byte
	case *types.Interface:
		return u.Empty()
	default:
		return false
	}
}

func isTime(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	return named.Obj().Pkg().Path() == "time" && named.Obj().Name() == "Time"
}

// implementsScanner reports whether *t has a method Scan(any) error.
func implementsScanner(t types.Type) bool {
	if _, ok := t.Underlying().(*types.Interface); ok {
		return false
	}

	sel := types.NewMethodSet(types.NewPointer(t)).Lookup(nil, "Scan")
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}
