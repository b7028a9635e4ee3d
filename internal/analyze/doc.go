// Package analyze provides package loading and struct extraction for the
// static auto-mapping checker.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// in-memory model of exported structs and their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/external)
//   - FieldInfo: describes field name, type, tags, and embedding
//
// Supported mirrors the runtime type-handler check of package automap over
// go/types, so that both report the same unsupported property types.
package analyze
