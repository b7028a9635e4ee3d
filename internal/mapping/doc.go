// Package mapping provides the YAML mapping configuration: auto-mapping
// settings and the statement definitions checked by rowmap-check.
//
// # Schema Overview
//
//	version: "1"
//	settings:
//	  autoMappingBehavior: PARTIAL            # NONE | PARTIAL | FULL
//	  autoMappingUnknownColumnBehavior: WARNING # NONE | WARNING | FAILING
//	  mapUnderscoreToCamelCase: true
//	statements:
//	  - id: UserMapper.selectAll
//	    resultType: rowmap/store.User
//	    columns: [id, user_name, email, extra_col]
//	    mapped: [id]                          # explicitly mapped, never auto-mapped
//	  - id: OrderMapper.selectWithUser
//	    resultType: rowmap/store.Order
//	    columnPrefix: o_
//	    columns: [o_order_id, o_total, u_id]
//
// # Environment
//
// The settings can be overridden per process with
// ROWMAP_AUTO_MAPPING_BEHAVIOR, ROWMAP_UNKNOWN_COLUMN_BEHAVIOR and
// ROWMAP_MAP_UNDERSCORE_TO_CAMEL_CASE. The active unknown-column behavior is
// chosen once here and never changes afterwards.
package mapping
