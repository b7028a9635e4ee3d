// Package behavior defines the auto-mapping policies of a mapping configuration.
//
// UnknownColumnBehavior decides what happens when auto-mapping detects a result
// column that has no matching property, or a property whose type has no type
// handler:
//   - UnknownColumnNone: do nothing (default)
//   - UnknownColumnWarning: log a warning and continue with the column unmapped
//   - UnknownColumnFailing: return an *UnknownColumnError
//
// AutoMappingBehavior decides whether auto-mapping runs at all and how deep it
// reaches into embedded structs.
//
// Both are closed enumerations. Values are chosen once when the configuration
// is loaded and are safe to share between goroutines.
package behavior
