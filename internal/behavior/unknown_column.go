package behavior

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate go tool stringer -type=UnknownColumnBehavior -linecomment -output=unknown_column_string.go

// UnknownColumnBehavior is the action taken when auto-mapping detects an
// unknown column or a property type without a type handler.
type UnknownColumnBehavior int

const (
	UnknownColumnNone    UnknownColumnBehavior = iota // NONE
	UnknownColumnWarning                              // WARNING
	UnknownColumnFailing                              // FAILING
)

// Log field names attached to the warning record.
const (
	FieldStatementID  = "statement_id"
	FieldColumn       = "column"
	FieldProperty     = "property"
	FieldPropertyType = "property_type"
)

// DoAction performs the action of b for the given target.
//
// UnknownColumnNone has no effect. UnknownColumnWarning writes exactly one
// warning record with BuildMessage(t) as its message. UnknownColumnFailing
// returns an *UnknownColumnError carrying the same message.
func (b UnknownColumnBehavior) DoAction(logger zerolog.Logger, t Target) error {
	switch b {
	case UnknownColumnNone:
		return nil
	case UnknownColumnWarning:
		ev := logger.Warn().
			Str(FieldStatementID, t.StatementID).
			Str(FieldColumn, t.ColumnName).
			Str(FieldProperty, t.PropertyName)
		if t.HasPropertyType() {
			ev = ev.Str(FieldPropertyType, t.PropertyType)
		}

		ev.Msg(BuildMessage(t))

		return nil
	case UnknownColumnFailing:
		return newUnknownColumnError(t)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidBehavior, b)
	}
}

// IsValid returns true if b is one of the defined behaviors.
func (b UnknownColumnBehavior) IsValid() bool {
	return b >= UnknownColumnNone && b <= UnknownColumnFailing
}

// ParseUnknownColumnBehavior parses a behavior name.
// NONE, WARNING and FAILING are accepted case-insensitively, as are the
// aliases ignore, warn and fail. The empty string yields UnknownColumnNone.
func ParseUnknownColumnBehavior(s string) (UnknownColumnBehavior, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE", "IGNORE":
		return UnknownColumnNone, nil
	case "WARNING", "WARN":
		return UnknownColumnWarning, nil
	case "FAILING", "FAIL":
		return UnknownColumnFailing, nil
	default:
		return UnknownColumnNone, fmt.Errorf("%w: unknown column behavior %q", ErrInvalidBehavior, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b UnknownColumnBehavior) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBehavior, b)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *UnknownColumnBehavior) UnmarshalText(text []byte) error {
	parsed, err := ParseUnknownColumnBehavior(string(text))
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}
