package behavior

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=AutoMappingBehavior -linecomment -output=auto_mapping_string.go

// AutoMappingBehavior controls whether and how deep columns are auto-mapped.
// The zero value is AutoMappingPartial.
type AutoMappingBehavior int

const (
	AutoMappingPartial AutoMappingBehavior = iota // PARTIAL
	AutoMappingNone                               // NONE
	AutoMappingFull                               // FULL
)

// Enabled reports whether auto-mapping runs at all.
func (b AutoMappingBehavior) Enabled() bool {
	return b != AutoMappingNone
}

// IncludesEmbedded reports whether fields promoted from embedded structs are auto-mapping targets.
func (b AutoMappingBehavior) IncludesEmbedded() bool {
	return b == AutoMappingFull
}

// IsValid returns true if b is one of the defined behaviors.
func (b AutoMappingBehavior) IsValid() bool {
	return b >= AutoMappingPartial && b <= AutoMappingFull
}

// ParseAutoMappingBehavior parses NONE, PARTIAL or FULL case-insensitively.
// The empty string yields AutoMappingPartial.
func ParseAutoMappingBehavior(s string) (AutoMappingBehavior, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "PARTIAL":
		return AutoMappingPartial, nil
	case "NONE":
		return AutoMappingNone, nil
	case "FULL":
		return AutoMappingFull, nil
	default:
		return AutoMappingPartial, fmt.Errorf("%w: auto-mapping behavior %q", ErrInvalidBehavior, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b AutoMappingBehavior) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBehavior, b)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *AutoMappingBehavior) UnmarshalText(text []byte) error {
	parsed, err := ParseAutoMappingBehavior(string(text))
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}
