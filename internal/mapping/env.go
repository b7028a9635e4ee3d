package mapping

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"rowmap/internal/behavior"
)

// Environment variables overriding Settings.
const (
	EnvAutoMappingBehavior      = "ROWMAP_AUTO_MAPPING_BEHAVIOR"
	EnvUnknownColumnBehavior    = "ROWMAP_UNKNOWN_COLUMN_BEHAVIOR"
	EnvMapUnderscoreToCamelCase = "ROWMAP_MAP_UNDERSCORE_TO_CAMEL_CASE"
)

// ApplyEnv overrides s with the non-empty ROWMAP_* variables.
// Invalid values are reported and leave s unchanged.
func (s *Settings) ApplyEnv(logger zerolog.Logger) error {
	return s.applyLookup(logger, os.LookupEnv)
}

func (s *Settings) applyLookup(logger zerolog.Logger, lookup func(string) (string, bool)) error {
	next := *s

	if v, ok := lookup(EnvAutoMappingBehavior); ok && v != "" {
		b, err := behavior.ParseAutoMappingBehavior(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAutoMappingBehavior, err)
		}
		next.AutoMappingBehavior = b
		logOverride(logger, EnvAutoMappingBehavior, b.String())
	}

	if v, ok := lookup(EnvUnknownColumnBehavior); ok && v != "" {
		b, err := behavior.ParseUnknownColumnBehavior(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUnknownColumnBehavior, err)
		}
		next.AutoMappingUnknownColumnBehavior = b
		logOverride(logger, EnvUnknownColumnBehavior, b.String())
	}

	if v, ok := lookup(EnvMapUnderscoreToCamelCase); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMapUnderscoreToCamelCase, err)
		}
		next.MapUnderscoreToCamelCase = enabled
		logOverride(logger, EnvMapUnderscoreToCamelCase, strconv.FormatBool(enabled))
	}

	*s = next

	return nil
}

func logOverride(logger zerolog.Logger, key, value string) {
	logger.Debug().
		Str("key", key).
		Str("value", value).
		Str("source", "environment").
		Msg("using environment variable")
}
