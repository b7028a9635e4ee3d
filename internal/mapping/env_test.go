package mapping

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowmap/internal/behavior"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestSettings_ApplyEnv(t *testing.T) {
	t.Setenv(EnvUnknownColumnBehavior, "warn")
	t.Setenv(EnvMapUnderscoreToCamelCase, "true")

	var s Settings
	require.NoError(t, s.ApplyEnv(zerolog.Nop()))

	assert.Equal(t, behavior.UnknownColumnWarning, s.AutoMappingUnknownColumnBehavior)
	assert.Equal(t, behavior.AutoMappingPartial, s.AutoMappingBehavior)
	assert.True(t, s.MapUnderscoreToCamelCase)
}

func TestSettings_ApplyLookup(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Settings
		wantErr  string
	}{
		{
			name:     "no variables",
			env:      map[string]string{},
			expected: Settings{MapUnderscoreToCamelCase: true},
		},
		{
			name:     "empty variables are ignored",
			env:      map[string]string{EnvUnknownColumnBehavior: "", EnvAutoMappingBehavior: ""},
			expected: Settings{MapUnderscoreToCamelCase: true},
		},
		{
			name: "all overrides",
			env: map[string]string{
				EnvAutoMappingBehavior:      "full",
				EnvUnknownColumnBehavior:    "FAILING",
				EnvMapUnderscoreToCamelCase: "false",
			},
			expected: Settings{
				AutoMappingBehavior:              behavior.AutoMappingFull,
				AutoMappingUnknownColumnBehavior: behavior.UnknownColumnFailing,
			},
		},
		{
			name:     "invalid behavior",
			env:      map[string]string{EnvAutoMappingBehavior: "FULL", EnvUnknownColumnBehavior: "panic"},
			expected: Settings{MapUnderscoreToCamelCase: true},
			wantErr:  EnvUnknownColumnBehavior,
		},
		{
			name:     "invalid bool",
			env:      map[string]string{EnvMapUnderscoreToCamelCase: "maybe"},
			expected: Settings{MapUnderscoreToCamelCase: true},
			wantErr:  EnvMapUnderscoreToCamelCase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{MapUnderscoreToCamelCase: true}

			err := s.applyLookup(zerolog.Nop(), lookupFrom(tt.env))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expected, s)
		})
	}
}
