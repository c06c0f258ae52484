package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate func(string) error
		value    string
		wantErr  bool
	}{
		{"bool ok", validateEnvBool, "true", false},
		{"bool bad", validateEnvBool, "yes please", true},
		{"listen ok", validateEnvListen, "0.0.0.0:8080", false},
		{"listen port only", validateEnvListen, ":443", false},
		{"listen no port", validateEnvListen, "localhost", true},
		{"port range", validateEnvPort, "70000", true},
		{"timezone", validateEnvTimezone, "Europe/Vienna", false},
		{"timezone bad", validateEnvTimezone, "Moon/Base", true},
		{"rate negative", validateEnvRate, "-1", true},
		{"duration", validateEnvDuration, "90s", false},
		{"duration bad", validateEnvDuration, "soon", true},
		{"log level", validateEnvLogLevel, "DEBUG", false},
		{"log level bad", validateEnvLogLevel, "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvBindingsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, b := range getEnvBindings() {
		assert.False(t, seen[b.EnvVar], "duplicate binding %s", b.EnvVar)
		seen[b.EnvVar] = true
		assert.Regexp(t, `^HUNTLOG_[A-Z_]+$`, b.EnvVar)
	}
}
