// env.go - Environment variable configuration and validation for huntlog
package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envBinding holds metadata for environment variable bindings (internal use)
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns all environment variable bindings with validation
func getEnvBindings() []envBinding {
	return []envBinding{
		{"debug", "HUNTLOG_DEBUG", validateEnvBool},
		{"main.timezone", "HUNTLOG_TIMEZONE", validateEnvTimezone},

		// Web server
		{"webserver.listen", "HUNTLOG_LISTEN", validateEnvListen},
		{"webserver.ratelimit", "HUNTLOG_RATELIMIT", validateEnvRate},

		// Database
		{"output.sqlite.enabled", "HUNTLOG_SQLITE_ENABLED", validateEnvBool},
		{"output.sqlite.path", "HUNTLOG_SQLITE_PATH", nil},
		{"output.mysql.enabled", "HUNTLOG_MYSQL_ENABLED", validateEnvBool},
		{"output.mysql.username", "HUNTLOG_MYSQL_USERNAME", nil},
		{"output.mysql.password", "HUNTLOG_MYSQL_PASSWORD", nil},
		{"output.mysql.host", "HUNTLOG_MYSQL_HOST", nil},
		{"output.mysql.port", "HUNTLOG_MYSQL_PORT", validateEnvPort},
		{"output.mysql.database", "HUNTLOG_MYSQL_DATABASE", nil},

		// Security
		{"security.allowregistration", "HUNTLOG_ALLOW_REGISTRATION", validateEnvBool},
		{"security.admin.username", "HUNTLOG_ADMIN_USERNAME", nil},
		{"security.admin.password", "HUNTLOG_ADMIN_PASSWORD", nil},

		// Dashboard
		{"dashboard.cachettl", "HUNTLOG_DASHBOARD_CACHETTL", validateEnvDuration},

		// Telemetry
		{"telemetry.enabled", "HUNTLOG_TELEMETRY_ENABLED", validateEnvBool},
		{"sentry.enabled", "HUNTLOG_SENTRY_ENABLED", validateEnvBool},
		{"sentry.dsn", "HUNTLOG_SENTRY_DSN", nil},

		{"logging.default_level", "HUNTLOG_LOG_LEVEL", validateEnvLogLevel},
	}
}

// bindEnvVars sets up environment variable bindings with validation (internal)
func bindEnvVars() error {
	bindings := getEnvBindings()
	var warnings []string

	for _, binding := range bindings {
		if err := viper.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate != nil {
			if envValue := os.Getenv(binding.EnvVar); envValue != "" {
				if err := binding.Validate(envValue); err != nil {
					warnings = append(warnings, fmt.Sprintf("Invalid %s value: %v", binding.EnvVar, err))
				}
			}
		}
	}

	if len(warnings) > 0 {
		return fmt.Errorf("environment variable issues:\n  - %s", strings.Join(warnings, "\n  - "))
	}

	return nil
}

// validateEnvBool validates boolean environment variables
func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value '%s': must be true/false, 1/0, t/f", value)
	}
	return nil
}

func validateEnvTimezone(value string) error {
	if _, err := time.LoadLocation(value); err != nil {
		return fmt.Errorf("unknown timezone '%s'", value)
	}
	return nil
}

// validateEnvListen accepts "host:port" and ":port".
func validateEnvListen(value string) error {
	idx := strings.LastIndex(value, ":")
	if idx < 0 {
		return fmt.Errorf("listen address must contain a port, got '%s'", value)
	}
	return validateEnvPort(value[idx+1:])
}

func validateEnvPort(value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("port must be a number, got '%s'", value)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}

func validateEnvRate(value string) error {
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid rate: %w", err)
	}
	if rate < 0 {
		return fmt.Errorf("rate must not be negative, got %g", rate)
	}
	return nil
}

func validateEnvDuration(value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("duration must not be negative, got %s", d)
	}
	return nil
}

func validateEnvLogLevel(value string) error {
	if !isValidLogLevel(value) {
		return fmt.Errorf("log level must be one of trace, debug, info, warn, error; got '%s'", value)
	}
	return nil
}
