// conf/validate.go

package conf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateMainSettings(settings); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateWebServerSettings(&settings.WebServer); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(settings); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateSecuritySettings(&settings.Security); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateDashboardSettings(&settings.Dashboard); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateSentrySettings(&settings.Sentry); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if !isValidLogLevel(settings.Logging.DefaultLevel) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("invalid logging.default_level %q", settings.Logging.DefaultLevel))
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateMainSettings(settings *Settings) error {
	tz := settings.Main.Timezone
	if tz == "" || tz == "Local" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("main.timezone %q is not a known IANA timezone", tz)
	}
	return nil
}

// validateWebServerSettings validates the listener and rate limiter settings
func validateWebServerSettings(settings *WebServerSettings) error {
	var errs []string

	if settings.Listen == "" {
		errs = append(errs, "webserver.listen must not be empty")
	} else if err := validateEnvListen(settings.Listen); err != nil {
		errs = append(errs, fmt.Sprintf("webserver.listen: %v", err))
	}

	if settings.RateLimit < 0 {
		errs = append(errs, "webserver.ratelimit must not be negative")
	}
	if settings.RateLimit > 0 && settings.RateBurst < 1 {
		errs = append(errs, "webserver.rateburst must be at least 1 when rate limiting is enabled")
	}
	if settings.ReadTimeout < 0 || settings.WriteTimeout < 0 {
		errs = append(errs, "webserver timeouts must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("webserver settings errors: %v", errs)
	}
	return nil
}

// validateOutputSettings requires exactly one database backend
func validateOutputSettings(settings *Settings) error {
	sqlite := settings.Output.SQLite
	mysql := settings.Output.MySQL

	switch {
	case sqlite.Enabled && mysql.Enabled:
		return fmt.Errorf("only one of output.sqlite and output.mysql can be enabled")
	case !sqlite.Enabled && !mysql.Enabled:
		return fmt.Errorf("one of output.sqlite or output.mysql must be enabled")
	case sqlite.Enabled && strings.TrimSpace(sqlite.Path) == "":
		return fmt.Errorf("output.sqlite.path must not be empty")
	case mysql.Enabled:
		var errs []string
		if mysql.Host == "" {
			errs = append(errs, "host")
		}
		if mysql.Database == "" {
			errs = append(errs, "database")
		}
		if mysql.Username == "" {
			errs = append(errs, "username")
		}
		if len(errs) > 0 {
			return fmt.Errorf("output.mysql is missing: %s", strings.Join(errs, ", "))
		}
		if port, err := strconv.Atoi(mysql.Port); err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("output.mysql.port %q is not a valid port", mysql.Port)
		}
	}
	return nil
}

func validateSecuritySettings(settings *SecuritySettings) error {
	if settings.BcryptCost < bcrypt.MinCost || settings.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("security.bcryptcost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, settings.BcryptCost)
	}
	if (settings.Admin.Username == "") != (settings.Admin.Password == "") {
		return fmt.Errorf("security.admin requires both username and password")
	}
	return nil
}

func validateDashboardSettings(settings *DashboardSettings) error {
	var errs []string
	if settings.TopSpecies < 0 {
		errs = append(errs, "dashboard.topspecies must not be negative")
	}
	if settings.TopAreas < 0 {
		errs = append(errs, "dashboard.topareas must not be negative")
	}
	if settings.RecentEntries < 0 {
		errs = append(errs, "dashboard.recententries must not be negative")
	}
	if settings.CacheTTL < 0 {
		errs = append(errs, "dashboard.cachettl must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("dashboard settings errors: %v", errs)
	}
	return nil
}

func validateSentrySettings(settings *SentrySettings) error {
	if !settings.Enabled {
		return nil
	}
	if settings.DSN == "" {
		return fmt.Errorf("sentry.dsn is required when sentry is enabled")
	}
	if settings.SampleRate < 0 || settings.SampleRate > 1 {
		return fmt.Errorf("sentry.samplerate must be between 0 and 1")
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
