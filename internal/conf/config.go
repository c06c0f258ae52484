// Package conf loads, validates and persists huntlog settings.
package conf

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
)

//go:embed config.yaml
var configFiles embed.FS

// Settings contains all configuration options for huntlog.
type Settings struct {
	Debug bool // true to enable debug mode

	// Runtime values, not stored in config file
	Version   string `yaml:"-"`
	BuildDate string `yaml:"-"`

	Main struct {
		Name     string // instance name shown in the health endpoint
		Timezone string // IANA timezone used to determine "today" for season windows
	}

	WebServer WebServerSettings // HTTP API settings

	Output struct {
		SQLite SQLiteSettings // embedded database
		MySQL  MySQLSettings  // server database
	}

	Security SecuritySettings // account and authentication settings

	Dashboard DashboardSettings // dashboard statistics settings

	Telemetry TelemetrySettings // prometheus metrics endpoint

	Sentry SentrySettings // optional error reporting

	Logging logger.LoggingConfig // structured logging
}

// WebServerSettings contains HTTP listener settings.
type WebServerSettings struct {
	Debug        bool          // log request details
	Listen       string        // listen address, e.g. ":8080"
	ReadTimeout  time.Duration // http.Server read timeout
	WriteTimeout time.Duration // http.Server write timeout
	RateLimit    float64       // requests per second per client IP, 0 disables
	RateBurst    int           // burst size for the rate limiter
	CORSOrigins  []string      // allowed cross-origin callers, empty disables CORS
}

// SQLiteSettings contains settings for the embedded database.
type SQLiteSettings struct {
	Enabled bool   // true to use sqlite
	Path    string // path to sqlite database file
}

// MySQLSettings contains settings for the MySQL backend.
type MySQLSettings struct {
	Enabled  bool   // true to use mysql
	Username string // database user
	Password string // database password
	Host     string // database host
	Port     string // database port
	Database string // database name
}

// SecuritySettings contains account related settings.
type SecuritySettings struct {
	AllowRegistration bool // allow anonymous self-registration of hunter accounts
	BcryptCost        int  // cost factor for password hashes
	Admin             struct {
		Username string // bootstrap administrator created on start when missing
		Password string // bootstrap administrator password
	}
}

// DashboardSettings controls the statistics overview.
type DashboardSettings struct {
	TopSpecies    int           // rows in the species histogram, 0 for all
	TopAreas      int           // rows in the area histogram
	RecentEntries int           // number of most recent entries shown
	CacheTTL      time.Duration // lifetime of a cached dashboard, 0 disables caching
}

// TelemetrySettings controls the prometheus endpoint.
type TelemetrySettings struct {
	Enabled bool   // true to expose /metrics
	Listen  string // separate listen address; empty serves /metrics on the API listener
}

// SentrySettings controls error reporting.
type SentrySettings struct {
	Enabled     bool    // true to report database and configuration errors
	DSN         string  // sentry project DSN
	Environment string  // environment tag, e.g. "production"
	SampleRate  float64 // event sample rate between 0 and 1
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
	configFileFlag   string
)

// SetConfigFile makes Load read path instead of searching the default locations.
func SetConfigFile(path string) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()
	configFileFlag = path
}

// Load reads the configuration file and environment variables into Settings.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error unmarshaling config into struct: %w", err)).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigType("yaml")

	setDefaultConfig()

	if err := bindEnvVars(); err != nil {
		return errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("operation", "bind-env").
			Build()
	}

	if configFileFlag != "" {
		viper.SetConfigFile(configFileFlag)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("fatal error reading config file %s: %w", configFileFlag, err)
		}
		return nil
	}

	viper.SetConfigName("config")
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return createDefaultConfig(configPaths[0])
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig writes the embedded default config into dir and reads it.
func createDefaultConfig(dir string) error {
	configPath := filepath.Join(dir, "config.yaml")

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(getDefaultConfig()), 0o600); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	viper.SetConfigFile(configPath)
	return viper.ReadInConfig()
}

// getDefaultConfig returns the embedded default config.yaml.
func getDefaultConfig() string {
	data, err := fs.ReadFile(configFiles, "config.yaml")
	if err != nil {
		// The file is embedded at build time; a failure here is a build defect.
		panic(fmt.Sprintf("embedded config.yaml missing: %v", err))
	}
	return string(data)
}

// GetSettings returns the most recently loaded settings instance.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// SaveYAMLConfig writes settings to configPath. The file is written to a
// temporary file first and renamed into place.
func SaveYAMLConfig(configPath string, settings *Settings) error {
	yamlData, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling settings to YAML: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(configPath), "config-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tempFileName := tempFile.Name()
	defer os.Remove(tempFileName) //nolint:errcheck // already renamed on success

	if _, err := tempFile.Write(yamlData); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("error writing to temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("error closing temporary file: %w", err)
	}

	if err := moveFile(tempFileName, configPath); err != nil {
		return fmt.Errorf("error replacing config file: %w", err)
	}
	return nil
}

// Location returns the configured timezone, falling back to the local zone.
func (s *Settings) Location() *time.Location {
	if s == nil || s.Main.Timezone == "" || s.Main.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Main.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
