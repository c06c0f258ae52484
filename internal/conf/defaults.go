// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"

	"github.com/huntlog/huntlog/internal/logger"
)

// Default values referenced outside of viper.
const (
	DefaultListen        = ":8080"
	DefaultSQLitePath    = "huntlog.db"
	DefaultBcryptCost    = 10
	DefaultTopSpecies    = 5
	DefaultTopAreas      = 5
	DefaultRecentEntries = 5
	DefaultCacheTTL      = 5 * time.Minute
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "huntlog")
	viper.SetDefault("main.timezone", "Local")

	viper.SetDefault("webserver.debug", false)
	viper.SetDefault("webserver.listen", DefaultListen)
	viper.SetDefault("webserver.readtimeout", 15*time.Second)
	viper.SetDefault("webserver.writetimeout", 30*time.Second)
	viper.SetDefault("webserver.ratelimit", 20.0)
	viper.SetDefault("webserver.rateburst", 40)
	viper.SetDefault("webserver.corsorigins", []string{})

	viper.SetDefault("output.sqlite.enabled", true)
	viper.SetDefault("output.sqlite.path", DefaultSQLitePath)

	viper.SetDefault("output.mysql.enabled", false)
	viper.SetDefault("output.mysql.username", "huntlog")
	viper.SetDefault("output.mysql.password", "")
	viper.SetDefault("output.mysql.host", "localhost")
	viper.SetDefault("output.mysql.port", "3306")
	viper.SetDefault("output.mysql.database", "huntlog")

	viper.SetDefault("security.allowregistration", false)
	viper.SetDefault("security.bcryptcost", DefaultBcryptCost)
	viper.SetDefault("security.admin.username", "")
	viper.SetDefault("security.admin.password", "")

	viper.SetDefault("dashboard.topspecies", DefaultTopSpecies)
	viper.SetDefault("dashboard.topareas", DefaultTopAreas)
	viper.SetDefault("dashboard.recententries", DefaultRecentEntries)
	viper.SetDefault("dashboard.cachettl", DefaultCacheTTL)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.listen", "")

	viper.SetDefault("sentry.enabled", false)
	viper.SetDefault("sentry.dsn", "")
	viper.SetDefault("sentry.environment", "production")
	viper.SetDefault("sentry.samplerate", 1.0)

	viper.SetDefault("logging.default_level", logger.DefaultLogLevel)
	viper.SetDefault("logging.timezone", "Local")
	viper.SetDefault("logging.console.enabled", logger.DefaultConsoleEnabled)
	viper.SetDefault("logging.console.level", logger.DefaultLogLevel)
	viper.SetDefault("logging.file_output.enabled", logger.DefaultFileEnabled)
	viper.SetDefault("logging.file_output.path", logger.DefaultLogPath)
	viper.SetDefault("logging.file_output.level", logger.DefaultLogLevel)
}
