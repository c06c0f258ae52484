package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// loadFrom resets viper and loads settings from a config file holding content.
// Tests using it are not parallel: viper and the settings instance are global.
func loadFrom(t *testing.T, content string) (*Settings, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	viper.Reset()
	SetConfigFile(path)
	t.Cleanup(func() {
		viper.Reset()
		SetConfigFile("")
	})

	return Load()
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	settings, err := loadFrom(t, getDefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "huntlog", settings.Main.Name)
	assert.Equal(t, ":8080", settings.WebServer.Listen)
	assert.Equal(t, 15*time.Second, settings.WebServer.ReadTimeout)
	assert.True(t, settings.Output.SQLite.Enabled)
	assert.False(t, settings.Output.MySQL.Enabled)
	assert.Equal(t, DefaultBcryptCost, settings.Security.BcryptCost)
	assert.Equal(t, DefaultTopSpecies, settings.Dashboard.TopSpecies)
	assert.Equal(t, DefaultCacheTTL, settings.Dashboard.CacheTTL)
	assert.Equal(t, "info", settings.Logging.DefaultLevel)
	require.NotNil(t, settings.Logging.Console)
	assert.True(t, settings.Logging.Console.Enabled)
	assert.Contains(t, settings.Logging.ModuleOutputs, "access")

	assert.Same(t, settings, GetSettings())
}

func TestLoadPartialFileUsesDefaults(t *testing.T) {
	settings, err := loadFrom(t, "main:\n  name: Revier Nord\ndashboard:\n  topspecies: 3\n")
	require.NoError(t, err)

	assert.Equal(t, "Revier Nord", settings.Main.Name)
	assert.Equal(t, 3, settings.Dashboard.TopSpecies)
	assert.Equal(t, DefaultTopAreas, settings.Dashboard.TopAreas)
	assert.Equal(t, DefaultSQLitePath, settings.Output.SQLite.Path)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HUNTLOG_LISTEN", ":9090")
	t.Setenv("HUNTLOG_ALLOW_REGISTRATION", "true")

	settings, err := loadFrom(t, getDefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ":9090", settings.WebServer.Listen)
	assert.True(t, settings.Security.AllowRegistration)
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("HUNTLOG_DEBUG", "maybe")

	_, err := loadFrom(t, getDefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HUNTLOG_DEBUG")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	_, err := loadFrom(t, "output:\n  sqlite:\n    enabled: true\n  mysql:\n    enabled: true\n")
	require.Error(t, err)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors[0], "only one of output.sqlite and output.mysql")
}

func TestSaveYAMLConfigRoundTrip(t *testing.T) {
	settings, err := loadFrom(t, getDefaultConfig())
	require.NoError(t, err)

	settings.Main.Name = "Eigenjagd"
	settings.Dashboard.CacheTTL = time.Minute
	settings.Version = "1.2.3"

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveYAMLConfig(path, settings))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "1.2.3", "runtime values are not persisted")

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "webserver")

	reloaded, err := loadFrom(t, string(data))
	require.NoError(t, err)
	assert.Equal(t, "Eigenjagd", reloaded.Main.Name)
	assert.Equal(t, time.Minute, reloaded.Dashboard.CacheTTL)
}

func TestSettingsLocation(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	assert.Equal(t, time.Local, s.Location())

	s.Main.Timezone = "Europe/Berlin"
	assert.Equal(t, "Europe/Berlin", s.Location().String())

	s.Main.Timezone = "Nowhere/Special"
	assert.Equal(t, time.Local, s.Location())
}
