package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	s := &Settings{}
	s.Main.Timezone = "UTC"
	s.WebServer = WebServerSettings{Listen: ":8080", RateLimit: 10, RateBurst: 20, ReadTimeout: time.Second}
	s.Output.SQLite = SQLiteSettings{Enabled: true, Path: "huntlog.db"}
	s.Security.BcryptCost = DefaultBcryptCost
	s.Dashboard = DashboardSettings{TopSpecies: 5, TopAreas: 5, RecentEntries: 5, CacheTTL: time.Minute}
	s.Logging.DefaultLevel = "info"
	return s
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"valid", func(*Settings) {}, ""},
		{"no backend", func(s *Settings) { s.Output.SQLite.Enabled = false }, "must be enabled"},
		{"empty sqlite path", func(s *Settings) { s.Output.SQLite.Path = " " }, "output.sqlite.path"},
		{"mysql missing host", func(s *Settings) {
			s.Output.SQLite.Enabled = false
			s.Output.MySQL = MySQLSettings{Enabled: true, Username: "u", Database: "d", Port: "3306"}
		}, "missing: host"},
		{"mysql bad port", func(s *Settings) {
			s.Output.SQLite.Enabled = false
			s.Output.MySQL = MySQLSettings{Enabled: true, Username: "u", Host: "h", Database: "d", Port: "99999"}
		}, "output.mysql.port"},
		{"bad timezone", func(s *Settings) { s.Main.Timezone = "Atlantis/Capital" }, "main.timezone"},
		{"listen without port", func(s *Settings) { s.WebServer.Listen = "localhost" }, "webserver.listen"},
		{"burst required", func(s *Settings) { s.WebServer.RateBurst = 0 }, "rateburst"},
		{"bcrypt cost", func(s *Settings) { s.Security.BcryptCost = 2 }, "bcryptcost"},
		{"admin half configured", func(s *Settings) { s.Security.Admin.Username = "admin" }, "security.admin"},
		{"negative top species", func(s *Settings) { s.Dashboard.TopSpecies = -1 }, "topspecies"},
		{"sentry without dsn", func(s *Settings) { s.Sentry.Enabled = true }, "sentry.dsn"},
		{"log level", func(s *Settings) { s.Logging.DefaultLevel = "verbose" }, "logging.default_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSettings()
			tt.mutate(s)
			err := ValidateSettings(s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
