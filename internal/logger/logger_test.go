package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "line: %s", line)
		records = append(records, rec)
	}
	return records
}

func TestSlogLoggerLevelsAndFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := NewSlogLogger(buf, LogLevelInfo, time.UTC).Module("journal")

	log.Debug("hidden")
	log.Info("entry created", Uint("entry_id", 7), String("species", "roebuck"), Bool("trophy", true))
	log.With(Int("owner", 3)).Warn("slow", Duration("elapsed", 1500*time.Millisecond))

	records := decodeLines(t, buf)
	require.Len(t, records, 2)

	assert.Equal(t, "entry created", records[0]["msg"])
	assert.Equal(t, "journal", records[0]["module"])
	assert.EqualValues(t, 7, records[0]["entry_id"])
	assert.Equal(t, "roebuck", records[0]["species"])

	assert.Equal(t, "WARN", records[1]["level"])
	assert.EqualValues(t, 3, records[1]["owner"])
	assert.Equal(t, "1.5s", records[1]["elapsed"])
}

func TestModuleNesting(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base := NewSlogLogger(buf, LogLevelTrace, nil).Module("datastore")
	base.Module("sqlite").Trace("pragma applied")

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "datastore.sqlite", records[0]["module"])
	assert.Equal(t, "TRACE", records[0]["level"])
}

func TestWithContextTraceID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := NewSlogLogger(buf, LogLevelInfo, nil)

	ctx := WithTraceID(context.Background(), "req-1234")
	log.WithContext(ctx).Info("handled")
	log.WithContext(context.Background()).Info("no trace")

	records := decodeLines(t, buf)
	require.Len(t, records, 2)
	assert.Equal(t, "req-1234", records[0]["trace_id"])
	assert.NotContains(t, records[1], "trace_id")
}

func TestSensitiveValuesAreRedacted(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := NewSlogLogger(buf, LogLevelInfo, nil)

	log.Info("login attempt",
		String("username", "jaeger"),
		String("password", "hunter2"),
		String("header", "Basic amFlZ2VyOmh1bnRlcjI="))

	out := buf.String()
	assert.Contains(t, out, "jaeger")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "amFlZ2VyOmh1bnRlcjI=")
	assert.Contains(t, out, redactedValue)
}

func TestRedactSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		secret string
	}{
		{"password param", "update failed password=topsecret", "topsecret"},
		{"bearer header", "Authorization: Bearer abc.def.ghi", "abc.def.ghi"},
		{"bcrypt hash", "hash $2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy stored", "N9qo8uLOickgx2ZMRZoMye"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := RedactSensitiveData(tt.input)
			assert.NotContains(t, out, tt.secret)
			assert.Contains(t, out, redactedValue)
		})
	}
}

func TestCentralLoggerRouting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	console := &bytes.Buffer{}
	accessPath := filepath.Join(dir, "access.log")

	cfg := &LoggingConfig{
		DefaultLevel: "info",
		Timezone:     "UTC",
		Console:      &ConsoleOutput{Enabled: true, Level: "debug"},
		FileOutput:   &FileOutput{Enabled: true, Path: filepath.Join(dir, "main.log"), Level: "info"},
		ModuleOutputs: map[string]ModuleOutput{
			"access": {Enabled: true, FilePath: accessPath, Level: "info"},
		},
		ModuleLevels: map[string]string{"journal": "debug"},
	}

	cl, err := NewCentralLogger(cfg, WithConsoleWriter(console))
	require.NoError(t, err)

	cl.Module("journal").Debug("cache miss", String("key", "dashboard:1"))
	cl.Module("main").Debug("suppressed")
	cl.Module("access").Info("GET /api/v1/entries", Int("status", 200))

	require.NoError(t, cl.Flush())
	require.NoError(t, cl.Close())

	assert.Contains(t, console.String(), "cache miss")
	assert.NotContains(t, console.String(), "suppressed")
	assert.NotContains(t, console.String(), "GET /api/v1/entries")

	access, err := os.ReadFile(accessPath)
	require.NoError(t, err)
	assert.Contains(t, string(access), `"status":200`)

	main, err := os.ReadFile(filepath.Join(dir, "main.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(main), "cache miss", "debug records stay below the file level")
}

func TestCentralLoggerRejectsBadTimezone(t *testing.T) {
	t.Parallel()

	_, err := NewCentralLogger(&LoggingConfig{Timezone: "Mars/Olympus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone")
}

func TestApplyConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := &LoggingConfig{}
	applyConfigDefaults(cfg)

	assert.Equal(t, DefaultLogLevel, cfg.DefaultLevel)
	require.NotNil(t, cfg.Console)
	assert.True(t, cfg.Console.Enabled)
	require.NotNil(t, cfg.FileOutput)
	assert.False(t, cfg.FileOutput.Enabled)
	assert.NotNil(t, cfg.ModuleOutputs)
}

func TestGormLoggerAdapterTrace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		elapsed   time.Duration
		threshold time.Duration
		wantMsg   string
		wantLevel string
	}{
		{"normal query", nil, 0, time.Second, "sql query", "TRACE"},
		{"record not found is not an error", gorm.ErrRecordNotFound, 0, time.Second, "sql query", "TRACE"},
		{"query error", errors.New("no such table: entries"), 0, time.Second, "query error", "WARN"},
		{"slow query", nil, 50 * time.Millisecond, time.Millisecond, "slow query", "WARN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			adapter := NewGormLoggerAdapter(NewSlogLogger(buf, LogLevelTrace, nil), tt.threshold)
			adapter.Trace(context.Background(), time.Now().Add(-tt.elapsed), func() (string, int64) {
				return "SELECT * FROM entries", 1
			}, tt.err)

			records := decodeLines(t, buf)
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantMsg, records[0]["msg"])
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, "SELECT * FROM entries", records[0]["sql"])
		})
	}
}

func TestEchoLoggerAdapter(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	adapter := NewEchoLoggerAdapter(NewSlogLogger(buf, LogLevelInfo, nil))

	adapter.Infof("http server started on %s", ":8080")
	assert.Panics(t, func() { adapter.Fatal("listener closed") })

	records := decodeLines(t, buf)
	require.Len(t, records, 2)
	assert.Equal(t, "http server started on :8080", records[0]["msg"])
	assert.Equal(t, "ERROR", records[1]["level"])
}
