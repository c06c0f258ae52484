package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore"
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/datastore/repository"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/species"
)

func setup(t *testing.T) (*journal.Service, *entities.Account) {
	t.Helper()

	log := logger.NewSlogLogger(io.Discard, logger.LogLevelError, nil)
	store, err := datastore.OpenSQLite(datastore.MemoryPath, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	settings := &conf.Settings{}
	settings.Main.Timezone = "UTC"
	settings.Security.BcryptCost = 4
	settings.Dashboard.TopSpecies = 5
	settings.Dashboard.TopAreas = 5
	settings.Dashboard.RecentEntries = 5

	svc := journal.New(repository.New(store.DB()), settings, log)
	ctx := context.Background()

	acct, err := svc.CreateAccount(ctx, journal.SystemActor, journal.AccountInput{
		Username: journal.Some("jaeger"),
		Password: journal.Some("waidmannsheil"),
	})
	require.NoError(t, err)

	area, err := svc.CreateArea(ctx, acct, journal.AreaInput{Name: journal.Some("Hochwald")})
	require.NoError(t, err)

	for _, in := range []journal.EntryInput{
		{Species: journal.Some(species.Roebuck), Date: journal.Some("2024-05-01"), AreaID: journal.Some(area.ID), TrophyKept: journal.Some(true)},
		{Species: journal.Some(species.Boar), Date: journal.Some("2024-06-01")},
	} {
		_, err := svc.CreateEntry(ctx, acct, in)
		require.NoError(t, err)
	}

	return svc, acct
}

func TestRunText(t *testing.T) {
	t.Parallel()

	svc, acct := setup(t)
	var buf bytes.Buffer
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, run(context.Background(), svc, acct, today, &buf, false))
	out := buf.String()

	assert.Contains(t, out, "Dashboard of jaeger on 2024-06-15")
	assert.Contains(t, out, "Season 2024/25 (2024-04-01 to 2025-03-31)")
	assert.Contains(t, out, "Area Hochwald")
	assert.Regexp(t, `Trophies\s+1`, out)
	assert.Regexp(t, `Total\s+2`, out)
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	svc, acct := setup(t)
	var buf bytes.Buffer
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, run(context.Background(), svc, acct, today, &buf, true))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2024-06-15", got["date"])
	assert.Contains(t, got, "season_stats")
	assert.Len(t, got["recent"], 2)
}
