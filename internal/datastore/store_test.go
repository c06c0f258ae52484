package datastore

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/species"
)

func testLogger() logger.Logger {
	return logger.NewSlogLogger(io.Discard, logger.LogLevelError, nil)
}

func TestOpenSQLiteFile(t *testing.T) {
	t.Parallel()

	settings := &conf.Settings{}
	settings.Output.SQLite = conf.SQLiteSettings{Enabled: true, Path: filepath.Join(t.TempDir(), "data", "huntlog.db")}

	store, err := Open(settings, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, DialectSQLite, store.Dialect())
	require.NoError(t, store.Ping(context.Background()))

	for _, table := range []string{"accounts", "areas", "stands", "firearms", "entries"} {
		assert.True(t, store.DB().Migrator().HasTable(table), "table %s", table)
	}
}

func TestOpenWithoutBackend(t *testing.T) {
	t.Parallel()

	_, err := Open(&conf.Settings{}, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database backend")
}

func TestSQLiteForeignKeysEnforced(t *testing.T) {
	t.Parallel()

	store, err := OpenSQLite(MemoryPath, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	var enabled int
	require.NoError(t, store.DB().Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	missing := uint(999)
	err = store.DB().Create(&entities.Entry{
		AccountID: missing, Species: species.Fox, Date: "2024-05-01", Sex: entities.SexUnknown,
	}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestSQLiteUniqueAreaNameTranslated(t *testing.T) {
	t.Parallel()

	store, err := OpenSQLite(MemoryPath, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	db := store.DB()
	owner := entities.Account{Username: "jaeger", PasswordHash: "x", Active: true}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&entities.Area{AccountID: owner.ID, Name: "Hochwald"}).Error)

	err = db.Create(&entities.Area{AccountID: owner.ID, Name: "Hochwald"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMySQLDSN(t *testing.T) {
	t.Parallel()

	dsn := mysqlDSN(&conf.MySQLSettings{
		Username: "hunter", Password: "s3cret", Host: "db", Port: "3306", Database: "huntlog",
	})
	assert.True(t, strings.HasPrefix(dsn, "hunter:s3cret@tcp(db:3306)/huntlog?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}
