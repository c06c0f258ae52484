package datastore

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// sqliteDSN enables foreign keys on every pooled connection.
func sqliteDSN(path string) string {
	if path == MemoryPath {
		return MemoryPath + "?_foreign_keys=1"
	}
	return path + "?_foreign_keys=1&_busy_timeout=5000&_journal_mode=WAL"
}

// OpenSQLite opens (and creates) the database file at path. MemoryPath opens
// an in-memory database pinned to a single connection.
func OpenSQLite(path string, log logger.Logger) (*Store, error) {
	log = log.Module("sqlite")

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, errors.New(fmt.Errorf("create database directory: %w", err)).
					Component("datastore").
					Category(errors.CategoryFileIO).
					Context("path", path).
					Build()
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig(log))
	if err != nil {
		return nil, errors.New(fmt.Errorf("failed to open SQLite database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("path", path).
			Build()
	}

	if path == MemoryPath {
		// Each connection to :memory: is a separate database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "enable-foreign-keys").
			Build()
	}

	log.Info("opened SQLite database", logger.String("path", path))
	return newStore(db, DialectSQLite, log)
}
