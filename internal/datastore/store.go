// Package datastore opens the journal database and migrates the schema.
package datastore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
)

// Dialect identifies the database engine behind a Store.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	pingTimeout        = 5 * time.Second
)

// Store owns the gorm connection.
type Store struct {
	db      *gorm.DB
	dialect Dialect
	log     logger.Logger
}

// Open connects to the backend enabled in settings and migrates the schema.
func Open(settings *conf.Settings, log logger.Logger) (*Store, error) {
	switch {
	case settings.Output.SQLite.Enabled:
		return OpenSQLite(settings.Output.SQLite.Path, log)
	case settings.Output.MySQL.Enabled:
		return OpenMySQL(&settings.Output.MySQL, log)
	default:
		return nil, errors.Newf("no database backend enabled").
			Component("datastore").
			Category(errors.CategoryConfiguration).
			Build()
	}
}

// gormConfig returns the shared gorm configuration. TranslateError maps
// driver errors to gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func gormConfig(log logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLoggerAdapter(log, slowQueryThreshold),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// newStore migrates db and wraps it.
func newStore(db *gorm.DB, dialect Dialect, log logger.Logger) (*Store, error) {
	s := &Store{db: db, dialect: dialect, log: log}
	if err := s.migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates or updates every table.
func (s *Store) migrate() error {
	start := time.Now()
	if err := s.db.AutoMigrate(entities.All()...); err != nil {
		return errors.New(fmt.Errorf("auto-migrate: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("dialect", string(s.dialect)).
			Timing("auto-migrate", time.Since(start)).
			Build()
	}
	s.log.Debug("database migration completed",
		logger.String("dialect", string(s.dialect)),
		logger.Duration("duration", time.Since(start)))
	return nil
}

// DB returns the gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Dialect returns the backend engine.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		s.log.Error("failed to close database", logger.Error(err))
		return err
	}
	s.log.Debug("database connection closed", logger.String("dialect", string(s.dialect)))
	return nil
}
