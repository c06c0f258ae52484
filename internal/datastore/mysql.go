package datastore

import (
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
)

const (
	mysqlMaxOpenConns    = 10
	mysqlMaxIdleConns    = 5
	mysqlConnMaxLifetime = time.Hour
)

// mysqlDSN builds the driver DSN from settings.
func mysqlDSN(settings *conf.MySQLSettings) string {
	cfg := mysqldriver.NewConfig()
	cfg.User = settings.Username
	cfg.Passwd = settings.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(settings.Host, settings.Port)
	cfg.DBName = settings.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// OpenMySQL connects to the configured MySQL server.
func OpenMySQL(settings *conf.MySQLSettings, log logger.Logger) (*Store, error) {
	log = log.Module("mysql")

	db, err := gorm.Open(mysql.Open(mysqlDSN(settings)), gormConfig(log))
	if err != nil {
		log.Error("failed to open MySQL database",
			logger.String("host", settings.Host),
			logger.String("port", settings.Port),
			logger.String("database", settings.Database),
			logger.Error(err))
		return nil, errors.New(fmt.Errorf("failed to open MySQL database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("host", settings.Host).
			Context("database", settings.Database).
			Build()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(mysqlMaxOpenConns)
	sqlDB.SetMaxIdleConns(mysqlMaxIdleConns)
	sqlDB.SetConnMaxLifetime(mysqlConnMaxLifetime)

	log.Info("connected to MySQL database",
		logger.String("host", settings.Host),
		logger.String("database", settings.Database))
	return newStore(db, DialectMySQL, log)
}
