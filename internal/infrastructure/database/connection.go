// Package database manages the shared MySQL connection used by the
// repositories.
package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/shared/config"
	applogger "helpdesk/internal/shared/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond

	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 50
	defaultConnMaxLifetime = 60 // minutes
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

func dsn(cfg *config.DatabaseConfig) string {
	// loc=Local so unix-milli timestamps round-trip in server time.
	params := strings.Join([]string{
		"charset=utf8mb4",
		"parseTime=true",
		"loc=Local",
	}, "&")

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database, params)
}

// Init opens the MySQL connection and keeps it as the package
// singleton.
func Init(cfg *config.DatabaseConfig) error {
	gl := gormlogger.New(queryLogWriter{}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       dsn(cfg),
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:      gl,
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, defaultMaxIdleConns))
	sqlDB.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, defaultMaxOpenConns))
	sqlDB.SetConnMaxLifetime(time.Duration(orDefault(cfg.ConnMaxLifetime, defaultConnMaxLifetime)) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = conn
	dbMu.Unlock()

	applogger.Info("database connection established",
		"host", cfg.Host, "database", cfg.Database)

	return nil
}

// Get returns the shared connection. Nil before Init.
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close releases the shared connection.
func Close() error {
	dbMu.RLock()
	conn := db
	dbMu.RUnlock()

	if conn == nil {
		return nil
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	applogger.Info("database connection closed")
	return nil
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// queryLogWriter routes gorm's warn-level output into the application
// logger. At that level gorm emits only slow queries and errors.
type queryLogWriter struct{}

func (queryLogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if strings.Contains(msg, "SLOW SQL") {
		applogger.Warn("slow query", "details", msg)
		return
	}
	applogger.Error("database error", "details", msg)
}
