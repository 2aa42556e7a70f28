package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userbase/internal/config"
	"userbase/internal/logging"
)

// Connect opens the database selected by cfg.DatabaseType.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: newGormLogger(cfg.IsDevelopment()),
	}

	switch cfg.DatabaseType {
	case config.SQLite:
		sqlDB, err := ConnectToSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		gdb, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, gormConfig)
		if err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to open gorm on SQLite: %w", err)
		}
		return gdb, nil
	case config.Postgres:
		gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		logging.Info.Println("Connected to PostgreSQL database")
		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}
}

// ConnectToSQLite initializes and returns a SQLite connection
func ConnectToSQLite(dbPath string) (*sql.DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for SQLite: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps :memory: databases stable.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	logging.Info.Println("Connected to SQLite database")
	return db, nil
}

// Close releases the connection pool behind gdb.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newGormLogger(development bool) logger.Interface {
	level := logger.Warn
	if development {
		level = logger.Info
	}
	return logger.New(logging.Info, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  development,
	})
}
