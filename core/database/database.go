package database

import (
	"fmt"

	"scout/core/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the gorm connection together with the adapter name the
// connection was opened with
type Database struct {
	DB *gorm.DB
}

// InitDB opens the database configured by DB_DRIVER. Unrecognized drivers
// fall back to sqlite so a fresh checkout always boots
func InitDB(cfg *config.Config) (*Database, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "mysql", "mysql2", "trilogy":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required for driver %q", cfg.DBDriver)
		}
		dialector = mysql.Open(cfg.DBURL)
	case "postgres", "postgresql":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required for driver %q", cfg.DBDriver)
		}
		dialector = postgres.Open(cfg.DBURL)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Adapter returns the adapter name reported by the active connection,
// e.g. "sqlite", "mysql", "postgres"
func (d *Database) Adapter() string {
	return d.DB.Dialector.Name()
}
