package database

import (
	"fmt"
	"os"
	"path/filepath"

	"harvest-sync/internal/config"
	"harvest-sync/internal/database/migrations"
	"harvest-sync/internal/hsync"
)

// NewDatabaseFromConfig creates a Database implementation based on the database config type
// and brings its schema up to date.
func NewDatabaseFromConfig(cfg config.DatabaseConfig, instanceID string) (hsync.Database, error) {
	var (
		db  *SQLiteDatabase
		err error
	)
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		db, err = NewSQLiteDatabase(filepath.Join(cfg.DataDir, instanceID+".db"))
	case "memory":
		db, err = NewSQLiteDatabase(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db.db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}
