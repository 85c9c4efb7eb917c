package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vietanh2810/bakery-api/internal/config"
	"github.com/vietanh2810/bakery-api/internal/logger"
)

// Open picks the backend from conf. A non-empty databaseURL always means
// PostgreSQL.
func Open(conf *config.DatabaseConfig, databaseURL string) (*gorm.DB, error) {
	if databaseURL != "" {
		return OpenPostgresWithURL(databaseURL)
	}

	switch conf.Driver {
	case config.DriverPostgres:
		return OpenPostgres(conf.Postgres)
	case config.DriverSQLite:
		return OpenSQLite(conf.SQLite.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// OpenSQLite opens a file-backed database at path. Foreign keys are enforced
// so that the RESTRICT rule on baked_goods.bakery_id holds.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open(sqlite) -> %w", err)
	}

	// SQLite allows a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	if conf == nil {
		return nil, fmt.Errorf("postgres config is missing")
	}

	return OpenPostgresWithURL(conf.DSN())
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open(postgres) -> %w", err)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	return sqlDB.Close()
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(zap.L()),
		TranslateError: true,
	}
}
