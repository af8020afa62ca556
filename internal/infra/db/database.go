// Package db opens the relational store and applies the schema.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

const pingTimeout = 5 * time.Second

// Database owns the GORM handle for the process lifetime.
type Database struct {
	db      *gorm.DB
	dialect string
}

// Open connects to DATABASE_URL. postgres:// URLs use PostgreSQL; file: or sqlite: URLs
// use the pure Go SQLite driver for local runs without a server.
func Open(cfg *config.DatabaseConfig) (*Database, error) {
	dialector, dialect := dialectorFor(cfg.URL)

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}

	pool, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	if dialect == "sqlite" {
		// A single writer avoids SQLITE_BUSY under concurrent requests.
		pool.SetMaxOpenConns(1)
	} else {
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
		pool.SetMaxIdleConns(cfg.MaxIdleConns)
		pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}

	slog.Info("Database connected", "dialect", dialect, "max_open_conns", cfg.MaxOpenConns)
	return &Database{db: gdb, dialect: dialect}, nil
}

func dialectorFor(url string) (gorm.Dialector, string) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), "sqlite"
	case strings.HasPrefix(url, "file:"):
		return sqlite.Open(url), "sqlite"
	default:
		return postgres.Open(url), "postgres"
	}
}

// Wrap adopts a connection opened elsewhere, such as a test database.
func Wrap(gdb *gorm.DB) *Database {
	return &Database{db: gdb, dialect: gdb.Dialector.Name()}
}

func (d *Database) DB() *gorm.DB {
	return d.db
}

// Migrate brings every hub table up to date.
func (d *Database) Migrate() error {
	if err := d.db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto-migrate %s schema: %w", d.dialect, err)
	}
	return nil
}

// HealthCheck reports whether the pool answers a ping.
func (d *Database) HealthCheck(ctx context.Context) bool {
	pool, err := d.db.DB()
	if err == nil {
		err = pool.PingContext(ctx)
	}
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	return true
}

func (d *Database) Close() error {
	pool, err := d.db.DB()
	if err != nil {
		return err
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}
