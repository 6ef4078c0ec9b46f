// Package repomanager opens the configured user store backend and runs the
// schema migrations the SQL backends need (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/palace/internal/filex"
	"github.com/dmitrijs2005/palace/internal/logging"
	"github.com/dmitrijs2005/palace/internal/server/config"
	"github.com/dmitrijs2005/palace/internal/server/migrations"
	"github.com/dmitrijs2005/palace/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Manager owns the store connection and vends the repositories built on it.
type Manager struct {
	driver string
	users  users.Repository
	close  func() error
}

// Users returns the user store.
func (m *Manager) Users() users.Repository {
	return m.users
}

// Driver names the backend in use.
func (m *Manager) Driver() string {
	return m.driver
}

// Close releases the underlying connection or database handle.
func (m *Manager) Close() error {
	if m.close == nil {
		return nil
	}
	return m.close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations for dialect and
// applies the ones found in dir.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return err
	}
	return nil
}

// SQLiteDSN returns the connection string used for the SQLite store.
func SQLiteDSN(path string) string {
	return path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// Open connects to the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Manager, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		return &Manager{driver: cfg.StoreDriver, users: users.NewMemoryRepository()}, nil

	case config.DriverSQLite:
		if err := filex.EnsureParentDir(cfg.SQLitePath); err != nil {
			return nil, fmt.Errorf("sqlite dir: %w", err)
		}
		db, err := openSQL(ctx, "sqlite", SQLiteDSN(cfg.SQLitePath), "sqlite3", migrations.SQLiteDir)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "user store opened", "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return &Manager{driver: cfg.StoreDriver, users: users.NewSQLiteRepository(db), close: db.Close}, nil

	case config.DriverPostgres:
		db, err := openSQL(ctx, "pgx", cfg.DatabaseDSN, "pgx", migrations.PostgresDir)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "user store opened", "driver", cfg.StoreDriver)
		return &Manager{driver: cfg.StoreDriver, users: users.NewPostgresRepository(db), close: db.Close}, nil

	case config.DriverBadger:
		dir, err := filex.EnsureDir(cfg.BadgerDir)
		if err != nil {
			return nil, fmt.Errorf("badger dir: %w", err)
		}
		db, err := users.OpenBadger(dir, logger.With("component", "badger"))
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "user store opened", "driver", cfg.StoreDriver, "dir", dir)
		return &Manager{driver: cfg.StoreDriver, users: users.NewBadgerRepository(db), close: closeBadger(db)}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openSQL(ctx context.Context, driverName, dsn, dialect, dir string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	if err := RunMigrations(ctx, db, dialect, dir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migrations: %w", err)
	}
	return db, nil
}

func closeBadger(db *badger.DB) func() error {
	return func() error {
		if err := db.Close(); err != nil {
			return fmt.Errorf("close badger: %w", err)
		}
		return nil
	}
}
