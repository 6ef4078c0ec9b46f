package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/palace/internal/logging"
	"github.com/dmitrijs2005/palace/internal/server/config"
	"github.com/dmitrijs2005/palace/internal/server/models"
	"github.com/dmitrijs2005/palace/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestRunMigrations_Success(t *testing.T) {
	db := newDB(t)

	var gotDir string
	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	})

	require.NoError(t, RunMigrations(context.Background(), db, "pgx", "postgres"))
	assert.Equal(t, "postgres", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	db := newDB(t)

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	err := RunMigrations(context.Background(), db, "pgx", "postgres")
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestRunMigrations_UnknownDialect(t *testing.T) {
	db := newDB(t)
	assert.Error(t, RunMigrations(context.Background(), db, "oracle", "x"))
}

func cfgFor(t *testing.T, driver string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.StoreDriver = driver
	dir := t.TempDir()
	c.SQLitePath = filepath.Join(dir, "nested", "app.db")
	c.BadgerDir = filepath.Join(dir, "badger")
	return c
}

func TestOpen_Drivers(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverSQLite, config.DriverBadger} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()

			m, err := Open(ctx, cfgFor(t, driver), logging.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, m.Close()) })

			assert.Equal(t, driver, m.Driver())

			repo := m.Users()
			_, err = repo.Create(ctx, &models.Account{
				ID: "u-1", Email: "a@example.com", FirstName: "A", LastName: "B",
				Gender: models.GenderMale, Password: "pw",
			})
			require.NoError(t, err)

			got, err := repo.FindByEmail(ctx, "a@example.com")
			require.NoError(t, err)
			assert.Equal(t, "u-1", got.ID)
		})
	}
}

func TestOpen_ConcreteTypes(t *testing.T) {
	ctx := context.Background()

	m, err := Open(ctx, cfgFor(t, config.DriverSQLite), nil)
	require.NoError(t, err)
	defer m.Close()
	assert.IsType(t, &users.SQLiteRepository{}, m.Users())

	b, err := Open(ctx, cfgFor(t, config.DriverBadger), nil)
	require.NoError(t, err)
	defer b.Close()
	assert.IsType(t, &users.BadgerRepository{}, b.Users())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), cfgFor(t, "mongo"), logging.Nop())
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestSQLiteDSN(t *testing.T) {
	dsn := SQLiteDSN("data/app.db")
	assert.Contains(t, dsn, "data/app.db?")
	assert.Contains(t, dsn, "journal_mode(WAL)")
	assert.Contains(t, dsn, "busy_timeout(5000)")
}
