package users

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/palace/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PostgresRepository stores accounts in PostgreSQL through the pgx stdlib
// driver.
type PostgresRepository struct {
	sqlRepository
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{sqlRepository{
		db: db,
		d: dialect{
			bind:       func(n int) string { return "$" + strconv.Itoa(n) },
			greatest:   "GREATEST",
			timeArg:    func(t time.Time) any { return t },
			isConflict: isPgUniqueViolation,
		},
		now: time.Now,
	}}
}

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
