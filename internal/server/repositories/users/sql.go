package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/dbx"
	"github.com/dmitrijs2005/palace/internal/server/models"
)

const accountColumns = `id, email, first_name, last_name, gender, password, subscribed_regions, created_at, updated_at`

// dialect holds what differs between the SQL backends.
type dialect struct {
	bind       func(n int) string
	greatest   string
	timeArg    func(time.Time) any
	isConflict func(error) bool
}

// sqlRepository is the users table on any database/sql driver.
type sqlRepository struct {
	db  dbx.DBTX
	d   dialect
	now Clock
}

type rowScanner interface {
	Scan(dest ...any) error
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStore, op, err)
}

func (r *sqlRepository) findOne(ctx context.Context, where string, arg any) (*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = %s`, accountColumns, where, r.d.bind(1))

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, storeError("select user", err)
	}
	return a, nil
}

func (r *sqlRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, "email", email)
}

func (r *sqlRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, "id", id)
}

func (r *sqlRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	a, err := prepareNew(account, stamp(r.now))
	if err != nil {
		return nil, err
	}

	regions, err := encodeRegions(a.SubscribedRegions)
	if err != nil {
		return nil, storeError("encode regions", err)
	}

	binds := make([]string, 9)
	for i := range binds {
		binds[i] = r.d.bind(i + 1)
	}
	query := fmt.Sprintf(`INSERT INTO users (%s) VALUES (%s)`, accountColumns, strings.Join(binds, ", "))

	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.Email, a.FirstName, a.LastName, string(a.Gender), a.Password, regions,
		r.d.timeArg(a.CreatedAt), r.d.timeArg(a.UpdatedAt))
	if err != nil {
		if r.d.isConflict(err) {
			return nil, common.ErrConflict
		}
		return nil, storeError("insert user", err)
	}

	return a, nil
}

func (r *sqlRepository) Update(ctx context.Context, id string, update models.AccountUpdate) (*models.Account, error) {
	update, err := prepareUpdate(update)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return r.FindByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = %s", column, r.d.bind(len(args))))
	}

	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.FirstName != nil {
		set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		set("last_name", *update.LastName)
	}
	if update.Gender != nil {
		set("gender", string(*update.Gender))
	}
	if update.Password != nil {
		set("password", *update.Password)
	}
	if update.SubscribedRegions != nil {
		regions, err := encodeRegions(*update.SubscribedRegions)
		if err != nil {
			return nil, storeError("encode regions", err)
		}
		set("subscribed_regions", regions)
	}

	// updated_at already dominates created_at, so taking the greater of the
	// two keeps both orderings.
	args = append(args, r.d.timeArg(stamp(r.now)))
	sets = append(sets, fmt.Sprintf("updated_at = %s(%s, updated_at)", r.d.greatest, r.d.bind(len(args))))

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = %s RETURNING %s`,
		strings.Join(sets, ", "), r.d.bind(len(args)), accountColumns)

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if r.d.isConflict(err) {
			return nil, common.ErrConflict
		}
		return nil, storeError("update user", err)
	}
	return a, nil
}

func (r *sqlRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM users WHERE id = %s`, r.d.bind(1))

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, storeError("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeError("delete user", err)
	}
	return n > 0, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC, id DESC`, accountColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("list users", err)
	}
	defer rows.Close()

	out := []*models.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, storeError("scan user", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list users", err)
	}
	return out, nil
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		a                models.Account
		gender, regions  string
		created, updated any
	)
	if err := row.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &gender, &a.Password,
		&regions, &created, &updated); err != nil {
		return nil, err
	}
	a.Gender = models.Gender(gender)

	var err error
	if a.SubscribedRegions, err = decodeRegions(regions); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = decodeTime(created); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = decodeTime(updated); err != nil {
		return nil, err
	}
	return &a, nil
}

func encodeRegions(regions []models.Region) (string, error) {
	if regions == nil {
		regions = []models.Region{}
	}
	b, err := json.Marshal(regions)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeRegions(s string) ([]models.Region, error) {
	regions := []models.Region{}
	if s == "" {
		return regions, nil
	}
	if err := json.Unmarshal([]byte(s), &regions); err != nil {
		return nil, fmt.Errorf("decode regions: %w", err)
	}
	return regions, nil
}

// decodeTime accepts what the drivers hand back for a timestamp column:
// unix milliseconds from SQLite, time.Time from PostgreSQL.
func decodeTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case int64:
		return time.UnixMilli(t).UTC(), nil
	case time.Time:
		return t.UTC(), nil
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}
