package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/logging"
	"github.com/dmitrijs2005/palace/internal/server/models"
)

const (
	idKeyPrefix    = "users/id/"
	emailKeyPrefix = "users/email/"
)

// BadgerRepository stores accounts in an embedded Badger database.
//
// Layout:
//
//	users/id/<id>       -> JSON record
//	users/email/<email> -> id
type BadgerRepository struct {
	db *badger.DB
	// mu serialises writers so the email index check and the insert happen
	// as one step.
	mu  sync.Mutex
	now Clock
}

func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{db: db, now: time.Now}
}

// OpenBadger opens (creating if needed) a Badger database in dir. An empty
// dir opens an in-memory instance.
func OpenBadger(dir string, logger logging.Logger) (*badger.DB, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &badgerLogger{logger: logger}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}
	return db, nil
}

type badgerRecord struct {
	ID                string          `json:"id"`
	Email             string          `json:"email"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Gender            models.Gender   `json:"gender"`
	Password          string          `json:"password"`
	SubscribedRegions []models.Region `json:"subscribedRegions"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toRecord(a *models.Account) badgerRecord {
	return badgerRecord{
		ID:                a.ID,
		Email:             a.Email,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Gender:            a.Gender,
		Password:          a.Password,
		SubscribedRegions: a.SubscribedRegions,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (r badgerRecord) account() *models.Account {
	a := &models.Account{
		ID:                r.ID,
		Email:             r.Email,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Gender:            r.Gender,
		Password:          r.Password,
		SubscribedRegions: r.SubscribedRegions,
		CreatedAt:         r.CreatedAt.UTC(),
		UpdatedAt:         r.UpdatedAt.UTC(),
	}
	return a.Clone()
}

func idKey(id string) []byte       { return []byte(idKeyPrefix + id) }
func emailKey(email string) []byte { return []byte(emailKeyPrefix + email) }

func getAccount(txn *badger.Txn, id string) (*models.Account, error) {
	item, err := txn.Get(idKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	var rec badgerRecord
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	if err != nil {
		return nil, err
	}
	return rec.account(), nil
}

func putAccount(txn *badger.Txn, a *models.Account) error {
	val, err := json.Marshal(toRecord(a))
	if err != nil {
		return err
	}
	if err := txn.Set(idKey(a.ID), val); err != nil {
		return err
	}
	return txn.Set(emailKey(a.Email), []byte(a.ID))
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// badgerError passes domain sentinels through and wraps everything else.
func badgerError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrConflict):
		return err
	case errors.Is(err, badger.ErrConflict):
		return common.ErrConflict
	default:
		return storeError(op, err)
	}
}

func (r *BadgerRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a *models.Account
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return common.ErrNotFound
			}
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		a, err = getAccount(txn, string(id))
		return err
	})
	if err != nil {
		return nil, badgerError("find user by email", err)
	}
	return a, nil
}

func (r *BadgerRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	var a *models.Account
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		a, err = getAccount(txn, id)
		return err
	})
	if err != nil {
		return nil, badgerError("find user by id", err)
	}
	return a, nil
}

func (r *BadgerRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	a, err := prepareNew(account, stamp(r.now))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.db.Update(func(txn *badger.Txn) error {
		for _, key := range [][]byte{idKey(a.ID), emailKey(a.Email)} {
			taken, err := exists(txn, key)
			if err != nil {
				return err
			}
			if taken {
				return common.ErrConflict
			}
		}
		return putAccount(txn, a)
	})
	if err != nil {
		return nil, badgerError("insert user", err)
	}
	return a.Clone(), nil
}

func (r *BadgerRepository) Update(ctx context.Context, id string, update models.AccountUpdate) (*models.Account, error) {
	update, err := prepareUpdate(update)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return r.FindByID(ctx, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var next *models.Account
	err = r.db.Update(func(txn *badger.Txn) error {
		current, err := getAccount(txn, id)
		if err != nil {
			return err
		}

		next = update.Apply(current)
		next.UpdatedAt = laterOf(stamp(r.now), current.UpdatedAt)

		if next.Email != current.Email {
			taken, err := exists(txn, emailKey(next.Email))
			if err != nil {
				return err
			}
			if taken {
				return common.ErrConflict
			}
			if err := txn.Delete(emailKey(current.Email)); err != nil {
				return err
			}
		}
		return putAccount(txn, next)
	})
	if err != nil {
		return nil, badgerError("update user", err)
	}
	return next, nil
}

func (r *BadgerRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := false
	err := r.db.Update(func(txn *badger.Txn) error {
		a, err := getAccount(txn, id)
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := txn.Delete(emailKey(a.Email)); err != nil {
			return err
		}
		if err := txn.Delete(idKey(id)); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, badgerError("delete user", err)
	}
	return deleted, nil
}

func (r *BadgerRepository) List(ctx context.Context) ([]*models.Account, error) {
	out := []*models.Account{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(idKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec badgerRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec.account())
		}
		return nil
	})
	if err != nil {
		return nil, badgerError("list users", err)
	}

	sortNewestFirst(out)
	return out, nil
}

// badgerLogger adapts logging.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger logging.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprintf(format, args...))
}
