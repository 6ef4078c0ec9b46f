package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/palace/internal/client/models"
	"github.com/dmitrijs2005/palace/internal/dbx"
)

const (
	KeyAuthToken = "auth_token"
	KeyUser      = "user"
)

// SessionStore persists the session token, and the account it belongs to,
// in the metadata table.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Load returns the saved token, or "" when there is none.
func (s *SessionStore) Load(ctx context.Context) (string, error) {
	v, err := NewSQLiteRepository(s.db).Get(ctx, KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CachedUser returns the account saved with the token, or nil.
func (s *SessionStore) CachedUser(ctx context.Context) (*models.User, error) {
	v, err := NewSQLiteRepository(s.db).Get(ctx, KeyUser)
	if err != nil || v == nil {
		return nil, err
	}

	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("failed to decode cached user: %w", err)
	}
	return &u, nil
}

// Save writes token and user in one transaction.
func (s *SessionStore) Save(ctx context.Context, token string, u *models.User) error {
	var user []byte
	if u != nil {
		var err error
		if user, err = json.Marshal(u); err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		if user == nil {
			return repo.Delete(ctx, KeyUser)
		}
		return repo.Set(ctx, KeyUser, user)
	})
}

// Clear removes the token and the cached user.
func (s *SessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUser)
	})
}
