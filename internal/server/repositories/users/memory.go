package users

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. Writers hold the lock
// for the whole check-then-insert sequence, which is what makes email
// uniqueness race-free.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.Account
	byEmail map[string]string
	now     Clock
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.Account),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[account.ID]; ok {
		return nil, common.ErrConflict
	}
	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrConflict
	}

	a, err := prepareNew(account, stamp(r.now))
	if err != nil {
		return nil, err
	}

	r.byID[a.ID] = a
	r.byEmail[a.Email] = a.ID

	return a.Clone(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, update models.AccountUpdate) (*models.Account, error) {
	update, err := prepareUpdate(update)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if update.Empty() {
		return current.Clone(), nil
	}

	if update.Email != nil && *update.Email != current.Email {
		if _, taken := r.byEmail[*update.Email]; taken {
			return nil, common.ErrConflict
		}
	}

	next := update.Apply(current)
	next.UpdatedAt = laterOf(stamp(r.now), current.UpdatedAt)

	if next.Email != current.Email {
		delete(r.byEmail, current.Email)
		r.byEmail[next.Email] = id
	}
	r.byID[id] = next

	return next.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byEmail, a.Email)
	delete(r.byID, id)
	return true, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Account, error) {
	r.mu.RLock()
	out := make([]*models.Account, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a.Clone())
	}
	r.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}

// sortNewestFirst orders by CreatedAt descending, ties broken by id so the
// order is stable.
func sortNewestFirst(accounts []*models.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
		}
		return accounts[i].ID > accounts[j].ID
	})
}
