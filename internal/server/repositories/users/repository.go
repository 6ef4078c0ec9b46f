// Package users implements the user store: the durable keyed collection of
// accounts, addressable by id and by email.
//
// All adapters share the same contract:
//   - FindByID / FindByEmail return common.ErrNotFound when nothing matches.
//   - Create and Update return common.ErrConflict when the id or email is
//     already taken; exactly one of several racing creates for one email wins.
//   - Create stamps CreatedAt and UpdatedAt; Update refreshes UpdatedAt and
//     never moves it before CreatedAt. An empty update changes nothing.
//   - Delete reports whether a record was removed.
//   - List returns accounts newest CreatedAt first.
//   - Driver failures are wrapped so that errors.Is(err, common.ErrStore).
//
// Accounts handed out are copies; mutating them does not affect the store.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/server/models"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	Update(ctx context.Context, id string, update models.AccountUpdate) (*models.Account, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*models.Account, error)
}

// Clock returns the current time.
type Clock func() time.Time

// stamp truncates to milliseconds so timestamps survive every backend
// unchanged.
func stamp(now Clock) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

// laterOf keeps UpdatedAt monotonic even if the wall clock steps back.
func laterOf(t, floor time.Time) time.Time {
	if t.Before(floor) {
		return floor
	}
	return t
}

// prepareNew validates the store-boundary invariants of a record about to be
// inserted and returns a normalized copy.
func prepareNew(account *models.Account, now time.Time) (*models.Account, error) {
	c := account.Clone()
	v := common.NewValidationError()

	if !c.Gender.Valid() {
		v.Add("gender", "unknown gender "+string(c.Gender))
	}
	regions, err := models.NormalizeRegions(c.SubscribedRegions)
	if err != nil {
		v.Add("subscribedRegions", err.Error())
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	c.SubscribedRegions = regions
	c.CreatedAt = now
	c.UpdatedAt = now
	return c, nil
}

// prepareUpdate checks the gender and normalizes the regions carried by an
// update.
func prepareUpdate(u models.AccountUpdate) (models.AccountUpdate, error) {
	v := common.NewValidationError()

	if u.Gender != nil && !u.Gender.Valid() {
		v.Add("gender", "unknown gender "+string(*u.Gender))
	}
	if u.SubscribedRegions != nil {
		regions, err := models.NormalizeRegions(*u.SubscribedRegions)
		if err != nil {
			v.Add("subscribedRegions", err.Error())
		} else {
			u.SubscribedRegions = &regions
		}
	}
	return u, v.OrNil()
}
