// Package services contains application services for the palace client.
// This file defines the session manager: it restores a saved session at
// startup, signs in and out, and tells observers about every change.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/palace/internal/client/client"
	"github.com/dmitrijs2005/palace/internal/client/models"
	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/logging"
)

// State is the authentication state of the client.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

var (
	ErrInProgress      = errors.New("request already in progress")
	ErrNotSignedIn     = errors.New("not signed in")
	ErrSessionNotSaved = errors.New("could not save session")
	ErrSessionChanged  = errors.New("session changed while the request was running")
)

// TokenStore persists the session token across restarts.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, u *models.User) error
	Clear(ctx context.Context) error
}

// Snapshot is the observable session state. User and Token are set only
// while Authenticated.
type Snapshot struct {
	State State
	User  *models.User
	Token string
}

// IsAuthenticated is shorthand for State == StateAuthenticated.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

// Result reports the outcome of a user-initiated action. Error holds a
// message fit for display; Err the underlying error for errors.Is checks.
type Result struct {
	Success bool
	Error   string
	Err     error
}

func failed(err error) Result {
	switch {
	case errors.Is(err, client.ErrUnavailable),
		errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrConflict),
		errors.Is(err, common.ErrValidation),
		errors.Is(err, ErrInProgress),
		errors.Is(err, ErrNotSignedIn),
		errors.Is(err, ErrSessionNotSaved),
		errors.Is(err, ErrSessionChanged):
		return Result{Error: err.Error(), Err: err}
	default:
		return Result{Error: common.ErrInternal.Error(), Err: err}
	}
}

// SessionManager owns the client's session. It is safe for concurrent use.
type SessionManager struct {
	client client.Client
	store  TokenStore
	logger logging.Logger

	// writeMu pairs a token store write with the state change it backs.
	writeMu sync.Mutex

	mu       sync.Mutex
	snap     Snapshot
	epoch    uint64 // bumped whenever State or Token changes
	inFlight bool
	subs     map[int]func(Snapshot)
	nextSub  int
}

func NewSessionManager(c client.Client, store TokenStore, logger logging.Logger) *SessionManager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SessionManager{
		client: c,
		store:  store,
		logger: logger.With("module", "session"),
		snap:   Snapshot{State: StateUnknown},
		subs:   make(map[int]func(Snapshot)),
	}
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.SubscribedRegions != nil {
		c.SubscribedRegions = make([]string, len(u.SubscribedRegions))
		copy(c.SubscribedRegions, u.SubscribedRegions)
	}
	return &c
}

func (s Snapshot) clone() Snapshot {
	s.User = cloneUser(s.User)
	return s
}

// Snapshot returns the current state.
func (m *SessionManager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.clone()
}

// Subscribe registers fn to be called with every new state. The returned
// function removes it.
func (m *SessionManager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *SessionManager) currentEpoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// apply installs s and returns the subscribers to notify. The epoch moves
// when the session identity changes, or always when force is set.
func (m *SessionManager) apply(s Snapshot, force bool) []func(Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if force || s.State != m.snap.State || s.Token != m.snap.Token {
		m.epoch++
	}
	m.snap = s
	subs := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(Snapshot), s Snapshot) {
	for _, fn := range subs {
		fn(s.clone())
	}
}

// commit runs write and installs next, unless the session moved past epoch
// since the caller read it. A nil write only changes state.
func (m *SessionManager) commit(epoch uint64, write func() error, next Snapshot) error {
	m.writeMu.Lock()
	if m.currentEpoch() != epoch {
		m.writeMu.Unlock()
		return ErrSessionChanged
	}
	if write != nil {
		if err := write(); err != nil {
			m.writeMu.Unlock()
			return err
		}
	}
	subs := m.apply(next, false)
	m.writeMu.Unlock()

	notify(subs, next)
	return nil
}

// signOutIf clears the session if it is still the one seen at epoch.
func (m *SessionManager) signOutIf(ctx context.Context, epoch uint64) {
	err := m.commit(epoch, func() error {
		if err := m.store.Clear(ctx); err != nil {
			m.logger.Warn(ctx, "failed to clear token", "error", err)
		}
		return nil
	}, Snapshot{State: StateUnauthenticated})
	if err != nil {
		m.logger.Debug(ctx, "sign out skipped", "error", err)
	}
}

func (m *SessionManager) begin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return false
	}
	m.inFlight = true
	return true
}

func (m *SessionManager) end() {
	m.mu.Lock()
	m.inFlight = false
	m.mu.Unlock()
}

// Restore resumes a saved session. Without a token, or when the server
// rejects it, the session ends Unauthenticated and nil is returned; a
// rejected token is also removed. Any other failure leaves the token in
// place for a later retry, ends Unauthenticated and is returned.
func (m *SessionManager) Restore(ctx context.Context) error {
	epoch := m.currentEpoch()
	signedOut := Snapshot{State: StateUnauthenticated}

	token, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn(ctx, "failed to load saved token", "error", err)
		_ = m.commit(epoch, nil, signedOut)
		return err
	}
	if token == "" {
		_ = m.commit(epoch, nil, signedOut)
		return nil
	}

	u, err := m.client.GetMe(ctx, token)
	switch {
	case err == nil:
		_ = m.commit(epoch, func() error {
			if err := m.store.Save(ctx, token, u); err != nil {
				m.logger.Warn(ctx, "failed to refresh cached user", "error", err)
			}
			return nil
		}, Snapshot{State: StateAuthenticated, User: u, Token: token})
		return nil
	case errors.Is(err, common.ErrUnauthorized):
		m.logger.Info(ctx, "saved session rejected, signing out")
		m.signOutIf(ctx, epoch)
		return nil
	default:
		m.logger.Warn(ctx, "session restore failed", "error", err)
		_ = m.commit(epoch, nil, signedOut)
		return err
	}
}

// establish persists a freshly issued token and switches to Authenticated.
// A Logout that finished while the request ran wins; the token is dropped.
func (m *SessionManager) establish(ctx context.Context, epoch uint64, token string, u *models.User) Result {
	err := m.commit(epoch, func() error {
		if err := m.store.Save(ctx, token, u); err != nil {
			m.logger.Error(ctx, "failed to save token", "error", err)
			return ErrSessionNotSaved
		}
		return nil
	}, Snapshot{State: StateAuthenticated, User: u, Token: token})
	if err != nil {
		return failed(err)
	}
	return Result{Success: true}
}

// Login signs in with email and password. A failed attempt changes nothing.
func (m *SessionManager) Login(ctx context.Context, email, password string) Result {
	if !m.begin() {
		return failed(ErrInProgress)
	}
	defer m.end()

	epoch := m.currentEpoch()
	token, u, err := m.client.Login(ctx, email, password)
	if err != nil {
		return failed(err)
	}
	return m.establish(ctx, epoch, token, u)
}

// Signup creates an account and signs in to it. A failed attempt changes
// nothing.
func (m *SessionManager) Signup(ctx context.Context, form models.SignupForm) Result {
	if !m.begin() {
		return failed(ErrInProgress)
	}
	defer m.end()

	epoch := m.currentEpoch()
	token, u, err := m.client.Signup(ctx, form)
	if err != nil {
		return failed(err)
	}
	return m.establish(ctx, epoch, token, u)
}

// Logout forgets the session. It cannot fail; store errors are only logged.
// Requests still running when it returns cannot sign the session back in.
func (m *SessionManager) Logout(ctx context.Context) {
	m.writeMu.Lock()
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn(ctx, "failed to clear token", "error", err)
	}
	next := Snapshot{State: StateUnauthenticated}
	subs := m.apply(next, true)
	m.writeMu.Unlock()

	notify(subs, next)
}

// snapshotAt returns the current state with the epoch it belongs to.
func (m *SessionManager) snapshotAt() (Snapshot, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.clone(), m.epoch
}

// UpdateSubscribedRegions replaces the account's regions on the server and
// refreshes the cached user. A rejected token signs the session out. If the
// session changed while the call ran, the answer is discarded.
func (m *SessionManager) UpdateSubscribedRegions(ctx context.Context, regions []string) Result {
	snap, epoch := m.snapshotAt()
	if !snap.IsAuthenticated() {
		return failed(ErrNotSignedIn)
	}

	u, err := m.client.UpdateRegions(ctx, snap.Token, regions)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			m.signOutIf(ctx, epoch)
		}
		return failed(err)
	}

	err = m.commit(epoch, func() error {
		if err := m.store.Save(ctx, snap.Token, u); err != nil {
			m.logger.Warn(ctx, "failed to refresh cached user", "error", err)
		}
		return nil
	}, Snapshot{State: StateAuthenticated, User: u, Token: snap.Token})
	if err != nil {
		return failed(err)
	}
	return Result{Success: true}
}

// DeleteAccount removes the account on the server and signs out.
func (m *SessionManager) DeleteAccount(ctx context.Context) Result {
	snap, epoch := m.snapshotAt()
	if !snap.IsAuthenticated() {
		return failed(ErrNotSignedIn)
	}

	if err := m.client.DeleteMe(ctx, snap.Token); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			m.signOutIf(ctx, epoch)
		}
		return failed(err)
	}

	m.signOutIf(ctx, epoch)
	return Result{Success: true}
}

// Close drops all subscribers and releases the client connection.
func (m *SessionManager) Close() error {
	m.mu.Lock()
	m.subs = make(map[int]func(Snapshot))
	m.mu.Unlock()
	return m.client.Close()
}
