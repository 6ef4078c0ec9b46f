// Package services contains server-side business logic. UserService handles
// signup, login and session-token verification on top of the user store.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/cryptox"
	"github.com/dmitrijs2005/palace/internal/logging"
	"github.com/dmitrijs2005/palace/internal/server/auth"
	"github.com/dmitrijs2005/palace/internal/server/models"
	"github.com/dmitrijs2005/palace/internal/server/repositories/users"
	"github.com/google/uuid"
)

// Demo account created by SeedDemoAccount.
const (
	DemoUserID       = "test-user-123"
	DemoUserEmail    = "test@example.com"
	DemoUserPassword = "password123"
)

// SignupRequest is the input of Signup.
type SignupRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    models.Gender
}

// AuthResult is returned by a successful Signup or Login.
type AuthResult struct {
	Token string
	User  models.PublicUser
}

// UserService provides the account operations:
//   - Signup: create an account and issue a token
//   - Login: check credentials and issue a token
//   - GetMe: resolve a token to its account
type UserService struct {
	users     users.Repository
	tokens    auth.TokenCodec
	passwords *cryptox.PasswordHasher
	logger    logging.Logger
	newID     func() string
}

// NewUserService wires a UserService. A nil logger discards output.
func NewUserService(repo users.Repository, tokens auth.TokenCodec, passwords *cryptox.PasswordHasher, logger logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &UserService{
		users:     repo,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// internal logs err and hides it behind common.ErrInternal.
func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "user service failure", "op", op, "error", err)
	return common.ErrInternal
}

func (s *UserService) issue(ctx context.Context, a *models.Account) (*AuthResult, error) {
	token, err := s.tokens.Issue(a.ID, a.Email)
	if err != nil {
		return nil, s.internal(ctx, "issue token", err)
	}
	return &AuthResult{Token: token, User: a.Public()}, nil
}

// Signup validates req, creates the account and returns a token for it.
// An email already in use yields common.ErrConflict.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, common.ErrConflict
	case !errors.Is(err, common.ErrNotFound):
		return nil, s.internal(ctx, "find by email", err)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, s.internal(ctx, "hash password", err)
	}

	account, err := s.users.Create(ctx, &models.Account{
		ID:        s.newID(),
		Email:     req.Email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Gender:    req.Gender,
		Password:  hash,
	})
	if err != nil {
		// a concurrent signup may have taken the email after our lookup
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, s.internal(ctx, "create user", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", account.ID)
	return s.issue(ctx, account)
}

// Login checks the credentials and returns a token. Unknown email and wrong
// password fail identically with common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := validateLogin(email); err != nil {
		return nil, err
	}

	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, s.internal(ctx, "find by email", err)
	}

	if !s.passwords.Verify(account.Password, password) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(ctx, account)
}

// VerifyToken resolves token to the account it was issued for. Any decoding
// problem or an account that no longer exists yields common.ErrInvalidToken.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*models.Account, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "error", err)
		return nil, common.ErrInvalidToken
	}

	account, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, s.internal(ctx, "find by id", err)
	}
	return account, nil
}

// GetMe returns the public view of the token's account.
func (s *UserService) GetMe(ctx context.Context, token string) (*models.PublicUser, error) {
	account, err := s.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	u := account.Public()
	return &u, nil
}

// UpdateRegions replaces the subscribed regions of the token's account.
func (s *UserService) UpdateRegions(ctx context.Context, token string, regions []models.Region) (*models.PublicUser, error) {
	if err := validateRegions(regions); err != nil {
		return nil, err
	}

	account, err := s.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if regions == nil {
		regions = []models.Region{}
	}
	updated, err := s.users.Update(ctx, account.ID, models.AccountUpdate{SubscribedRegions: &regions})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, common.ErrInvalidToken
		case errors.Is(err, common.ErrValidation):
			return nil, err
		}
		return nil, s.internal(ctx, "update regions", err)
	}

	u := updated.Public()
	return &u, nil
}

// DeleteAccount removes the token's account. Every token issued for it
// stops verifying.
func (s *UserService) DeleteAccount(ctx context.Context, token string) error {
	account, err := s.VerifyToken(ctx, token)
	if err != nil {
		return err
	}

	deleted, err := s.users.Delete(ctx, account.ID)
	if err != nil {
		return s.internal(ctx, "delete user", err)
	}
	if !deleted {
		return common.ErrInvalidToken
	}

	s.logger.Info(ctx, "user deleted", "user_id", account.ID)
	return nil
}

// SeedDemoAccount creates the demo account unless its id or email is already
// present.
func (s *UserService) SeedDemoAccount(ctx context.Context) error {
	for _, lookup := range []func() (*models.Account, error){
		func() (*models.Account, error) { return s.users.FindByID(ctx, DemoUserID) },
		func() (*models.Account, error) { return s.users.FindByEmail(ctx, DemoUserEmail) },
	} {
		_, err := lookup()
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
	}

	hash, err := s.passwords.Hash(DemoUserPassword)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, &models.Account{
		ID:        DemoUserID,
		Email:     DemoUserEmail,
		FirstName: "Test",
		LastName:  "User",
		Gender:    models.GenderMale,
		Password:  hash,
	})
	if err != nil && !errors.Is(err, common.ErrConflict) {
		return err
	}

	s.logger.Info(ctx, "demo user seeded", "email", DemoUserEmail)
	return nil
}
