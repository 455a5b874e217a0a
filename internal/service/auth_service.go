package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Principal is the authenticated identity carried through a session.
// Superuser is a single capability bit, not a role hierarchy.
type Principal struct {
	AccountID   string `json:"account_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// AuthService login and registration against the account store.
type AuthService interface {
	// Login validates credentials. Any failure (unknown user, wrong
	// password) returns ErrInvalidCredentials without distinction, so
	// usernames cannot be enumerated.
	Login(ctx context.Context, username, password string) (*Principal, error)
	// Register creates a non-superuser account.
	Register(ctx context.Context, req RegisterRequest) error
}

type RegisterRequest struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

type authService struct {
	accounts repository.AccountsRepository
	logger   *zap.Logger
}

func NewAuthService(accounts repository.AccountsRepository, logger *zap.Logger) AuthService {
	return &authService{accounts: accounts, logger: logger}
}

func (s *authService) Login(ctx context.Context, username, password string) (*Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			s.logger.Warn("Login failed: unknown user", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn("Login failed: wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	return &Principal{
		AccountID:   account.AccountID,
		Username:    account.Username,
		IsSuperuser: account.IsSuperuser,
	}, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password1 == "" {
		return ErrMissingFields
	}
	if req.Password1 != req.Password2 {
		return ErrPasswordMismatch
	}

	if _, err := s.accounts.GetAccountByUsername(ctx, req.Username); err == nil {
		return ErrUsernameTaken
	} else if !repository.IsNotFound(err) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Username:     req.Username,
		PasswordHash: hash,
		IsSuperuser:  false,
	}
	if e := strings.TrimSpace(req.Email); e != "" {
		account.Email = sql.NullString{String: e, Valid: true}
	}

	if _, err := s.accounts.CreateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	s.logger.Info("Account registered", zap.String("username", req.Username))
	return nil
}

// HashPassword is used by the admin seeding path in main.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
