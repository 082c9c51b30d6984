package test

import (
	"context"
	"errors"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	pkgAuth "github.com/Techevery/Native-admin-dashboard-backend/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string { return "stub" }

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// CredentialsMailerStub records invitation emails.
type CredentialsMailerStub struct {
	Err  error
	Sent []CredentialsMessage
}

// CredentialsMessage is one recorded invitation email.
type CredentialsMessage struct {
	Email    string
	Password string
	Role     model.UserRole
}

// SendUserCredentials records the message or fails with the configured error.
func (s *CredentialsMailerStub) SendUserCredentials(ctx context.Context, email, password string, role model.UserRole) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, CredentialsMessage{Email: email, Password: password, Role: role})
	return nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
