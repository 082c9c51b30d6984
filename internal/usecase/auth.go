package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
	pkgAuth "github.com/Techevery/Native-admin-dashboard-backend/internal/pkg/auth"
)

// CredentialsMailer delivers a freshly generated password to an invited user.
type CredentialsMailer interface {
	SendUserCredentials(ctx context.Context, email, password string, role model.UserRole) error
}

// AuthUseCase handles staff account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	mailer CredentialsMailer
	logger *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	mailer CredentialsMailer,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, mailer: mailer, logger: logger}
}

// Login validates credentials and returns the user plus an auth token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	if err := u.users.TouchLastLogin(ctx, usr.ID); err != nil {
		u.logger.Warn("touch last login failed", "user", usr.ID, "error", err)
	}

	return usr, token, nil
}

// CreateUser registers an account with an explicit password.
func (u *AuthUseCase) CreateUser(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domainErrors.ErrInvalidInput)
	}
	role, err := resolveRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, strings.TrimSpace(name), email, hash, role)
}

// InviteUser registers an account with a generated password and emails the
// credentials to the new user. The email is best-effort: a delivery failure
// is logged but the account stays created.
func (u *AuthUseCase) InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domainErrors.ErrInvalidInput)
	}
	role, err := resolveRole(role)
	if err != nil {
		return nil, err
	}

	password := pkgAuth.GeneratePassword(8)
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, strings.TrimSpace(name), email, hash, role)
	if err != nil {
		return nil, err
	}

	if err := u.mailer.SendUserCredentials(ctx, email, password, role); err != nil {
		u.logger.Error("credentials email failed", "user", usr.ID, "error", err)
	}

	return usr, nil
}

// EnsureAdmin creates the configured administrator account if it does not
// exist yet. Returns whether an account was created.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domainErrors.ErrNotFound):
		return false, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	if _, err := u.users.Create(ctx, name, email, hash, model.UserRoleAdmin); err != nil {
		// Lost a race against a concurrent seeder.
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ParseToken extracts the user ID from a bearer token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func resolveRole(role model.UserRole) (model.UserRole, error) {
	switch role {
	case "":
		return model.UserRoleStaff, nil
	case model.UserRoleAdmin, model.UserRoleManager, model.UserRoleStaff:
		return role, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", domainErrors.ErrInvalidInput, role)
	}
}
