package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	pkgAuth "github.com/Techevery/Native-admin-dashboard-backend/internal/pkg/auth"
	testhelpers "github.com/Techevery/Native-admin-dashboard-backend/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func newAuthEnv() (*AuthUseCase, *testhelpers.UserRepositoryStub, *testhelpers.CredentialsMailerStub) {
	repo := testhelpers.NewUserRepositoryStub()
	mailer := &testhelpers.CredentialsMailerStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), mailer, logger)
	return uc, repo, mailer
}

func TestAuthUseCaseCreateAndLogin(t *testing.T) {
	uc, repo, _ := newAuthEnv()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, "Ada", "Ada@Example.com", "secret12", model.UserRoleManager)
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Role != model.UserRoleManager {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	got, token, err := uc.Login(ctx, "ada@example.com", "secret12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != fmt.Sprintf("token-%d", got.ID) {
		t.Fatalf("unexpected token %q", token)
	}
	stored, _ := repo.GetByID(ctx, got.ID)
	if stored.LastLogin == nil {
		t.Fatal("last login not stamped")
	}

	if _, _, err := uc.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := uc.Login(ctx, "nobody@example.com", "secret12"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
	if _, _, err := uc.Login(ctx, "", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("blank credentials must fail, got %v", err)
	}
}

func TestAuthUseCaseCreateUserValidation(t *testing.T) {
	uc, _, _ := newAuthEnv()
	ctx := context.Background()

	if _, err := uc.CreateUser(ctx, "Ada", "", "pw", model.UserRoleStaff); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CreateUser(ctx, "Ada", "a@b.c", "pw", "owner"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("unknown role must fail, got %v", err)
	}

	user, err := uc.CreateUser(ctx, "Ada", "a@b.c", "pw", "")
	if err != nil {
		t.Fatalf("default role create failed: %v", err)
	}
	if user.Role != model.UserRoleStaff {
		t.Fatalf("expected staff default, got %s", user.Role)
	}

	if _, err := uc.CreateUser(ctx, "Ada", "a@b.c", "pw", model.UserRoleStaff); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("duplicate email must fail, got %v", err)
	}
}

func TestAuthUseCaseInviteUser(t *testing.T) {
	uc, repo, mailer := newAuthEnv()
	ctx := context.Background()

	user, err := uc.InviteUser(ctx, "Ngozi", "ngozi@example.com", model.UserRoleStaff)
	if err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if len(mailer.Sent) != 1 {
		t.Fatalf("expected one credentials email, got %d", len(mailer.Sent))
	}
	msg := mailer.Sent[0]
	if msg.Email != "ngozi@example.com" || msg.Role != model.UserRoleStaff {
		t.Fatalf("unexpected credentials message: %+v", msg)
	}
	if len(msg.Password) != 8 {
		t.Fatalf("expected 8 character generated password, got %q", msg.Password)
	}

	stored, _ := repo.GetByEmail(ctx, "ngozi@example.com")
	if stored.PasswordHash != "hash:"+msg.Password {
		t.Fatal("stored hash does not match mailed password")
	}
	_ = user
}

func TestAuthUseCaseInviteSurvivesMailFailure(t *testing.T) {
	uc, repo, mailer := newAuthEnv()
	mailer.Err = errors.New("smtp down")

	user, err := uc.InviteUser(context.Background(), "Ngozi", "ngozi@example.com", model.UserRoleStaff)
	if err != nil {
		t.Fatalf("invite must survive mail failure: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), user.ID); err != nil {
		t.Fatalf("account not created: %v", err)
	}
}

func TestAuthUseCaseEnsureAdmin(t *testing.T) {
	uc, repo, _ := newAuthEnv()
	ctx := context.Background()

	created, err := uc.EnsureAdmin(ctx, "Admin", "admin@example.com", "bootstrap")
	if err != nil || !created {
		t.Fatalf("expected admin created, got created=%v err=%v", created, err)
	}
	admin, _ := repo.GetByEmail(ctx, "admin@example.com")
	if admin.Role != model.UserRoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}

	created, err = uc.EnsureAdmin(ctx, "Admin", "admin@example.com", "bootstrap")
	if err != nil || created {
		t.Fatalf("second seed must be a no-op, got created=%v err=%v", created, err)
	}

	created, err = uc.EnsureAdmin(ctx, "Admin", "", "")
	if err != nil || created {
		t.Fatalf("unconfigured admin must be skipped, got created=%v err=%v", created, err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc, _, _ := newAuthEnv()

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("empty token must fail, got %v", err)
	}
	id, err := uc.ParseToken("token-7")
	if err != nil || id != 7 {
		t.Fatalf("unexpected parse result: %d %v", id, err)
	}
}
