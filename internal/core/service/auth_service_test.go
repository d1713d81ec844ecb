package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/terravista/realty-api/internal/core/domain"
)

type stubAccountRepo struct {
	byEmail map[string]*domain.Account
	byID    map[string]*domain.Account
	nextID  int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		byEmail: make(map[string]*domain.Account),
		byID:    make(map[string]*domain.Account),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.byEmail[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	copy := cloneAccount(account)
	r.nextID++
	copy.ID = "acc_" + strconv.Itoa(r.nextID)
	r.byEmail[copy.Email] = cloneAccount(copy)
	r.byID[copy.ID] = r.byEmail[copy.Email]
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.byEmail[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := r.byID[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

type stubRevoker struct {
	revoked map[string]struct{}
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]struct{})}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r.revoked[tokenID] = struct{}{}
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubAccountRepo, *stubRevoker) {
	t.Helper()
	repo := newStubAccountRepo()
	revoker := newStubRevoker()
	svc := NewAuthService(repo, revoker, "secret", time.Hour, zerolog.Nop())
	return svc, repo, revoker
}

// signTestToken builds a token outside the service so expiry boundaries can
// be pinned exactly.
func signTestToken(t *testing.T, secret, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": "x@example.com",
		"role":  domain.RoleAdmin,
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
		"jti":   "jti-test",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	account, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}

	identity, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.Email != "alice@example.com" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_LoginUnknownEmailIsGeneric(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// An unknown email must produce the same error as a bad password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "goodpass", domain.RoleAgent)
	if _, _, err := svc.Login(context.Background(), "bob@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	account, _ := svc.Register(context.Background(), "Carol", "carol@example.com", "pass", domain.RoleAgent)
	repo.byID[account.ID].IsActive = false
	repo.byEmail[account.Email].IsActive = false

	if _, _, err := svc.Login(context.Background(), "carol@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_VerifyExpiryBoundary(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	account, _ := svc.Register(context.Background(), "Dora", "dora@example.com", "pass", domain.RoleAdmin)

	// Just inside the window: accepted.
	fresh := signTestToken(t, "secret", account.ID, time.Now().Add(time.Hour))
	if _, err := svc.Verify(context.Background(), fresh); err != nil {
		t.Fatalf("fresh token rejected: %v", err)
	}

	// Just past the window: rejected as expired.
	stale := signTestToken(t, "secret", account.ID, time.Now().Add(-time.Second))
	if _, err := svc.Verify(context.Background(), stale); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	_ = repo
}

func TestAuthService_VerifyWrongSecret(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	account, _ := svc.Register(context.Background(), "Eve", "eve@example.com", "pass", domain.RoleAdmin)
	_ = repo

	forged := signTestToken(t, "not-the-secret", account.ID, time.Now().Add(time.Hour))
	if _, err := svc.Verify(context.Background(), forged); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_VerifyMalformedToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	if _, err := svc.Verify(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_VerifyDeletedAccount(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	account, _ := svc.Register(context.Background(), "Frank", "frank@example.com", "pass", domain.RoleAgent)
	token, _, err := svc.Login(context.Background(), "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.byID, account.ID)
	delete(repo.byEmail, account.Email)

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for deleted account, got %v", err)
	}
}

func TestAuthService_VerifyDisabledAccount(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	account, _ := svc.Register(context.Background(), "Grace", "grace@example.com", "pass", domain.RoleAgent)
	token, _, err := svc.Login(context.Background(), "grace@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	repo.byID[account.ID].IsActive = false

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _ = svc.Register(context.Background(), "Hank", "hank@example.com", "pass", domain.RoleAdmin)
	token, _, err := svc.Login(context.Background(), "hank@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestAuthService_LogoutIdempotent(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// Garbage and repeated logouts succeed silently.
	if err := svc.Logout(context.Background(), "junk"); err != nil {
		t.Fatalf("logout with junk token errored: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout with empty token errored: %v", err)
	}
}

func TestAuthService_RegisterBadRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	if _, err := svc.Register(context.Background(), "X", "x@example.com", "pass", "superuser"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
