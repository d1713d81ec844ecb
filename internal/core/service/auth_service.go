package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

const bcryptCost = 12

// dummyHash is compared against when the email does not resolve to an
// account, so a login miss costs the same as a wrong password.
var dummyHash = []byte("$2a$12$R3Dc9jUK0pZkZkCbqsXQl.9sk1Hqy29mPjNUC3gXSifDliCdBeO9u")

// AuthService implements login, session verification, and logout revocation.
type AuthService struct {
	accounts ports.AccountRepository
	revoker  ports.SessionRevoker
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, revoker ports.SessionRevoker, secret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts: accounts,
		revoker:  revoker,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// TokenTTL reports the configured session lifetime, used by the handler to
// align the cookie max-age with the token expiry.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Register creates a new back-office account.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleAdmin && role != domain.RoleAgent {
		return nil, domain.ErrInvalidStatus
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Login validates credentials and issues a signed session token. Failures
// are collapsed into ErrInvalidCredentials so the response never reveals
// whether the email exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("email", email).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}
	if !account.IsActive {
		s.logger.Warn().Str("email", email).Msg("login rejected for disabled account")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", account.Email).Str("role", account.Role).Msg("login succeeded")
	return token, account, nil
}

// Verify is the single authoritative session check: signature, expiry,
// revocation list, and a live account lookup all have to pass before any
// protected handler runs.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	subject, _ := claims["sub"].(string)
	tokenID, _ := claims["jti"].(string)
	if subject == "" || tokenID == "" {
		return nil, domain.ErrTokenInvalid
	}

	revoked, err := s.revoker.IsRevoked(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	// The subject is a weak reference: the account may have been removed or
	// disabled since the token was issued, so re-resolve it every time.
	account, err := s.accounts.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	return &domain.Identity{ID: account.ID, Email: account.Email, Role: account.Role}, nil
}

// Logout places the token on the revocation list for its remaining life.
// Invalid or already-expired tokens are ignored: logout is idempotent and
// never fails the client out of clearing its cookie.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	tokenID, _ := claims["jti"].(string)
	if tokenID == "" {
		return nil
	}

	remaining := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		remaining = time.Until(exp.Time)
	}
	if remaining <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, tokenID, remaining); err != nil {
		return err
	}

	s.logger.Info().Str("token_id", tokenID).Msg("session revoked")
	return nil
}

func (s *AuthService) issueToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
		"jti":   uuid.NewString(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
