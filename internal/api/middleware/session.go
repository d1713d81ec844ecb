package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/api/metrics"
	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// identityKey is where verified identity lands in the echo context.
const identityKey = "identity"

// LoginPath is where unauthenticated browser requests on the admin prefix
// are sent.
const LoginPath = "/admin/login"

// Session verifies the session cookie before the handler runs. One
// authoritative check covers signature, expiry, revocation, and account
// state; there is no cheaper partial pass that could wave an invalid token
// through. API callers get a 401 JSON envelope on failure.
func Session(verifier ports.SessionVerifier, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := verify(c, verifier, cookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, reason(err))
			}

			c.Set(identityKey, identity)
			c.Set("role", identity.Role)
			return next(c)
		}
	}
}

// PageGuard protects the admin pages. Requests that fail the session check
// are redirected to the login page instead of receiving a JSON error; the
// login sub-path itself always passes so the redirect cannot loop.
func PageGuard(verifier ports.SessionVerifier, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isLoginPath(c.Request().URL.Path) {
				return next(c)
			}

			identity, err := verify(c, verifier, cookieName)
			if err != nil {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set(identityKey, identity)
			c.Set("role", identity.Role)
			return next(c)
		}
	}
}

// isLoginPath matches the login page and its assets, but not sibling paths
// that merely share the prefix (e.g. /admin/loginanything).
func isLoginPath(path string) bool {
	return path == LoginPath || strings.HasPrefix(path, LoginPath+"/")
}

func verify(c echo.Context, verifier ports.SessionVerifier, cookieName string) (*domain.Identity, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		metrics.SessionChecksTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrTokenInvalid
	}

	identity, err := verifier.Verify(c.Request().Context(), cookie.Value)
	if err != nil {
		metrics.SessionChecksTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}

	metrics.SessionChecksTotal.WithLabelValues("ok").Inc()
	return identity, nil
}

// Identity extracts the verified identity placed by Session or PageGuard.
func Identity(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(*domain.Identity)
	return identity, ok
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "disabled"
	default:
		return "invalid"
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "session expired"
	default:
		return "authentication required"
	}
}
