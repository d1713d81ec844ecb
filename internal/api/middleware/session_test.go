package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/core/domain"
)

const testCookie = "tv_session"

type stubVerifier struct {
	identity *domain.Identity
	err      error
	gotToken string
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*domain.Identity, error) {
	v.gotToken = token
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

func newSessionContext(e *echo.Echo, path, cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_ValidCookie(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{identity: &domain.Identity{ID: "1", Email: "a@b.c", Role: domain.RoleAdmin}}
	c, rec := newSessionContext(e, "/api/admin/inquiries", "token-123")

	called := false
	handler := Session(verifier, testCookie)(func(c echo.Context) error {
		called = true
		identity, ok := Identity(c)
		if !ok || identity.Email != "a@b.c" {
			t.Fatalf("identity not injected: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if verifier.gotToken != "token-123" {
		t.Fatalf("verifier saw wrong token: %s", verifier.gotToken)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSession_MissingCookie(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{}
	c, rec := newSessionContext(e, "/api/admin/inquiries", "")

	handler := Session(verifier, testCookie)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_RejectedToken(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: domain.ErrTokenExpired}
	c, rec := newSessionContext(e, "/api/admin/inquiries", "stale")

	handler := Session(verifier, testCookie)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPageGuard_RedirectsWithoutSession(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: domain.ErrTokenInvalid}
	c, rec := newSessionContext(e, "/admin/dashboard", "")

	handler := PageGuard(verifier, testCookie)(func(c echo.Context) error {
		t.Fatalf("protected page handler must not run")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestPageGuard_LoginPathPassesThrough(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: domain.ErrTokenInvalid}
	c, rec := newSessionContext(e, "/admin/login", "")

	called := false
	handler := PageGuard(verifier, testCookie)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("login page must be reachable without a session (called=%v code=%d)", called, rec.Code)
	}
}

func TestPageGuard_LoginPrefixSiblingIsGuarded(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: domain.ErrTokenInvalid}

	// Shares the /admin/login prefix without being the login page; the
	// bypass must not apply.
	for _, path := range []string{"/admin/loginanything", "/admin/login-settings"} {
		c, rec := newSessionContext(e, path, "")

		handler := PageGuard(verifier, testCookie)(func(c echo.Context) error {
			t.Fatalf("%s must not bypass the guard", path)
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, rec.Code)
		}
	}
}

func TestPageGuard_LoginAssetsPassThrough(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: domain.ErrTokenInvalid}
	c, rec := newSessionContext(e, "/admin/login/app.css", "")

	called := false
	handler := PageGuard(verifier, testCookie)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("login assets must be reachable without a session (called=%v code=%d)", called, rec.Code)
	}
}

func TestPageGuard_ValidSessionReachesPage(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{identity: &domain.Identity{ID: "1", Email: "a@b.c", Role: domain.RoleAgent}}
	c, rec := newSessionContext(e, "/admin/dashboard", "good")

	called := false
	handler := PageGuard(verifier, testCookie)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected page handler to run (called=%v code=%d)", called, rec.Code)
	}
}
