package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/core/domain"
)

type stubAuthService struct {
	account   *domain.Account
	token     string
	revoked   map[string]bool
	logoutErr error
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		account: &domain.Account{ID: "acc_1", Name: "Ana", Email: "ana@terravista.mx", Role: domain.RoleAdmin, IsActive: true},
		token:   "session-token",
		revoked: make(map[string]bool),
	}
}

func (s *stubAuthService) Register(_ context.Context, name, email, _, role string) (*domain.Account, error) {
	return &domain.Account{ID: "acc_2", Name: name, Email: email, Role: role, IsActive: true}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.Account, error) {
	if email != s.account.Email || password != "secret-pass" {
		return "", nil, domain.ErrInvalidCredentials
	}
	return s.token, s.account, nil
}

func (s *stubAuthService) Verify(_ context.Context, token string) (*domain.Identity, error) {
	if token != s.token || s.revoked[token] {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.Identity{ID: s.account.ID, Email: s.account.Email, Role: s.account.Role}, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.revoked[token] = true
	return nil
}

func authTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestLogin_SetsHardenedCookie(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), CookieSettings{Name: "tv_session", TTL: time.Hour, Secure: true})

	c, rec := authTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"ana@terravista.mx","password":"secret-pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookieFrom(t, rec, "tv_session")
	if cookie.Value != "session-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("cookie must be HttpOnly")
	}
	if !cookie.Secure {
		t.Fatal("cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be SameSite=Strict, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("cookie max-age should match the session TTL, got %d", cookie.MaxAge)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin_BadPassword(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, rec := authTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"ana@terravista.mx","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	res := rec.Result()
	defer res.Body.Close()
	if len(res.Cookies()) != 0 {
		t.Fatal("failed login must not set a cookie")
	}
}

func TestLogin_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, _ := authTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"not-an-email","password":""}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc, CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, rec := authTestContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "tv_session", Value: "session-token"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !svc.revoked["session-token"] {
		t.Fatal("logout must revoke the presented token")
	}

	cookie := sessionCookieFrom(t, rec, "tv_session")
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("logout must clear the cookie, got value=%q max-age=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestLogout_ClearsCookieDespiteRevocationFailure(t *testing.T) {
	svc := newStubAuthService()
	svc.logoutErr = errors.New("revocation store unavailable")
	h := NewAuthHandler(svc, CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, rec := authTestContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "tv_session", Value: "session-token"})

	if err := h.Logout(c); err == nil {
		t.Fatal("expected the revocation error to surface")
	}

	// The clearing cookie must already be on the response even though
	// revocation failed.
	cookie := sessionCookieFrom(t, rec, "tv_session")
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: value=%q max-age=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestLogout_WithoutCookie(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, rec := authTestContext(t, http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout without a session must still succeed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCheck_Authenticated(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, rec := authTestContext(t, http.MethodGet, "/api/auth/session", "")
	c.Request().AddCookie(&http.Cookie{Name: "tv_session", Value: "session-token"})

	if err := h.Check(c); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"authenticated":true`) || !strings.Contains(body, "ana@terravista.mx") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestCheck_AfterLogout(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc, CookieSettings{Name: "tv_session", TTL: time.Hour})

	logoutC, _ := authTestContext(t, http.MethodPost, "/api/auth/logout", "")
	logoutC.Request().AddCookie(&http.Cookie{Name: "tv_session", Value: "session-token"})
	if err := h.Logout(logoutC); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	c, rec := authTestContext(t, http.MethodGet, "/api/auth/session", "")
	c.Request().AddCookie(&http.Cookie{Name: "tv_session", Value: "session-token"})
	if err := h.Check(c); err != nil {
		t.Fatalf("check must not error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("check always answers 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("revoked session must report unauthenticated: %s", rec.Body.String())
	}
}

func TestCheck_NoCookie(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), CookieSettings{Name: "tv_session", TTL: time.Hour})

	c, rec := authTestContext(t, http.MethodGet, "/api/auth/session", "")
	if err := h.Check(c); err != nil {
		t.Fatalf("check must not error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
