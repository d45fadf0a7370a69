package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoginViewerRoundtrip(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", time.Hour, zap.NewNop())

	rec := httptest.NewRecorder()
	session, err := a.Login(rec)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.UserID == "" || session.Name == "" {
		t.Fatalf("session = %+v", session)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie {
		t.Fatalf("cookies = %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	viewer := a.Viewer(req)
	if viewer == nil {
		t.Fatal("Viewer = nil for a freshly issued cookie")
	}
	if viewer.UserID != session.UserID || viewer.Name != session.Name {
		t.Fatalf("viewer = %+v, want %+v", viewer, session)
	}
}

func TestViewerAnonymousWithoutCookie(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", time.Hour, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if v := a.Viewer(req); v != nil {
		t.Fatalf("viewer = %+v, want nil", v)
	}
}

func TestViewerRejectsGarbageToken(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", time.Hour, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-jwt"})
	if v := a.Viewer(req); v != nil {
		t.Fatalf("viewer = %+v, want nil", v)
	}
}

func TestViewerRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("secret-a", time.Hour, zap.NewNop())
	verifier := NewJWTAuthenticator("secret-b", time.Hour, zap.NewNop())

	rec := httptest.NewRecorder()
	if _, err := issuer.Login(rec); err != nil {
		t.Fatalf("Login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	if v := verifier.Viewer(req); v != nil {
		t.Fatalf("viewer = %+v, token signed with another secret must not verify", v)
	}
}

func TestViewerRejectsExpiredToken(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", -time.Hour, zap.NewNop())
	// negative expiry still defaults to 24h in the constructor, so issue an
	// already expired token by hand through a short-lived authenticator
	short := &JWTAuthenticator{secret: []byte("test-secret"), expiry: -time.Minute, logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	if _, err := short.Login(rec); err != nil {
		t.Fatalf("Login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	if v := a.Viewer(req); v != nil {
		t.Fatalf("viewer = %+v, expired token must not verify", v)
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", time.Hour, zap.NewNop())
	rec := httptest.NewRecorder()
	a.Logout(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %+v", cookies)
	}
	if cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Fatalf("logout cookie = %+v, want cleared", cookies[0])
	}
}
