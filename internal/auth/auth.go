// Package auth treats authentication as an external collaborator behind a
// small interface. The shipped implementation signs a demo session into a
// JWT cookie; a real identity provider can replace it without touching the
// handlers.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "waocard_session"

// Session describes the signed-in viewer.
type Session struct {
	UserID string
	Name   string
}

// Authenticator is the contract the handlers program against.
type Authenticator interface {
	// Viewer returns the session attached to the request, or nil when the
	// request is anonymous.
	Viewer(r *http.Request) *Session
	// Login establishes a session and sets its cookie on w.
	Login(w http.ResponseWriter) (*Session, error)
	// Logout clears the session cookie.
	Logout(w http.ResponseWriter)
}

// JWTAuthenticator implements Authenticator with an HS256-signed cookie.
type JWTAuthenticator struct {
	secret []byte
	expiry time.Duration
	logger *zap.Logger
}

func NewJWTAuthenticator(secret string, expiry time.Duration, logger *zap.Logger) *JWTAuthenticator {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &JWTAuthenticator{
		secret: []byte(secret),
		expiry: expiry,
		logger: logger.Named("auth"),
	}
}

func (a *JWTAuthenticator) Viewer(r *http.Request) *Session {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	userID, _ := claims["user_id"].(string)
	name, _ := claims["name"].(string)
	if userID == "" {
		return nil
	}
	return &Session{UserID: userID, Name: name}
}

// Login issues a demo session. There is no credential check here on purpose:
// real sign-in lives upstream, and this stand-in only flips the site into its
// authenticated presentation.
func (a *JWTAuthenticator) Login(w http.ResponseWriter) (*Session, error) {
	session := &Session{
		UserID: uuid.New().String(),
		Name:   "Demo User",
	}

	claims := jwt.MapClaims{
		"user_id": session.UserID,
		"name":    session.Name,
		"exp":     time.Now().Add(a.expiry).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(a.expiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	a.logger.Info("session established", zap.String("user_id", session.UserID))
	return session, nil
}

func (a *JWTAuthenticator) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
