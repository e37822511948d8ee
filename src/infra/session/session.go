// Package session resolves the logged-in user from a signed session cookie.
//
// The cookie carries an HS256 JWT whose subject is the user ID. A missing,
// expired or tampered cookie simply means "no identity"; only RequireUserID
// turns that into an error.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jokester/src/core/domain"
	"jokester/src/infra/config"
)

const issuer = "jokester"

// LoginPath is where unauthenticated users are sent.
const LoginPath = "/login"

// RedirectError is returned by RequireUserID when the request has no identity.
// It unwraps to domain.ErrUnauthorized.
type RedirectError struct {
	// To is the login URL, including the page to return to afterwards.
	To string
}

func (e *RedirectError) Error() string {
	return "login required: redirect to " + e.To
}

func (e *RedirectError) RedirectTo() string {
	return e.To
}

func (e *RedirectError) Unwrap() error {
	return domain.ErrUnauthorized
}

// Store issues and reads session cookies.
type Store struct {
	secret []byte
	cookie string
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func New(cfg config.SessionConfig) *Store {
	return &Store{
		secret: []byte(cfg.Secret),
		cookie: cfg.CookieName,
		ttl:    cfg.TTL,
		secure: cfg.Secure,
		now:    time.Now,
	}
}

// UserID returns the identity carried by the request, if any.
func (s *Store) UserID(r *http.Request) (uuid.UUID, bool) {
	c, err := r.Cookie(s.cookie)
	if err != nil || c.Value == "" {
		return uuid.Nil, false
	}
	id, err := s.parse(c.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// RequireUserID is UserID that fails with a *RedirectError pointing at the
// login page when there is no identity. The current path is kept as redirectTo.
func (s *Store) RequireUserID(r *http.Request) (uuid.UUID, error) {
	if id, ok := s.UserID(r); ok {
		return id, nil
	}
	q := url.Values{"redirectTo": {r.URL.Path}}
	return uuid.Nil, &RedirectError{To: LoginPath + "?" + q.Encode()}
}

// Create writes a session cookie for userID.
func (s *Store) Create(w http.ResponseWriter, userID uuid.UUID) error {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Destroy expires the session cookie.
func (s *Store) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) parse(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("session subject is not a user id")
	}
	return id, nil
}
