package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokester/src/core/domain"
	"jokester/src/infra/config"
)

func newTestStore() *Store {
	return New(config.SessionConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		CookieName: "jokester_session",
		TTL:        time.Hour,
	})
}

// requestWithSession creates a session for userID and returns a request carrying its cookie.
func requestWithSession(t *testing.T, s *Store, userID uuid.UUID) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, s.Create(rec, userID))

	req := httptest.NewRequest(http.MethodGet, "/jokes/new", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore()
	userID := uuid.New()

	id, ok := s.UserID(requestWithSession(t, s, userID))
	require.True(t, ok)
	assert.Equal(t, userID, id)
}

func TestStore_CookieAttributes(t *testing.T) {
	s := newTestStore()
	rec := httptest.NewRecorder()
	require.NoError(t, s.Create(rec, uuid.New()))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jokester_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestStore_NoCookie(t *testing.T) {
	_, ok := newTestStore().UserID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestStore_RejectsForeignSignature(t *testing.T) {
	s := newTestStore()
	other := New(config.SessionConfig{Secret: "ffffffffffffffffffffffffffffffff", CookieName: "jokester_session", TTL: time.Hour})

	_, ok := s.UserID(requestWithSession(t, other, uuid.New()))
	assert.False(t, ok)
}

func TestStore_RejectsExpired(t *testing.T) {
	s := newTestStore()
	req := requestWithSession(t, s, uuid.New())

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, ok := s.UserID(req)
	assert.False(t, ok)
}

func TestStore_RejectsOtherAlgorithms(t *testing.T) {
	s := newTestStore()
	claims := jwt.RegisteredClaims{Subject: uuid.NewString(), Issuer: issuer}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jokester_session", Value: token})
	_, ok := s.UserID(req)
	assert.False(t, ok)
}

func TestStore_RequireUserID(t *testing.T) {
	s := newTestStore()
	userID := uuid.New()

	id, err := s.RequireUserID(requestWithSession(t, s, userID))
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	_, err = s.RequireUserID(httptest.NewRequest(http.MethodPost, "/jokes/new", nil))
	var redirect *RedirectError
	require.True(t, errors.As(err, &redirect))
	assert.Equal(t, "/login?redirectTo=%2Fjokes%2Fnew", redirect.To)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestStore_Destroy(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestStore().Destroy(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
