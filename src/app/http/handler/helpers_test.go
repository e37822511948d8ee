package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"jokester/src/app/http/view"
	"jokester/src/app/middleware"
	"jokester/src/core/domain"
	"jokester/src/core/ports"
	"jokester/src/core/usecase"
	"jokester/src/infra/config"
	"jokester/src/infra/logger"
	"jokester/src/infra/repo"
	"jokester/src/infra/session"
)

const chickenJoke = "Why did the chicken cross the road? To get to the other side!"

type testApp struct {
	router   *gin.Engine
	repo     *repo.MemoryRepository
	sessions *session.Store
	user     *domain.User
}

// failingJokes wraps a repository so that CreateJoke always fails.
type failingJokes struct {
	ports.JokeRepository
	err error
}

func (f failingJokes) CreateJoke(context.Context, domain.NewJoke) (*domain.Joke, error) {
	return nil, f.err
}

type appOption func(*appOptions)

type appOptions struct {
	jokes func(ports.JokeRepository) ports.JokeRepository
}

func withJokeRepo(wrap func(ports.JokeRepository) ports.JokeRepository) appOption {
	return func(o *appOptions) { o.jokes = wrap }
}

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	o := appOptions{jokes: func(r ports.JokeRepository) ports.JokeRepository { return r }}
	for _, opt := range opts {
		opt(&o)
	}

	router := gin.New()
	tmpl, err := view.Load()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.RequestID())

	log := logger.Discard()
	mem := repo.NewMemoryRepository()
	store := session.New(config.SessionConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		CookieName: "jokester_session",
		TTL:        time.Hour,
	})

	user, err := mem.CreateUser(context.Background(), "kody", "unused")
	require.NoError(t, err)

	jokes := NewJokeHandler(usecase.NewJokeService(o.jokes(mem), log), store)
	router.GET("/jokes/new", jokes.New)
	router.POST("/jokes/new", jokes.Create)
	router.GET("/jokes/:joke_id", jokes.Show)

	auth := NewAuthHandler(usecase.NewAuthService(mem, plainHasher{}, log), store)
	router.GET("/login", auth.LoginPage)
	router.POST("/login", auth.Login)
	router.POST("/logout", auth.Logout)

	return &testApp{router: router, repo: mem, sessions: store, user: user}
}

// cookie returns a session cookie for userID.
func (a *testApp) cookie(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, a.sessions.Create(rec, userID))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) get(target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return a.do(req)
}

func (a *testApp) postForm(target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return a.do(req)
}

// plainHasher compares passwords verbatim.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "plain:" + p, nil }

func (plainHasher) Compare(hash, p string) error {
	if hash != "plain:"+p {
		return errors.New("password mismatch")
	}
	return nil
}
