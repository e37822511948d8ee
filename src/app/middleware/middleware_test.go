package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokester/src/app/http/view"
	"jokester/src/infra/config"
	"jokester/src/infra/logger"
)

func newEngine(t *testing.T, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tmpl, err := view.Load()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)
	r.Use(mw...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(t, RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-123", seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Len(t, seen, 36)
}

func TestRecovery_RendersGenericError(t *testing.T) {
	r := newEngine(t, RequestID(), Recovery(logger.Discard()))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), view.MsgUnexpected)
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestLogging_RedactsPassword(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	r := newEngine(t, RequestID(), Logging(log))
	r.POST("/login", func(c *gin.Context) { c.Redirect(http.StatusFound, "/jokes/new") })

	form := url.Values{"username": {"kody"}, "password": {"twixrox"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "twixrox")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(http.StatusFound), entry["status"])
	assert.Equal(t, "/jokes/new", entry["location"])
	assert.Contains(t, entry["request"], "username=kody")
}

func TestLogging_WarnsOnClientError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	r := newEngine(t, Logging(log))
	r.GET("/bad", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"formError": "Form not submitted correctly."})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Contains(t, entry["response"], "formError")
}

func TestLoggingAndRecovery_TagRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	r := newEngine(t, RequestID(), Recovery(log), Logging(log))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/boom", "/ok"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(RequestIDHeader, "trace-42")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// The panic unwinds past Logging, so only Recovery writes for /boom.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "trace-42", entry["request_id"])
	}
}
