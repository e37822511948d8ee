package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jokester/src/infra/logger"
)

// redactedFields never reach the logs.
var redactedFields = []string{"password"}

// Logging writes one entry per request. Form bodies are logged with secrets
// redacted; JSON response bodies are logged, HTML pages are not. Errors
// attached with c.Error are included.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := c.Writer.Status()
		reqLog := logger.WithRequestID(log, GetRequestID(c))
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
		}
		if len(reqBody) > 0 {
			attrs = append(attrs, "request", redactForm(c.ContentType(), reqBody))
		}
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			attrs = append(attrs, "response", rec.body.String())
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			attrs = append(attrs, "location", loc)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			reqLog.Error("request", attrs...)
		case status >= 400:
			reqLog.Warn("request", attrs...)
		default:
			reqLog.Info("request", attrs...)
		}
	}
}

// redactForm masks secret values in url-encoded bodies. Other bodies are
// summarised by size.
func redactForm(contentType string, body []byte) string {
	if contentType != "application/x-www-form-urlencoded" {
		return contentType + " (" + strconv.Itoa(len(body)) + " bytes)"
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return "(unparseable form)"
	}
	for _, f := range redactedFields {
		if values.Has(f) {
			values.Set(f, "REDACTED")
		}
	}
	return values.Encode()
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
