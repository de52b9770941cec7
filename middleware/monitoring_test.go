package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"webatelier-backend/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResponseTime_RecordsSamples(t *testing.T) {
	m := monitoring.New()

	r := gin.New()
	r.Use(ResponseTime(m))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/ok", "/boom"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	stats := m.Snapshot()
	assert.Equal(t, int64(3), stats.RequestCount)
	assert.Equal(t, int64(1), stats.ErrorCount)
	assert.InDelta(t, 1.0/3.0, stats.ErrorRate, 0.001)
}

func TestMonitoring_RecordsPanickingHandler(t *testing.T) {
	m := monitoring.New()

	// Même ordre que le routeur: Recovery englobe les deux middlewares,
	// la panique doit être capturée avant de remonter jusqu'à lui
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ResponseTime(m))
	r.Use(ErrorCapture(m))
	r.GET("/boom", func(c *gin.Context) {
		panic("connexion au stockage perdue")
	})

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	stats := m.Snapshot()
	assert.Equal(t, int64(1), stats.RequestCount)
	assert.Equal(t, int64(1), stats.ErrorCount)

	entries := m.Errors()
	assert.Len(t, entries, 1)
	assert.Equal(t, "/boom", entries[0].Path)
	assert.Equal(t, "GET", entries[0].Method)
	assert.Contains(t, entries[0].Message, "connexion au stockage perdue")
}

func TestErrorCapture_RecordsServerErrors(t *testing.T) {
	m := monitoring.New()

	r := gin.New()
	r.Use(ErrorCapture(m))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("storage unavailable"))
		c.Status(http.StatusInternalServerError)
	})

	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, m.Errors())

	req, _ = http.NewRequest(http.MethodGet, "/boom", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := m.Errors()
	assert.Len(t, entries, 1)
	assert.Equal(t, "/boom", entries[0].Path)
	assert.Equal(t, "GET", entries[0].Method)
	assert.Contains(t, entries[0].Message, "storage unavailable")
}
