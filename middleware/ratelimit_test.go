package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func limitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/api/contact", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func postFrom(r http.Handler, ip string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = ip + ":51234"
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRateLimiter_SixthSubmissionRejected(t *testing.T) {
	rl := NewRateLimiter(5, 5*time.Minute, "Too many submissions, please try again later")
	r := limitedRouter(rl)

	for i := 0; i < 5; i++ {
		resp := postFrom(r, "203.0.113.7")
		assert.Equal(t, http.StatusOK, resp.Code, "request %d should pass", i+1)
	}

	resp := postFrom(r, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Contains(t, resp.Body.String(), "Too many submissions")
	assert.NotEmpty(t, resp.Header().Get("Retry-After"))
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	rl := NewRateLimiter(5, 5*time.Minute, "Too many submissions, please try again later")
	r := limitedRouter(rl)

	for i := 0; i < 5; i++ {
		postFrom(r, "203.0.113.7")
	}
	assert.Equal(t, http.StatusTooManyRequests, postFrom(r, "203.0.113.7").Code)

	// Une autre IP n'est pas affectée
	assert.Equal(t, http.StatusOK, postFrom(r, "198.51.100.4").Code)
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, "Too many requests, please try again later")

	current := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	assert.True(t, rl.Allow("203.0.113.7"))
	assert.True(t, rl.Allow("203.0.113.7"))
	assert.False(t, rl.Allow("203.0.113.7"))

	// Une fois la fenêtre écoulée, le compteur repart
	current = current.Add(61 * time.Second)
	assert.True(t, rl.Allow("203.0.113.7"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute, "Too many requests, please try again later")

	current := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	assert.True(t, rl.Allow("203.0.113.7"))
	assert.True(t, rl.Allow("198.51.100.4"))

	// Une IP qui ne revient jamais est retirée au balayage suivant
	current = current.Add(2 * time.Minute)
	assert.True(t, rl.Allow("203.0.113.7"))

	rl.mu.Lock()
	_, stillThere := rl.hits["198.51.100.4"]
	rl.mu.Unlock()
	assert.False(t, stillThere)
}
