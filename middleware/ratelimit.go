package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter compte les requêtes par IP sur une fenêtre glissante.
// L'état vit dans le processus, sans partage entre instances: limite
// connue du déploiement mono-instance.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	message   string
	hits      map[string][]time.Time
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(limit int, window time.Duration, message string) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		message: message,
		hits:    make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow enregistre une requête pour l'IP et indique si elle passe
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	// Au plus un balayage par fenêtre: les IP qui ne reviennent jamais
	// ne restent pas dans la carte pour la vie du processus
	if now.Sub(rl.lastSweep) >= rl.window {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	kept := rl.hits[ip][:0]
	for _, t := range rl.hits[ip] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= rl.limit {
		rl.hits[ip] = kept
		return false
	}

	rl.hits[ip] = append(kept, now)
	return true
}

func (rl *RateLimiter) sweep(cutoff time.Time) {
	for ip, times := range rl.hits {
		live := false
		for _, t := range times {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(rl.hits, ip)
		}
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": rl.message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
