// Package monitoring regroupe les compteurs en mémoire du processus:
// temps de réponse glissants et journal circulaire des erreurs.
// L'état est porté par une valeur injectée depuis main, jamais par un
// singleton, pour que tests et instances multiples restent isolés.
package monitoring

import (
	"sync"
	"time"
)

const (
	maxDurationSamples = 1000
	maxErrorEntries    = 100
)

// ErrorEntry une erreur capturée par la chaîne de middlewares
type ErrorEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	ClientIP  string    `json:"clientIp"`
	Message   string    `json:"message"`
}

// Stats agrégats exposés sur /metrics
type Stats struct {
	RequestCount      int64   `json:"requestCount"`
	ErrorCount        int64   `json:"errorCount"`
	AverageResponseMs float64 `json:"averageResponseMs"`
	ErrorRate         float64 `json:"errorRate"`
}

// Monitor accumule les mesures d'un processus serveur
type Monitor struct {
	mu           sync.Mutex
	requestCount int64
	errorCount   int64
	durations    []time.Duration
	errors       []ErrorEntry
	startedAt    time.Time
}

func New() *Monitor {
	return &Monitor{
		startedAt: time.Now(),
	}
}

// RecordRequest ajoute une durée au tampon glissant (1000 derniers échantillons)
func (m *Monitor) RecordRequest(d time.Duration, isError bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requestCount++
	if isError {
		m.errorCount++
	}
	m.durations = append(m.durations, d)
	if len(m.durations) > maxDurationSamples {
		m.durations = m.durations[len(m.durations)-maxDurationSamples:]
	}
}

// RecordError ajoute une entrée au journal circulaire (100 dernières)
func (m *Monitor) RecordError(entry ErrorEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors = append(m.errors, entry)
	if len(m.errors) > maxErrorEntries {
		m.errors = m.errors[len(m.errors)-maxErrorEntries:]
	}
}

// Snapshot calcule les agrégats courants
func (m *Monitor) Snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{
		RequestCount: m.requestCount,
		ErrorCount:   m.errorCount,
	}
	if len(m.durations) > 0 {
		var total time.Duration
		for _, d := range m.durations {
			total += d
		}
		avg := total / time.Duration(len(m.durations))
		stats.AverageResponseMs = float64(avg.Microseconds()) / 1000
	}
	if m.requestCount > 0 {
		stats.ErrorRate = float64(m.errorCount) / float64(m.requestCount)
	}
	return stats
}

// Errors retourne une copie du journal d'erreurs, la plus récente en dernier
func (m *Monitor) Errors() []ErrorEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ErrorEntry, len(m.errors))
	copy(out, m.errors)
	return out
}

// Uptime durée écoulée depuis la création du moniteur
func (m *Monitor) Uptime() time.Duration {
	return time.Since(m.startedAt)
}
