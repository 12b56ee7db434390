// Package telemetry wraps the structured logger used across prismql:
// mutation and cache-invalidation traces at Debug, ingestion and
// round-trip-validation failures at Warn, all gated behind a swappable
// *zap.Logger so a caller embedding the library can redirect or silence it.
package telemetry

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// SetLogger replaces the package-wide logger. Passing nil restores the
// no-op default.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a low-level event: hash-cache invalidation (which every
// mutation goes through), a successful ingestion or round-trip validation.
func Debug(msg string, fields ...zap.Field) { current().Debug(msg, fields...) }

// Warn logs a recoverable problem surfaced at an error-construction
// boundary: a dialect ingestion parse failure, a round-trip mismatch.
func Warn(msg string, fields ...zap.Field) { current().Warn(msg, fields...) }

// Error logs an unrecoverable problem.
func Error(msg string, fields ...zap.Field) { current().Error(msg, fields...) }

// Sync flushes any buffered log entries. Callers should defer this once at
// process shutdown after installing a non-nop logger.
func Sync() error { return current().Sync() }
