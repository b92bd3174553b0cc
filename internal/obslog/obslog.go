// Copyright © 2026 Yoshiki Shibata. All rights reserved.

// Package obslog is the core library's structured-logging seam: a
// package-level zerolog logger, grounded on kbukum-gokit's logger package
// but trimmed to what an in-process library needs — no config loading (the
// core engine takes none; cmd/lazyserver owns its own level/format via
// viper), just a logger callers can fetch and, in tests, swap out.
package obslog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
)

// Logger returns the package-level logger used by cache materialization,
// the async driver, and httpfeed.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the package-level logger, e.g. to raise the level or
// capture output in tests.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}
