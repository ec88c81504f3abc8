// Package logging provides the shared structured logger.
//
// The terminal belongs to the UI, so log output goes to a file opened by
// Setup. Until Setup runs, loggers discard everything. The level comes from
// the PORTFOLIOS_LOG_LEVEL environment variable (debug, info, warn, error);
// the default is INFO.
//
//	closer, err := logging.Setup("~/.local/state/portfolios/portfolios.log")
//	defer closer.Close()
//	log := logging.New("ui")
//	log.Debug("window opened", "id", "about")
//
// Every entry carries a "session" attribute so lines from separate runs can
// be told apart in one file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "PORTFOLIOS_LOG_LEVEL"

var (
	mu         sync.RWMutex
	baseLogger = slog.New(slog.DiscardHandler)
	session    string
)

// Setup opens path for appending and routes all loggers to it. The returned
// closer flushes nothing and only closes the file.
func Setup(path string) (io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetOutput(file)
	return file, nil
}

// SetOutput routes all loggers to w with a fresh session id.
func SetOutput(w io.Writer) {
	id := uuid.NewString()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv(LevelEnv)),
	})

	mu.Lock()
	defer mu.Unlock()
	session = id
	baseLogger = slog.New(handler).With("session", id)
}

// Session returns the id attached to the current output, or "" before
// Setup.
func Session() string {
	mu.RLock()
	defer mu.RUnlock()
	return session
}

// New returns a logger tagged with component. Loggers created before Setup
// keep discarding, so create them after Setup or call New on demand.
func New(component string) *slog.Logger {
	mu.RLock()
	base := baseLogger
	mu.RUnlock()
	if component == "" {
		return base
	}
	return base.With("component", component)
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
