package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// The terminal belongs to bubbletea, so debug output goes to a file in the
// temp directory.
var (
	debugMu     sync.Mutex
	debugFile   *os.File
	debugLogger = slog.New(slog.DiscardHandler)
)

func debugLogPath() string {
	return filepath.Join(os.TempDir(), "blockfall-debug.log")
}

// EnableDebugLogging opens the debug log and returns a logger writing to it.
func EnableDebugLogging() (*slog.Logger, error) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile == nil {
		file, err := os.OpenFile(debugLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open debug log: %w", err)
		}
		debugFile = file
		debugLogger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return debugLogger, nil
}

func CloseDebugLog() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
		debugLogger = slog.New(slog.DiscardHandler)
	}
}

func DebugLogf(format string, args ...any) {
	debugMu.Lock()
	logger := debugLogger
	debugMu.Unlock()
	message := strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " ")
	logger.Debug(message)
}
