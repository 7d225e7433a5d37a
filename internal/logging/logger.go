// Package logging configures the application logger. The TUI owns the
// terminal, so log records go to a file under the platform state
// directory, and only when debug diagnostics are requested; with debug
// off the logger discards everything and nothing touches the disk.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the maximum log file size before rotation (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 3
)

// InitLogger returns the application logger. With debug off, records
// are discarded. With debug on, JSON records with source locations are
// appended to the platform log path:
//   - Linux:   $XDG_STATE_HOME/<app>/<app>.log or ~/.local/state/<app>/<app>.log
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// The file is rotated once it exceeds 5 MB, keeping three backups.
func InitLogger(appName string, debug bool) (*slog.Logger, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil
	}

	logPath, err := logFilePath(appName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})

	return slog.New(handler), nil
}

// NewNopLogger returns a logger that discards all records, for tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// rotateIfNeeded shifts current.log to .1, .1 to .2 and so on once the
// file exceeds maxLogSize, deleting the oldest backup.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.Size() < maxLogSize {
		return nil
	}

	for i := maxLogBackups; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", logPath, i)
		if i == maxLogBackups {
			os.Remove(src)
		} else {
			os.Rename(src, fmt.Sprintf("%s.%d", logPath, i+1))
		}
	}

	if err := os.Rename(logPath, logPath+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	return nil
}

// logFilePath returns the platform-specific log file location.
func logFilePath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, appName+".log"), nil
	case "linux":
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			stateDir = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateDir, appName, appName+".log"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "Logs", appName+".log"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
