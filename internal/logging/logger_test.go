package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	t.Run("returns absolute path containing the app name", func(t *testing.T) {
		logPath, err := logFilePath("lazycurl")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(logPath))
		assert.Contains(t, logPath, "lazycurl")
	})

	t.Run("linux honors XDG_STATE_HOME", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("linux-only path rule")
		}
		stateDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", stateDir)

		logPath, err := logFilePath("lazycurl")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(stateDir, "lazycurl", "lazycurl.log"), logPath)
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("debug off discards and touches nothing", func(t *testing.T) {
		stateDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", stateDir)

		logger, err := InitLogger("lazycurl-test", false)
		require.NoError(t, err)
		require.NotNil(t, logger)

		logger.Info("discarded")

		entries, err := os.ReadDir(stateDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("debug on writes records to the log file", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("relies on XDG_STATE_HOME redirection")
		}
		stateDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", stateDir)

		logger, err := InitLogger("lazycurl-test", true)
		require.NoError(t, err)
		logger.Debug("hello", "key", "value")

		logPath := filepath.Join(stateDir, "lazycurl-test", "lazycurl-test.log")
		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
		assert.Contains(t, string(data), `"key":"value"`)
	})
}

func TestRotateIfNeeded(t *testing.T) {
	t.Run("small file is left alone", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "app.log")
		require.NoError(t, os.WriteFile(logPath, []byte("little"), 0644))

		require.NoError(t, rotateIfNeeded(logPath))
		_, err := os.Stat(logPath)
		assert.NoError(t, err)
		_, err = os.Stat(logPath + ".1")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("oversized file rotates to .1", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "app.log")
		big := make([]byte, maxLogSize)
		require.NoError(t, os.WriteFile(logPath, big, 0644))

		require.NoError(t, rotateIfNeeded(logPath))
		_, err := os.Stat(logPath)
		assert.True(t, os.IsNotExist(err))
		info, err := os.Stat(logPath + ".1")
		require.NoError(t, err)
		assert.Equal(t, int64(maxLogSize), info.Size())
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, rotateIfNeeded(filepath.Join(t.TempDir(), "absent.log")))
	})
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	logger.Info("goes nowhere")
	logger.Error("also nowhere")
}
