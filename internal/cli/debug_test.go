package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/paintboard/internal/config"
	"github.com/zamm-dev/paintboard/internal/models"
)

func appWithLogFile(logFile string) *App {
	return &App{
		viper:  viper.New(),
		config: &config.Config{Logging: config.LoggingConfig{Level: "info", File: logFile}},
	}
}

func TestDebugLogPathFollowsConfiguredLogFile(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "info", File: "/srv/board/logs/board.log"}}
	started := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	assert.Equal(t, "/srv/board/logs/paintboard-debug-2026-03-04-05-06-07.log", debugLogPath(cfg, started))
}

func TestDebugLogPathWithoutLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "off"}}

	path := debugLogPath(cfg, time.Now())
	assert.Equal(t, filepath.Join(home, config.DirName, "logs"), filepath.Dir(path))
}

func TestOpenDebugLogCreatesConfiguredDirectory(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "custom", "logs")
	app := appWithLogFile(filepath.Join(logDir, "board.log"))
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	file, err := app.openDebugLog(started)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(logDir, "paintboard-debug-2026-01-02-03-04-05.log"), file.Name())
	_, err = os.Stat(file.Name())
	assert.NoError(t, err)

	require.NoError(t, app.Close())
	_, err = file.WriteString("late")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestOpenDebugLogFailsWhenDirectoryIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	app := appWithLogFile(filepath.Join(blocker, "logs", "board.log"))

	_, err := app.openDebugLog(time.Now())
	require.Error(t, err)

	var boardErr *models.BoardError
	require.True(t, errors.As(err, &boardErr))
	assert.Equal(t, models.ErrTypeSystem, boardErr.Type)
	assert.Contains(t, boardErr.Message, "failed to create log directory")
	assert.NoError(t, app.Close())
}

func TestCloseClosesNewestFirst(t *testing.T) {
	app := NewApp()
	var order []string
	app.closeOnExit(func() error { order = append(order, "log"); return nil })
	app.closeOnExit(func() error { order = append(order, "debug"); return errors.New("busy") })

	err := app.Close()
	assert.EqualError(t, err, "busy")
	assert.Equal(t, []string{"debug", "log"}, order)
	assert.NoError(t, app.Close())
}
