package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zamm-dev/paintboard/internal/config"
	"github.com/zamm-dev/paintboard/internal/models"
)

const debugTimestampLayout = "2006-01-02-15-04-05"

// debugLogPath names the message dump for a session started at now. Dumps sit
// next to the regular log file.
func debugLogPath(cfg *config.Config, now time.Time) string {
	name := fmt.Sprintf("paintboard-debug-%s.log", now.Format(debugTimestampLayout))
	return filepath.Join(cfg.LogDirectory(), name)
}

// openDebugLog creates the message dump file. The app closes it on Close.
func (a *App) openDebugLog(now time.Time) (*os.File, error) {
	if err := config.EnsureLogDirectory(a.config); err != nil {
		return nil, err
	}

	path := debugLogPath(a.config, now)
	file, err := os.Create(path)
	if err != nil {
		return nil, models.NewBoardErrorWithCause(models.ErrTypeSystem, "failed to create debug log", err).WithDetails(path)
	}
	a.closeOnExit(file.Close)
	return file, nil
}
