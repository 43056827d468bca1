package cli

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/zamm-dev/paintboard/internal/config"
)

// App represents the CLI application
type App struct {
	viper   *viper.Viper
	config  *config.Config
	closers []func() error
}

// NewApp creates a new CLI application. Configuration is loaded once the
// command line has been parsed so flags can override it.
func NewApp() *App {
	return &App{
		viper: viper.New(),
	}
}

// loadConfig loads configuration with the bound flags applied
func (a *App) loadConfig() error {
	if a.config != nil {
		return nil
	}
	cfg, err := config.LoadWith(a.viper)
	if err != nil {
		return err
	}
	a.config = cfg
	return nil
}

func (a *App) closeOnExit(close func() error) {
	a.closers = append(a.closers, close)
}

// Close closes the log files opened while running, newest first
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
