package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// DirName is the per-project directory holding config.yaml
const DirName = ".paintboard"

// Config holds all configuration for the application
type Config struct {
	Resources ResourcesConfig `mapstructure:"resources"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	UI        UIConfig        `mapstructure:"ui"`
}

// ResourcesConfig holds the paths of the files read at startup
type ResourcesConfig struct {
	Credits    string `mapstructure:"credits"`
	Stylesheet string `mapstructure:"stylesheet"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds screen-related configuration
type UIConfig struct {
	Title     string `mapstructure:"title"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// Enabled reports whether log output should be written at all
func (l LoggingConfig) Enabled() bool {
	return l.Level != "off" && l.File != ""
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith loads configuration using v, which may already carry bound flags
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(DirName)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("PAINTBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Flags bound by the caller still win over these
	_ = v.BindEnv("resources.credits", "PAINTBOARD_CREDITS")
	_ = v.BindEnv("resources.stylesheet", "PAINTBOARD_STYLESHEET")
	_ = v.BindEnv("logging.level", "PAINTBOARD_LOG_LEVEL")
	_ = v.BindEnv("logging.file", "PAINTBOARD_LOG_FILE")

	if configPath := os.Getenv("PAINTBOARD_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, models.NewBoardErrorWithCause(models.ErrTypeSystem, "failed to read config file", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, models.NewBoardErrorWithCause(models.ErrTypeSystem, "failed to unmarshal config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	expandPaths(&config)

	return &config, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "off":
	default:
		return models.NewBoardError(models.ErrTypeValidation, "invalid logging level").
			WithDetails(fmt.Sprintf("%q (expected debug, info or off)", c.Logging.Level))
	}
	if c.Resources.Credits == "" {
		return models.NewBoardError(models.ErrTypeValidation, "resources.credits must not be empty")
	}
	if c.Resources.Stylesheet == "" {
		return models.NewBoardError(models.ErrTypeValidation, "resources.stylesheet must not be empty")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("resources.credits", resources.DefaultCreditsPath)
	v.SetDefault("resources.stylesheet", resources.DefaultStylesheetPath)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", defaultLogPath())

	v.SetDefault("ui.title", models.Title)
	v.SetDefault("ui.alt_screen", true)
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DirName, "logs", "paintboard.log") // fallback
	}
	return filepath.Join(homeDir, DirName, "logs", "paintboard.log")
}

// expandPaths expands ~ and relative paths in configuration
func expandPaths(config *Config) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	config.Resources.Credits = expandPath(config.Resources.Credits, homeDir)
	config.Resources.Stylesheet = expandPath(config.Resources.Stylesheet, homeDir)
	config.Logging.File = expandPath(config.Logging.File, homeDir)
}

// expandPath expands ~ to home directory and resolves relative paths
func expandPath(path, homeDir string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' && homeDir != "" {
		if len(path) == 1 {
			return homeDir
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			return absPath
		}
	}

	return path
}

// LogDirectory is the directory holding the log file and debug dumps. An
// unset log file falls back to the default location.
func (c *Config) LogDirectory() string {
	if c.Logging.File == "" {
		return filepath.Dir(defaultLogPath())
	}
	return filepath.Dir(c.Logging.File)
}

// EnsureLogDirectory creates the log directory of config
func EnsureLogDirectory(config *Config) error {
	logDir := config.LogDirectory()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return models.NewBoardErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create log directory: %s", logDir), err)
	}
	return nil
}

// WriteDefaultConfig writes a default configuration file into dir and returns
// its path. An existing file is left untouched.
func WriteDefaultConfig(dir string) (string, error) {
	configDir := filepath.Join(dir, DirName)
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", models.NewBoardErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create config directory: %s", configDir), err)
	}

	configContent := `resources:
  credits: ` + resources.DefaultCreditsPath + `
  stylesheet: ` + resources.DefaultStylesheetPath + `

logging:
  level: info
  file: "` + defaultLogPath() + `"

ui:
  title: "` + models.Title + `"
  alt_screen: true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return "", models.NewBoardErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write config file: %s", configPath), err)
	}

	return configPath, nil
}
