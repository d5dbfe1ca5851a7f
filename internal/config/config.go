package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/muesli/termenv"
)

// LogDiscard - the log-file value that turns logging off.
const LogDiscard = "none"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

var (
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrNegativeDelay   = errors.New("computer delay must not be negative")
)

// Config - zero values of a file or env are replaced by env-default, so the
// booleans are phrased to default to false.
type Config struct {
	LogLevel      string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile       string        `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Theme         string        `yaml:"theme" env:"THEME" env-default:"dark"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"COMPUTER_DELAY" env-default:"500ms"`
	Mute          bool          `yaml:"mute" env:"MUTE"`
	NoPruning     bool          `yaml:"no-pruning" env:"NO_PRUNING"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.Theme {
	case ThemeDark, ThemeLight, ThemeAuto:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, that.Theme)
	}

	if that.ComputerDelay < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDelay, that.ComputerDelay)
	}

	return nil
}

// DarkTheme - resolves the starting theme; auto asks the terminal for its background colour.
func (that *Config) DarkTheme() bool {
	switch that.Theme {
	case ThemeLight:
		return false
	case ThemeAuto:
		return termenv.HasDarkBackground()
	default:
		return true
	}
}
