// Package config loads settings from flags, YEAR_PROGRESS_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"year-progress/internal/logger"
	"year-progress/internal/theme"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "YEAR_PROGRESS"

	// ConfigFile is searched for under the XDG config directories.
	ConfigFile = "year-progress/config.yaml"

	KeyTheme        = "theme"
	KeyYear         = "year"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyLogFile      = "log.file"
	KeyShareMethod  = "share.method"
	KeyWindowWidth  = "window.width"
	KeyWindowHeight = "window.height"
	keyDebug        = "debug"
)

var (
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidShare  = errors.New("invalid share method")
	ErrInvalidWindow = errors.New("invalid window size")
)

// ShareMethod picks the share channel.
type ShareMethod string

const (
	// ShareAuto tries the platform share facility and falls back to the clipboard.
	ShareAuto ShareMethod = "auto"
	// ShareClipboard always copies to the clipboard.
	ShareClipboard ShareMethod = "clipboard"
)

type LogConfig struct {
	Level  logger.LogLevel
	Format string
	File   string
}

type WindowConfig struct {
	Width  float32
	Height float32
}

type Config struct {
	Theme  theme.Mode
	Year   int
	Log    LogConfig
	Share  ShareMethod
	Window WindowConfig
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTheme, string(theme.ModeSystem))
	v.SetDefault(KeyYear, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyShareMethod, string(ShareAuto))
	v.SetDefault(KeyWindowWidth, 420)
	v.SetDefault(KeyWindowHeight, 640)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// LOG_LEVEL and DEBUG=1 are honoured without the prefix as well.
	_ = v.BindEnv(KeyLogLevel, EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv(keyDebug, "DEBUG")
	return v
}

// ReadFile merges the YAML file at path into v. With an empty path the XDG
// config directories are searched and a missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		found, err := xdg.SearchConfigFile(ConfigFile)
		if err != nil {
			return nil
		}
		path = found
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	mode, err := theme.ParseMode(v.GetString(KeyTheme))
	if err != nil {
		return Config{}, err
	}

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}
	if v.GetBool(keyDebug) {
		level = logger.DebugLevel
	}

	year := v.GetInt(KeyYear)
	if year < 0 || year > 9998 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	method := ShareMethod(strings.ToLower(v.GetString(KeyShareMethod)))
	if method != ShareAuto && method != ShareClipboard {
		return Config{}, fmt.Errorf("%w: %q (want auto or clipboard)", ErrInvalidShare, method)
	}

	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != "json" {
		format = "console"
	}

	width, height := float32(v.GetFloat64(KeyWindowWidth)), float32(v.GetFloat64(KeyWindowHeight))
	if width <= 0 || height <= 0 {
		return Config{}, fmt.Errorf("%w: %gx%g", ErrInvalidWindow, width, height)
	}

	return Config{
		Theme: mode,
		Year:  year,
		Log: LogConfig{
			Level:  level,
			Format: format,
			File:   v.GetString(KeyLogFile),
		},
		Share:  method,
		Window: WindowConfig{Width: width, Height: height},
	}, nil
}
