package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env"
)

// LogConfig controls levels, formatting, outputs and file rotation.
type LogConfig struct {
	// trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`
	// json, text
	Format string `env:"LOG_FORMAT"`
	// file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"stdout"`

	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"` // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"` // days
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`

	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	Async      bool `env:"LOG_ASYNC" envDefault:"true"`
	BufferSize int  `env:"LOG_BUFFER_SIZE" envDefault:"1000"`

	// comma separated module names, empty or * keeps everything
	FilterModules string `env:"LOG_FILTER_MODULES"`
}

// DefaultConfig reads LOG_* variables. Level and format fall back on GO_ENV:
// development logs debug/text, everything else info/json.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		cfg = &LogConfig{Output: "stdout", MaxSize: 100, MaxBackups: 7, MaxAge: 7, LogPath: "./logs", AppFile: "app.log", ErrorFile: "error.log", BufferSize: 1000}
	}

	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}
	if cfg.Level == "" {
		cfg.Level = "info"
		if goEnv == "development" {
			cfg.Level = "debug"
		}
	}
	if cfg.Format == "" {
		cfg.Format = "json"
		if goEnv == "development" {
			cfg.Format = "text"
		}
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	return cfg
}
