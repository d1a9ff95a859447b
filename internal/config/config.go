// Package config loads runtime settings from the environment, reading an
// optional .env file first.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds settings the CLI flags default to.
type Config struct {
	DataDir  string
	LogLevel string
	Addr     string
}

// Load reads ADVENT_DATA_DIR, ADVENT_LOG_LEVEL and ADVENT_ADDR. Files are
// loaded in order; missing files are skipped and unreadable ones are
// logged. Variables already set in the environment win.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logrus.WithError(err).WithField("file", f).Warn("ignoring unreadable env file")
		}
	}
	cfg := &Config{
		DataDir:  os.Getenv("ADVENT_DATA_DIR"),
		LogLevel: os.Getenv("ADVENT_LOG_LEVEL"),
		Addr:     os.Getenv("ADVENT_ADDR"),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		cfg.LogLevel = "info"
	}
	return cfg
}

// NewLogger builds a text logger at the given level, falling back to info.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("invalid log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
