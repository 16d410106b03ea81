package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"spendlens/internal/config"
)

// Setup initializes the global zerolog logger from config.
// Format "console" gives human-readable output; anything else stays JSON.
func Setup(cfg config.LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	if strings.ToLower(cfg.Format) == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		return nil
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	return nil
}

// WithComponent returns a logger tagged with a component field.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
