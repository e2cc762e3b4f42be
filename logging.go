package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging points the global logger at a file. The terminal is owned by
// the bar, so nothing is written to stderr while it runs.
func setupLogging(level string) (io.Closer, error) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(level))

	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, errors.Wrap(err, "cache dir")
	}
	dir = filepath.Join(dir, "controller-status")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}

	path := filepath.Join(dir, "controller-status.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log %s", path)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    true,
	})
	return file, nil
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
