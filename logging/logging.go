// Package logging holds the logger shared by the whole program. The terminal
// belongs to the renderer while a game runs, so log records go to a rotating
// file, or nowhere at all.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

type Config struct {
	// File to write log records to; logging is disabled when empty
	File  string
	Level string

	// Rotation limits, in megabytes and days
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// Setup points Log at the configured file. The returned hook is already
// registered; it is returned so callers may inspect it in tests.
func Setup(cfg Config) (logrus.Hook, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	Log.SetLevel(level)

	if cfg.File == "" {
		return nil, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      level,
		Formatter: &logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	Log.AddHook(hook)

	Log.WithFields(logrus.Fields{
		"file":  cfg.File,
		"level": level,
	}).Info("logging initialized")

	return hook, nil
}
