package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func NewLogger(e *Env, w io.Writer) *slog.Logger {
	if e.Development {
		return slog.New(
			tint.NewHandler(w, &tint.Options{Level: e.Level()}),
		)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: e.Level()}))
}

func logrusLevel(l slog.Level) logrus.Level {
	switch {
	case l <= slog.LevelDebug:
		return logrus.DebugLevel
	case l <= slog.LevelInfo:
		return logrus.InfoLevel
	case l <= slog.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// SetupLogrus applies the env log settings to a package logger and, when
// MINES_LOG_FILE is set, mirrors its entries into a rotated JSON file.
func SetupLogrus(log *logrus.Logger, e *Env, w io.Writer) error {
	level := logrusLevel(e.Level())
	log.SetLevel(level)
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: e.Development})

	if e.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   e.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", e.LogFile, err)
	}
	log.AddHook(hook)
	return nil
}
