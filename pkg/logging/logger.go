// Package logging holds the shared logrus logger of the service.
//
// Usage:
//
//	logging.Log.WithField("userId", uid).Info("list synced")
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = NewLogger("streamsphere", "")

// NewLogger creates a logrus entry for a named service writing JSON to stdout.
// An empty or unknown level falls back to info.
func NewLogger(service string, levelStr string) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log.WithField("service", service)
}

// Init replaces the package logger once the env configs are loaded.
func Init(service string, level string) {
	Log = NewLogger(service, level)
}
