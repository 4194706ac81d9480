// Package logger wraps a shared logrus instance behind a small package-level
// API so every component logs with the same level, format and destinations.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func Init() error {
	return InitWithConfig("info", "optionslab.log")
}

// InitWithConfig sets the level and mirrors output to stderr and, when a
// path is given, a log file. Unknown level strings fall back to info. The
// "verbose" level maps to logrus trace.
func InitWithConfig(logLevel, logFilePath string) error {
	level, err := logrus.ParseLevel(normalizeLevel(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if logFilePath == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return nil
}

func normalizeLevel(level string) string {
	if level == "verbose" {
		return "trace"
	}
	return level
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Verbosef(format string, args ...interface{}) {
	log.Tracef(format, args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
