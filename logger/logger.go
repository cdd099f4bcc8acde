package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxLogSize is the size above which an existing log file is rotated on open
const MaxLogSize = 10 * 1024 * 1024

// New builds the application logger
// The terminal belongs to the renderer, so output goes to path or nowhere
// LOG_LEVEL sets the level (default info), LOG_FORMAT=json selects the JSON formatter
func New(path string) (*logrus.Logger, io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if path != "" {
		if err := rotate(path); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	return newWithEnv(out, os.LookupEnv), closer, nil
}

func newWithEnv(out io.Writer, lookup func(string) (string, bool)) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	logLevel, ok := lookup("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format, _ := lookup("LOG_FORMAT")
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	return log
}

// rotate moves an oversized log aside as name.<timestamp>.log
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	rotated := fmt.Sprintf("%s.%s.log", base, time.Now().Format("20060102-150405"))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// Discard returns a logger that drops everything, for tests and headless runs
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
