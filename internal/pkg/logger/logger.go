package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

// StdLogger routes the Logger port onto log/slog.
type StdLogger struct {
	verbose bool
	log     *slog.Logger
}

// NewStd creates a StdLogger writing text records to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing to w. Nothing is written unless verbose is set.
func New(w io.Writer, verbose bool) *StdLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &StdLogger{verbose: verbose, log: slog.New(handler)}
}

// NewNop returns a logger that discards everything.
func NewNop() *StdLogger {
	return New(io.Discard, false)
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.log.Debug(msg, attrs(fields)...)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.log.Info(msg, attrs(fields)...)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.log.Warn(msg, attrs(fields)...)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.log.Error(msg, args...)
}

func attrs(fields map[string]interface{}) []any {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, slog.Any(key, fields[key]))
	}
	return out
}
