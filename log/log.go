// Package log provides leveled logging for tempconv, backed by
// [log/slog]. The default logger writes through a swappable handler so
// the command can direct output to a log file mirrored to stdout, or
// to a JSON stream.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

// DiscardHandler drops every log event.
var DiscardHandler Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]Attr) Handler                  { return discardHandler{} }
func (discardHandler) WithGroup(string) Handler                  { return discardHandler{} }

// Logger is the subset of logging used by collaborating packages.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

type logger struct {
	*slog.Logger
	with []any
}

var level = new(slog.LevelVar)

var defaultLogger = &logger{
	Logger: slog.New(slog.NewTextHandler(os.Stderr, options())),
}

func options() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level}
}

// DefaultLogger returns the default logger as a [Logger].
func DefaultLogger() Logger {
	return defaultLogger
}

// With adds the given attributes to every event logged by the
// default logger.
func With(args ...any) {
	defaultLogger.Logger = defaultLogger.Logger.With(args...)
	defaultLogger.with = append(defaultLogger.with, args...)
}

// SetLogLevel sets the minimum level logged by the default logger.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// SetOutput directs the default logger's text handler to w.
func SetOutput(w io.Writer) {
	SetTextHandler(w)
}

// SetTextHandler sets the default logger's handler to a text handler
// writing to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, options()))
}

// SetJSONHandler sets the default logger's handler to a JSON handler
// writing to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, options()))
}

// Info logs at [LevelInfo].
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs at [LevelWarn].
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs at [LevelError]. A non-nil err is attached as the
// "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}

	defaultLogger.Error(msg, args...)
}

// Fatal logs at [LevelError] and exits the process with status 1.
func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}

func Println(v ...any) {
	defaultLogger.Info(fmt.Sprintln(v...))
}

func Printf(format string, v ...any) {
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

func (l *logger) Println(v ...any) {
	l.Info(fmt.Sprintln(v...))
}

func (l *logger) Printf(format string, v ...any) {
	l.Info(fmt.Sprintf(format, v...))
}

type warnLogger struct{}

// WarnLogger returns a [Logger] that logs at [LevelWarn].
func WarnLogger() Logger {
	return warnLogger{}
}

func (warnLogger) Println(v ...any)               { Warn(fmt.Sprintln(v...)) }
func (warnLogger) Printf(format string, v ...any) { Warn(fmt.Sprintf(format, v...)) }

type errorLogger struct{}

// ErrorLogger returns a [Logger] that logs at [LevelError].
func ErrorLogger() Logger {
	return errorLogger{}
}

func (errorLogger) Println(v ...any)               { defaultLogger.Error(fmt.Sprintln(v...)) }
func (errorLogger) Printf(format string, v ...any) { defaultLogger.Error(fmt.Sprintf(format, v...)) }
