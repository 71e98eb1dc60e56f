// Package logging is the leveled, structured logger shared by the hexcore
// tools and backends. Core geometry packages never log.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

var (
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...interface{}) { doLog(slog.LevelDebug, msg, args...) }
func Info(msg string, args ...interface{})  { doLog(slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...interface{})  { doLog(slog.LevelWarn, msg, args...) }
func Error(msg string, args ...interface{}) { doLog(slog.LevelError, msg, args...) }

// Printf logs a formatted message at info level. Libraries that take a
// printf-style logger, such as the Redis client, are pointed here.
func Printf(format string, v ...interface{}) {
	doLog(slog.LevelInfo, fmt.Sprintf(format, v...))
}

func doLog(lvl slog.Level, msg string, args ...interface{}) {
	if !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, doLog, <helper>]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(context.Background(), r)
}

// SetLevel changes the minimum level that is emitted and returns a function
// restoring the previous one.
func SetLevel(lvl slog.Level) func() {
	old := level.Level()
	level.Set(lvl)
	return func() { level.Set(old) }
}

// Bracket runs fn with messages at lvl and above enabled.
func Bracket(lvl slog.Level, fn func()) {
	defer SetLevel(lvl)()
	fn()
}

// Redirect sends all output to w. The returned function undoes the redirect.
func Redirect(w io.Writer) func() {
	old := logger
	logger = newLogger(w)
	return func() { logger = old }
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels. The
// empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
