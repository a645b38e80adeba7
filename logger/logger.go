// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

var (
	isTerm    = isatty.IsTerminal(os.Stderr.Fd())
	isJournal = isStderrConnectedToJournal()
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(newDefault())
}

func newDefault() *Logger {
	if isTerm && !isJournal {
		return &Logger{sl: slog.New(withCallDepth(4, newTerminalHandler(os.Stderr)))}
	}
	return &Logger{sl: slog.New(withCallDepth(4, newTextHandler(os.Stderr)))}
}

// Default returns the process logger writing to stderr.
func Default() *Logger {
	return defaultLogger.Load()
}

// New returns a Logger sharing the default handler.
func New() *Logger {
	return &Logger{sl: Default().sl}
}

// NewWithWriter returns a Logger that writes plain text records to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{sl: slog.New(withCallDepth(4, newTextHandler(w)))}
}

// Logger is a printf style front end for slog. A nil *Logger logs through Default.
type Logger struct {
	sl *slog.Logger
}

// With returns a child logger that adds the given attributes to every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return Default().With(args...)
	}
	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) Warningf(format string, a ...any) { l.log(slog.LevelWarn, fmt.Sprintf(format, a...)) }
func (l *Logger) Debugf(format string, a ...any)   { l.log(slog.LevelDebug, fmt.Sprintf(format, a...)) }

func (l *Logger) log(level slog.Level, msg string) {
	if l == nil {
		Default().log(level, msg)
		return
	}
	l.sl.Log(context.Background(), level, msg)
}
