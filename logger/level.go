// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"log/slog"
	"strings"
)

const levelDisable = slog.Level(99)

// Level is the process wide minimum level shared by every Logger.
// The check starts at warning so a healthy run prints nothing on stderr.
var Level = newLevel(slog.LevelWarn)

func newLevel(def slog.Level) *level {
	l := &level{lvl: &slog.LevelVar{}}
	l.lvl.Set(def)
	return l
}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(level slog.Level) bool { return level >= l.lvl.Level() }
func (l *level) Get() slog.Level               { return l.lvl.Level() }
func (l *level) Set(level slog.Level)          { l.lvl.Set(level) }

// SetByName accepts syslog style names and reports whether the name was known.
// "notice" has no level of its own here and maps to info.
func (l *level) SetByName(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "err", "error":
		l.lvl.Set(slog.LevelError)
	case "warn", "warning":
		l.lvl.Set(slog.LevelWarn)
	case "notice", "info":
		l.lvl.Set(slog.LevelInfo)
	case "debug":
		l.lvl.Set(slog.LevelDebug)
	case "emergency", "alert", "critical", "off":
		l.lvl.Set(levelDisable)
	default:
		return false
	}
	return true
}
