// Package logging adapts log/slog to the calculation.Logger interface used by the engine.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// SlogLogger implements calculation.Logger on top of a slog.Logger.
type SlogLogger struct {
	l *slog.Logger
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *SlogLogger {
	return Wrap(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// NewJSON returns a JSON logger writing to w at the given level, for the HTTP host.
func NewJSON(w io.Writer, level slog.Level) *SlogLogger {
	return Wrap(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

// Wrap adapts an existing slog.Logger. A nil logger falls back to slog.Default.
func Wrap(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

// Slog exposes the underlying logger for structured call sites.
func (s *SlogLogger) Slog() *slog.Logger { return s.l }

func (s *SlogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s *SlogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s *SlogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s *SlogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
