// Package logger implements a logging adapter using log/slog.
//
// Records go to the kernel log device, where they survive an early-boot run,
// and to a colored stderr handler for interactive use.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.trai.ch/casgen/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Options configures the sinks of a Logger.
type Options struct {
	// Stderr receives human-readable output. Nil means os.Stderr.
	Stderr io.Writer
	// Kmsg receives kernel log records. Nil disables the kernel log sink.
	Kmsg io.Writer
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger      *slog.Logger
	stderrLevel *slog.LevelVar
	closer      io.Closer
}

// New creates a Logger. Stderr starts at warning level; the kernel log records info and above.
func New(opts Options) *Logger {
	stderrLevel := &slog.LevelVar{}
	stderrLevel.Set(slog.LevelWarn)

	handler := fanoutHandler{
		NewKmsgHandler(opts.Kmsg, slog.LevelInfo),
		NewPrettyHandler(opts.Stderr, &slog.HandlerOptions{Level: stderrLevel}),
	}

	return &Logger{
		logger:      slog.New(handler),
		stderrLevel: stderrLevel,
	}
}

// Open creates a Logger writing to the kernel log device at kmsgPath. The device
// is optional: if it cannot be opened, only stderr is used.
func Open(kmsgPath string, stderr io.Writer) *Logger {
	var kmsg io.WriteCloser
	if kmsgPath != "" {
		//nolint:gosec // path comes from the generator settings
		if f, err := os.OpenFile(kmsgPath, os.O_WRONLY|os.O_APPEND, 0); err == nil {
			kmsg = f
		}
	}

	if kmsg == nil {
		return New(Options{Stderr: stderr})
	}
	l := New(Options{Stderr: stderr, Kmsg: kmsg})
	l.closer = kmsg
	return l
}

// SetVerbose lowers the stderr level to info, or restores it to warning.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.stderrLevel.Set(slog.LevelInfo)
		return
	}
	l.stderrLevel.Set(slog.LevelWarn)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error together with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.logger.LogAttrs(context.Background(), slog.LevelError, err.Error(), slog.Any(ErrorKey, err))
}

// Close releases the kernel log device.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
