package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/casgen/internal/core/domain"
)

// kmsgMaxPayload bounds the message of a kernel log record, prefix excluded.
// Records whose message does not fit are dropped.
const kmsgMaxPayload = 4096

// Syslog priorities understood by /dev/kmsg.
const (
	priorityErr     = 3
	priorityWarning = 4
	priorityInfo    = 6
	priorityDebug   = 7
)

// KmsgHandler is a slog.Handler writing each record as a single
// "<priority>opencas-generator: message" line to the kernel log device.
type KmsgHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	attrs []slog.Attr
}

// NewKmsgHandler creates a handler writing to w. A nil writer disables the handler.
func NewKmsgHandler(w io.Writer, level slog.Leveler) *KmsgHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &KmsgHandler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *KmsgHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.w != nil && level >= h.level.Level()
}

// Handle writes the record. Write failures are ignored.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *KmsgHandler) Handle(_ context.Context, r slog.Record) error {
	var payload strings.Builder
	payload.WriteString(strings.ReplaceAll(r.Message, "\n", " "))

	for _, attr := range h.attrs {
		writeKmsgAttr(&payload, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeKmsgAttr(&payload, attr)
		return true
	})

	// The kernel limit applies to the message alone, including its terminator.
	if payload.Len()+1 > kmsgMaxPayload {
		return nil
	}

	line := "<" + strconv.Itoa(priority(r.Level)) + ">" + domain.GeneratorName + ": " + payload.String() + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.w, line)
	return nil
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *KmsgHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &KmsgHandler{
		w:     h.w,
		mu:    h.mu,
		level: h.level,
		attrs: append(slices.Clip(h.attrs), attrs...),
	}
}

// WithGroup returns the handler unchanged; kernel log lines are flat.
func (h *KmsgHandler) WithGroup(_ string) slog.Handler {
	return h
}

func writeKmsgAttr(b *strings.Builder, attr slog.Attr) {
	if err := errorValue(attr); err != nil {
		meta := flattenMetadata(err)
		for _, key := range slices.Sorted(maps.Keys(meta)) {
			fmt.Fprintf(b, " %s=%v", key, meta[key])
		}
		return
	}
	b.WriteString(" " + attr.Key + "=" + attr.Value.String())
}

func priority(level slog.Level) int {
	switch {
	case level >= slog.LevelError:
		return priorityErr
	case level >= slog.LevelWarn:
		return priorityWarning
	case level >= slog.LevelInfo:
		return priorityInfo
	default:
		return priorityDebug
	}
}
