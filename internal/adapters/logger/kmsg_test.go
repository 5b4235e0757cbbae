package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casgen/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// countingWriter records every Write call separately.
type countingWriter struct {
	writes []string
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestKmsgHandler_Priorities(t *testing.T) {
	w := &countingWriter{}
	lg := slog.New(logger.NewKmsgHandler(w, slog.LevelDebug))

	lg.Debug("debug")
	lg.Info("info")
	lg.Warn("warn")
	lg.Error("error")

	assert.Equal(t, []string{
		"<7>opencas-generator: debug\n",
		"<6>opencas-generator: info\n",
		"<4>opencas-generator: warn\n",
		"<3>opencas-generator: error\n",
	}, w.writes)
}

func TestKmsgHandler_DefaultLevelIsInfo(t *testing.T) {
	w := &countingWriter{}
	lg := slog.New(logger.NewKmsgHandler(w, nil))

	lg.Debug("dropped")
	lg.Info("kept")

	assert.Equal(t, []string{"<6>opencas-generator: kept\n"}, w.writes)
}

func TestKmsgHandler_SingleWriteWithAttrs(t *testing.T) {
	w := &countingWriter{}
	lg := slog.New(logger.NewKmsgHandler(w, slog.LevelInfo)).With("unit", "opencas@opencas1-0.service")

	lg.Info("created symlink", "path", "opencas.target.requires/opencas@opencas1-0.service")

	require.Len(t, w.writes, 1)
	assert.Equal(t,
		"<6>opencas-generator: created symlink unit=opencas@opencas1-0.service path=opencas.target.requires/opencas@opencas1-0.service\n",
		w.writes[0])
}

func TestKmsgHandler_ErrorMetadata(t *testing.T) {
	w := &countingWriter{}
	lg := slog.New(logger.NewKmsgHandler(w, slog.LevelInfo))

	err := zerr.With(zerr.With(zerr.Wrap(errors.New("boom"), "cannot create dir"), "path", "x.requires"), "cache_id", 1)
	lg.Error(err.Error(), logger.ErrorKey, err)

	require.Len(t, w.writes, 1)
	assert.Equal(t, "<3>opencas-generator: cannot create dir: boom cache_id=1 path=x.requires\n", w.writes[0])
}

func TestKmsgHandler_MultilineMessageIsFlattened(t *testing.T) {
	w := &countingWriter{}
	slog.New(logger.NewKmsgHandler(w, slog.LevelInfo)).Info("first\nsecond")

	require.Len(t, w.writes, 1)
	assert.Equal(t, "<6>opencas-generator: first second\n", w.writes[0])
}

func TestKmsgHandler_DropsOversizedRecords(t *testing.T) {
	w := &countingWriter{}
	lg := slog.New(logger.NewKmsgHandler(w, slog.LevelInfo))

	lg.Info(strings.Repeat("x", 5000))
	lg.Info("after")

	assert.Equal(t, []string{"<6>opencas-generator: after\n"}, w.writes)
}

func TestKmsgHandler_NilWriterDisabled(t *testing.T) {
	h := logger.NewKmsgHandler(nil, slog.LevelDebug)
	assert.False(t, h.Enabled(t.Context(), slog.LevelError))

	buf := &bytes.Buffer{}
	assert.True(t, logger.NewKmsgHandler(buf, slog.LevelDebug).Enabled(t.Context(), slog.LevelDebug))
}

func TestKmsgHandler_LimitCountsMessageOnly(t *testing.T) {
	w := &countingWriter{}
	lg := slog.New(logger.NewKmsgHandler(w, slog.LevelInfo))

	fits := strings.Repeat("x", 4095)
	lg.Info(fits)
	lg.Info(fits + "x")

	require.Len(t, w.writes, 1)
	assert.Equal(t, "<6>opencas-generator: "+fits+"\n", w.writes[0])
}
