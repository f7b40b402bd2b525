package plugin

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/quantkit/pluginhost/plugin/values"
)

// MockSymbolResolver implements ports.SymbolResolver for testing.
type MockSymbolResolver struct {
	mock.Mock
}

func (m *MockSymbolResolver) Resolve(ref values.ImplementationReference) (any, error) {
	args := m.Called(ref.String())
	return args.Get(0), args.Error(1)
}

func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogRecord is one captured log call.
type LogRecord struct {
	Attrs   map[string]any
	Message string
	Level   slog.Level
}

// LogRecorder is a slog.Handler that keeps every record for assertions.
type LogRecorder struct {
	records []LogRecord
	mu      sync.Mutex
}

// NewRecordingLogger returns a logger writing into a fresh LogRecorder.
func NewRecordingLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(rec), rec
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]any, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, LogRecord{Level: record.Level, Message: record.Message, Attrs: attrs})
	return nil
}

func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *LogRecorder) WithGroup(string) slog.Handler { return r }

// Records returns the captured records at or above level.
func (r *LogRecorder) Records(level slog.Level) []LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []LogRecord
	for _, rec := range r.records {
		if rec.Level >= level {
			out = append(out, rec)
		}
	}
	return out
}
