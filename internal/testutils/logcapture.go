package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record flattened to a map. The keys "level"
// and "message" hold the record's level and message.
type LogEntry map[string]any

// LogCapture is a memory-backed slog.Handler. Attributes added through
// Logger.With are recorded on every subsequent entry.
type LogCapture struct {
	store *captureStore
	attrs []slog.Attr
}

type captureStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogCapture returns a handler and a logger writing to it.
func NewLogCapture() (*LogCapture, *slog.Logger) {
	h := &LogCapture{store: &captureStore{}}
	return h, slog.New(h)
}

// Enabled satisfies slog.Handler.
func (h *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, a := range h.attrs {
		entry[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = append(h.store.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &LogCapture{store: h.store, attrs: merged}
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (h *LogCapture) WithGroup(string) slog.Handler {
	return h
}

// Entries returns a copy of every captured entry.
func (h *LogCapture) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return append([]LogEntry(nil), h.store.entries...)
}

// Find returns the first entry with the given message.
func (h *LogCapture) Find(message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e["message"] == message {
			return e, true
		}
	}
	return nil, false
}
