package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hrboard/internal/domain/tracker"
)

const (
	// DefaultKey is the fixed key the tracker state lives under.
	DefaultKey = "hr-updates"
	// SchemaVersion is the only version Load accepts.
	SchemaVersion = 4
	// DefaultDebounce collapses bursts of saves into one write.
	DefaultDebounce = 300 * time.Millisecond
)

// envelope is the persisted state layout.
type envelope struct {
	Items        []tracker.Record `json:"items"`
	LastModified *int64           `json:"lastModified"`
	Version      int              `json:"version"`
}

// Gateway persists tracker snapshots to a key-value store with a
// cancelable debounce timer. It implements tracker.Saver.
type Gateway struct {
	kv       KeyValue
	key      string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending []tracker.Record
}

// NewGateway creates a gateway writing under key with the given debounce
// window. Zero values fall back to DefaultKey and DefaultDebounce.
func NewGateway(kv KeyValue, key string, debounce time.Duration, logger *slog.Logger) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{kv: kv, key: key, debounce: debounce, logger: logger}
}

// Schedule queues a debounced save of the given snapshot. Repeated calls
// within the window reset the timer, so only the latest state of a burst
// is written. A failed write is a warning, never an error to the caller.
func (g *Gateway) Schedule(records []tracker.Record) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending = records
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.debounce, func() {
		snapshot := g.takePending()
		if snapshot == nil {
			return
		}
		if err := g.Save(context.Background(), snapshot); err != nil {
			g.logger.Warn("debounced save failed", "error", err)
		}
	})
}

// Flush cancels any pending timer and writes the queued snapshot now.
func (g *Gateway) Flush(ctx context.Context) error {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	snapshot := g.pending
	g.pending = nil
	g.mu.Unlock()

	if snapshot == nil {
		return nil
	}
	return g.Save(ctx, snapshot)
}

// Save writes the versioned envelope immediately.
func (g *Gateway) Save(ctx context.Context, records []tracker.Record) error {
	now := time.Now().UnixMilli()
	payload, err := json.Marshal(envelope{
		Items:        records,
		LastModified: &now,
		Version:      SchemaVersion,
	})
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := g.kv.Set(ctx, g.key, payload); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	g.logger.Debug("state saved", "key", g.key, "records", len(records))
	return nil
}

// Load reads the persisted record set. Missing keys, version mismatches
// and malformed payloads all yield (nil, false) so the caller can fall
// back to seed data; Load never fails the caller.
func (g *Gateway) Load(ctx context.Context) ([]tracker.Record, bool) {
	payload, err := g.kv.Get(ctx, g.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.logger.Warn("state read failed", "error", err)
		}
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		g.logger.Warn("discarding malformed state", "error", err)
		return nil, false
	}
	if env.Version != SchemaVersion {
		g.logger.Warn("discarding state with unsupported version", "version", env.Version)
		return nil, false
	}
	if env.Items == nil {
		return nil, false
	}
	return env.Items, true
}

func (g *Gateway) takePending() []tracker.Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot := g.pending
	g.pending = nil
	g.timer = nil
	return snapshot
}
