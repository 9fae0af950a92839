package persist

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrboard/internal/domain/tracker"
)

func sample() []tracker.Record {
	return []tracker.Record{
		{ID: "1", Activity: "Engagement survey", Status: tracker.StatusOngoing, TargetDate: "2026-09-15"},
		{ID: "2", Activity: "Handbook audit", Status: tracker.StatusPending},
	}
}

func TestGateway_SaveLoadRoundTrip(t *testing.T) {
	kv := NewMemory()
	g := NewGateway(kv, "", 0, nil)
	ctx := context.Background()

	require.NoError(t, g.Save(ctx, sample()))

	loaded, ok := g.Load(ctx)
	require.True(t, ok)
	require.Equal(t, sample(), loaded)
}

func TestGateway_SaveWritesVersionedEnvelope(t *testing.T) {
	kv := NewMemory()
	g := NewGateway(kv, "", 0, nil)
	ctx := context.Background()

	require.NoError(t, g.Save(ctx, sample()))

	payload, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)

	var env struct {
		Items        []tracker.Record `json:"items"`
		LastModified *int64           `json:"lastModified"`
		Version      int              `json:"version"`
	}
	require.NoError(t, json.Unmarshal(payload, &env))
	require.Equal(t, SchemaVersion, env.Version)
	require.NotNil(t, env.LastModified)
	require.Len(t, env.Items, 2)
}

func TestGateway_LoadMissingKey(t *testing.T) {
	g := NewGateway(NewMemory(), "", 0, nil)
	records, ok := g.Load(context.Background())
	require.False(t, ok)
	require.Nil(t, records)
}

func TestGateway_LoadVersionMismatch(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	payload, err := json.Marshal(map[string]any{
		"items":   sample(),
		"version": 3,
	})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, DefaultKey, payload))

	g := NewGateway(kv, "", 0, nil)
	_, ok := g.Load(ctx)
	require.False(t, ok)
}

func TestGateway_LoadMalformedPayload(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, DefaultKey, []byte(`{"items": "not a list", "version": 4}`)))

	g := NewGateway(kv, "", 0, nil)
	_, ok := g.Load(ctx)
	require.False(t, ok)

	require.NoError(t, kv.Set(ctx, DefaultKey, []byte(`not json at all`)))
	_, ok = g.Load(ctx)
	require.False(t, ok)
}

func TestGateway_ScheduleDebouncesToLatestState(t *testing.T) {
	kv := NewMemory()
	g := NewGateway(kv, "", 20*time.Millisecond, nil)
	ctx := context.Background()

	first := []tracker.Record{{ID: "1", Activity: "first"}}
	second := []tracker.Record{{ID: "2", Activity: "second"}}
	g.Schedule(first)
	g.Schedule(second)

	require.Eventually(t, func() bool {
		loaded, ok := g.Load(ctx)
		return ok && len(loaded) == 1 && loaded[0].Activity == "second"
	}, time.Second, 5*time.Millisecond)
}

func TestGateway_FlushWritesPendingImmediately(t *testing.T) {
	kv := NewMemory()
	g := NewGateway(kv, "", time.Hour, nil)
	ctx := context.Background()

	g.Schedule(sample())
	require.NoError(t, g.Flush(ctx))

	loaded, ok := g.Load(ctx)
	require.True(t, ok)
	require.Equal(t, sample(), loaded)
}

func TestGateway_FlushWithoutPendingIsNoOp(t *testing.T) {
	kv := NewMemory()
	g := NewGateway(kv, "", time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, g.Flush(ctx))
	_, ok := g.Load(ctx)
	require.False(t, ok)
}
