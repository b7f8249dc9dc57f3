package embcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/db"
	"github.com/mkommar/schedparse/internal/domain"
)

type mockKV struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKV) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

type countingEmbedder struct {
	vec   []float32
	calls int
}

func (e *countingEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	e.calls++
	return domain.EmbeddingResult{Embedding: e.vec, TotalTokens: 7}, nil
}

func TestEmbed_MissThenHit(t *testing.T) {
	kv := newMockKV()
	inner := &countingEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	c := New(inner, kv, "schedparse:", time.Hour, nil, zap.NewNop())

	first, err := c.Embed(context.Background(), "rivalry games on weekends")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if first.TotalTokens != 7 {
		t.Errorf("miss must report provider usage, got %d tokens", first.TotalTokens)
	}

	second, err := c.Embed(context.Background(), "rivalry games on weekends")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("inner called %d times, want 1", inner.calls)
	}
	if len(second.Embedding) != 3 || second.Embedding[1] != 0.2 {
		t.Errorf("cached vector = %v", second.Embedding)
	}
	if second.TotalTokens != 0 {
		t.Errorf("hit must not report tokens, got %d", second.TotalTokens)
	}

	for _, ttl := range kv.ttls {
		if ttl != time.Hour {
			t.Errorf("ttl = %v, want 1h", ttl)
		}
	}
}

func TestEmbed_DistinctTextsDistinctKeys(t *testing.T) {
	kv := newMockKV()
	inner := &countingEmbedder{vec: []float32{1}}
	c := New(inner, kv, "schedparse:", time.Hour, nil, zap.NewNop())

	_, _ = c.Embed(context.Background(), "a")
	_, _ = c.Embed(context.Background(), "b")

	if inner.calls != 2 {
		t.Errorf("inner called %d times, want 2", inner.calls)
	}
	if len(kv.data) != 2 {
		t.Errorf("cache entries = %d, want 2", len(kv.data))
	}
}
