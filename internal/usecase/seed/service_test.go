package seed

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
	"github.com/mkommar/schedparse/internal/domain/template"
)

type stubEmbedder struct {
	err   error
	calls int
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	s.calls++
	if s.err != nil {
		return domain.EmbeddingResult{}, s.err
	}
	return domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}, nil
}

type stubStore struct {
	indexDim  int
	upserted  []domain.Example
	indexErr  error
	upsertErr error
}

func (s *stubStore) EnsureIndex(_ context.Context, dim int) error {
	s.indexDim = dim
	return s.indexErr
}

func (s *stubStore) Upsert(_ context.Context, ex domain.Example) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, ex)
	return nil
}

func TestSeed_AllCatalogExamples(t *testing.T) {
	catalog := template.Default()
	store := &stubStore{}
	svc := New(&stubEmbedder{}, store, catalog, 1536, zap.NewNop())

	count, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	want := 0
	for _, tpl := range catalog.All() {
		want += len(tpl.ExampleQueries)
	}
	if count != want {
		t.Errorf("count = %d, want %d", count, want)
	}
	if len(store.upserted) != want {
		t.Errorf("upserted = %d, want %d", len(store.upserted), want)
	}
	if store.indexDim != 1536 {
		t.Errorf("index dim = %d, want 1536", store.indexDim)
	}

	first := store.upserted[0]
	if first.TemplateID != 1 || first.Content == "" || len(first.Vector) == 0 {
		t.Errorf("first example = %+v", first)
	}
}

func TestSeed_IndexErrorAborts(t *testing.T) {
	boom := errors.New("index boom")
	embedder := &stubEmbedder{}
	svc := New(embedder, &stubStore{indexErr: boom}, template.Default(), 1536, zap.NewNop())

	count, err := svc.Seed(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if count != 0 || embedder.calls != 0 {
		t.Errorf("count=%d embeds=%d, want no work after index failure", count, embedder.calls)
	}
}

func TestSeed_EmbedErrorStopsEarly(t *testing.T) {
	svc := New(&stubEmbedder{err: domain.ErrEmbeddingProviderError}, &stubStore{}, template.Default(), 1536, zap.NewNop())

	count, err := svc.Seed(context.Background())
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("err = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
