// Package example persists template example embeddings and serves
// similarity matches over them.
package example

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"

	"github.com/mkommar/schedparse/internal/db"
	"github.com/mkommar/schedparse/internal/domain"
)

// store is the consumer interface for example persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// HNSWConfig holds index build parameters.
type HNSWConfig struct {
	M           int
	EFConstruct int
}

// Repo stores examples as Redis hashes under content-derived keys and
// matches query vectors against them via FT.SEARCH KNN.
type Repo struct {
	store     store
	keyPrefix string
	hnsw      HNSWConfig
}

// New creates an example repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// WithHNSW sets HNSW index build parameters.
func (r *Repo) WithHNSW(cfg HNSWConfig) *Repo {
	r.hnsw = cfg
	return r
}

func (r *Repo) indexName() string {
	return r.keyPrefix + "examples:idx"
}

func (r *Repo) examplePrefix() string {
	return r.keyPrefix + "example:"
}

// exampleKey derives the storage key from the example text, so re-seeding
// the same content overwrites instead of duplicating.
func (r *Repo) exampleKey(content string) string {
	h := sha256.Sum256([]byte(content))
	return r.examplePrefix() + hex.EncodeToString(h[:])
}

// EnsureIndex creates the HNSW example index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context, dim int) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     r.indexName(),
		Prefixes: []string{r.examplePrefix()},
		Fields: []db.IndexField{
			{Name: "template_id", Type: db.IndexFieldNumeric},
			{Name: "content", Type: db.IndexFieldText},
			{
				Name:              "vector",
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         dim,
				VectorDistance:    db.DistanceCosine,
				VectorM:           r.hnsw.M,
				VectorEFConstruct: r.hnsw.EFConstruct,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create example index: %w", err)
	}
	return nil
}

// Upsert writes an example keyed by its content hash.
func (r *Repo) Upsert(ctx context.Context, ex domain.Example) error {
	fields := map[string]string{
		"template_id": strconv.Itoa(ex.TemplateID),
		"content":     ex.Content,
		"vector":      string(db.VectorToBytes(ex.Vector)),
	}

	if err := r.store.HSet(ctx, r.exampleKey(ex.Content), fields); err != nil {
		return fmt.Errorf("upsert example: %w", err)
	}
	return nil
}

// MatchTemplates returns stored examples whose cosine similarity to the
// query vector exceeds threshold, ordered by similarity descending with
// ties broken by lowest template id, truncated to limit.
func (r *Repo) MatchTemplates(
	ctx context.Context, vector []float32, threshold float64, limit int,
) ([]domain.ExampleMatch, error) {
	q := &db.KNNQuery{
		IndexName:    r.indexName(),
		Vector:       vector,
		K:            limit,
		ReturnFields: []string{"template_id", "content"},
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("match templates: %w", err)
	}

	matches := make([]domain.ExampleMatch, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if entry.Score <= threshold {
			continue
		}
		templateID, err := strconv.Atoi(entry.Fields["template_id"])
		if err != nil {
			continue
		}
		matches = append(matches, domain.ExampleMatch{
			TemplateID: templateID,
			Similarity: entry.Score,
			Content:    entry.Fields["content"],
		})
	}

	// Deterministic candidate ordering: highest similarity wins, equal
	// scores go to the lower template id.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].TemplateID < matches[j].TemplateID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}
