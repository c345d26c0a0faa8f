// Package milvus assigns related-term relevance: glossary definitions
// are embedded and each term is linked to its nearest neighbours. Used
// only by the seeding flow; the API never talks to Milvus directly.
package milvus

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/storage/postgres"
)

// RelatedIndex wraps the glossary vector collection.
type RelatedIndex struct {
	cli        client.Client
	embedder   embedding.Embedder
	collection string
}

// Connect dials Milvus and probes the embedder once to learn the
// vector dimension lazily on first Rebuild.
func Connect(ctx context.Context, addr, user, password, collection string, embedder embedding.Embedder) (*RelatedIndex, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cli, err := client.NewClient(connectCtx, client.Config{
		Address:  addr,
		Username: user,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("connect milvus: %w", err)
	}
	return &RelatedIndex{cli: cli, embedder: embedder, collection: collection}, nil
}

func (r *RelatedIndex) Close() error {
	return r.cli.Close()
}

// embedText is what similarity operates on: the display term plus its
// definition, so short terms with overlapping definitions still cluster.
func embedText(t *postgres.LegalTerm) string {
	return t.DisplayTerm + ". " + t.Definition
}

// Rebuild drops and recreates the collection from the given terms.
func (r *RelatedIndex) Rebuild(ctx context.Context, terms []postgres.LegalTerm) error {
	if len(terms) == 0 {
		return nil
	}

	texts := make([]string, len(terms))
	for i := range terms {
		texts[i] = embedText(&terms[i])
	}
	vectors, err := r.embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed terms: %w", err)
	}
	dim := len(vectors[0])

	has, err := r.cli.HasCollection(ctx, r.collection)
	if err != nil {
		return err
	}
	if has {
		_ = r.cli.ReleaseCollection(ctx, r.collection)
		if err := r.cli.DropCollection(ctx, r.collection); err != nil {
			return fmt.Errorf("drop collection: %w", err)
		}
	}

	schema := &entity.Schema{
		CollectionName: r.collection,
		Fields: []*entity.Field{
			{
				Name:       "term_id",
				DataType:   entity.FieldTypeVarChar,
				PrimaryKey: true,
				AutoID:     false,
				TypeParams: map[string]string{"max_length": "64"},
			},
			{
				Name:       "vector",
				DataType:   entity.FieldTypeFloatVector,
				TypeParams: map[string]string{"dim": fmt.Sprintf("%d", dim)},
			},
		},
	}
	if err := r.cli.CreateCollection(ctx, schema, 1); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	ids := make([]string, len(terms))
	vecs := make([][]float32, len(terms))
	for i := range terms {
		ids[i] = terms[i].ID
		vec32 := make([]float32, dim)
		for j, v := range vectors[i] {
			vec32[j] = float32(v)
		}
		vecs[i] = vec32
	}

	_, err = r.cli.Insert(ctx, r.collection, "",
		entity.NewColumnVarChar("term_id", ids),
		entity.NewColumnFloatVector("vector", dim, vecs),
	)
	if err != nil {
		return fmt.Errorf("insert vectors: %w", err)
	}

	hnsw, err := entity.NewIndexHNSW(entity.L2, 16, 200)
	if err != nil {
		return err
	}
	if err := r.cli.CreateIndex(ctx, r.collection, "vector", hnsw, false); err != nil {
		return fmt.Errorf("create vector index: %w", err)
	}
	if err := r.cli.LoadCollection(ctx, r.collection, false); err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	log.Info().Int("terms", len(terms)).Int("dim", dim).Msg("related-term index rebuilt")
	return nil
}

// Similar returns the topK nearest term ids for one term, excluding the
// term itself.
func (r *RelatedIndex) Similar(ctx context.Context, term *postgres.LegalTerm, topK int) ([]string, error) {
	vectors, err := r.embedder.EmbedStrings(ctx, []string{embedText(term)})
	if err != nil {
		return nil, fmt.Errorf("embed query term: %w", err)
	}
	vec32 := make([]float32, len(vectors[0]))
	for i, v := range vectors[0] {
		vec32[i] = float32(v)
	}

	sp, err := entity.NewIndexHNSWSearchParam(64)
	if err != nil {
		return nil, err
	}
	// topK+1 because the nearest neighbour of a term is itself.
	results, err := r.cli.Search(ctx, r.collection, nil, "",
		[]string{"term_id"},
		[]entity.Vector{entity.FloatVector(vec32)},
		"vector", entity.L2, topK+1, sp)
	if err != nil {
		return nil, fmt.Errorf("milvus search: %w", err)
	}

	var ids []string
	for _, result := range results {
		for i := 0; i < result.IDs.Len(); i++ {
			id, err := result.IDs.GetAsString(i)
			if err != nil {
				continue
			}
			if id == term.ID {
				continue
			}
			ids = append(ids, id)
			if len(ids) == topK {
				return ids, nil
			}
		}
	}
	return ids, nil
}
