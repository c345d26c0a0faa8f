// Package es keeps the glossary searchable with BM25 relevance ranking.
// It is optional: when no ES address is configured the glossary falls
// back to SQL substring matching.
package es

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/storage/postgres"
)

// TermIndex wraps the legal-terms Elasticsearch index.
type TermIndex struct {
	client *elasticsearch.Client
	index  string
}

// NewTermIndex connects the client and ensures the index exists.
func NewTermIndex(addresses []string, indexName string) (*TermIndex, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("error creating the client: %w", err)
	}

	idx := &TermIndex{client: client, index: indexName}
	if err := idx.initMapping(context.Background()); err != nil {
		return nil, err
	}
	return idx, nil
}

func (t *TermIndex) initMapping(ctx context.Context) error {
	res, err := t.client.Indices.Exists([]string{t.index})
	if err != nil {
		return err
	}
	if res.StatusCode == 200 {
		return nil
	}

	mapping := `
	{
	  "settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	  },
	  "mappings": {
		"properties": {
		  "term_id":      { "type": "keyword" },
		  "term":         { "type": "text", "fields": { "keyword": { "type": "keyword" } } },
		  "display_term": { "type": "text" },
		  "definition":   { "type": "text" },
		  "synonyms":     { "type": "text" },
		  "category":     { "type": "keyword" },
		  "complexity":   { "type": "keyword" }
		}
	  }
	}`

	log.Info().Str("index", t.index).Msg("creating legal terms index")
	res, err = t.client.Indices.Create(
		t.index,
		t.client.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return fmt.Errorf("create index error: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("create index response error: %s", res.String())
	}
	return nil
}

// Index writes or refreshes one term document. Inactive terms are
// removed instead so they disappear from search like every other path.
func (t *TermIndex) Index(ctx context.Context, term *postgres.LegalTerm) error {
	if !term.IsActive {
		return t.Delete(ctx, term.ID)
	}

	doc := map[string]interface{}{
		"term_id":      term.ID,
		"term":         term.Term,
		"display_term": term.DisplayTerm,
		"definition":   term.Definition,
		"synonyms":     []string(term.Synonyms),
		"category":     term.Category,
		"complexity":   term.Complexity,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := t.client.Index(
		t.index,
		strings.NewReader(string(data)),
		t.client.Index.WithDocumentID(term.ID),
		t.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index term: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index term response error: %s", res.String())
	}
	return nil
}

func (t *TermIndex) Delete(ctx context.Context, termID string) error {
	res, err := t.client.Delete(
		t.index, termID,
		t.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete term: %w", err)
	}
	defer res.Body.Close()
	// 404 just means the term was never indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete term response error: %s", res.String())
	}
	return nil
}

// Search runs a relevance-ranked multi-field match with optional
// category/complexity filters, returning ordered term ids and the total
// hit count.
func (t *TermIndex) Search(ctx context.Context, query, category, complexity string, from, size int) ([]string, int64, error) {
	esQuery := buildTermQuery(query, category, complexity, from, size)

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(esQuery); err != nil {
		return nil, 0, fmt.Errorf("error encoding query: %w", err)
	}

	res, err := t.client.Search(
		t.client.Search.WithContext(ctx),
		t.client.Search.WithIndex(t.index),
		t.client.Search.WithBody(strings.NewReader(buf.String())),
		t.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ES search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, 0, fmt.Errorf("ES search response error: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					TermID string `json:"term_id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, 0, fmt.Errorf("decode ES response: %w", err)
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		if hit.Source.TermID != "" {
			ids = append(ids, hit.Source.TermID)
		}
	}
	return ids, parsed.Hits.Total.Value, nil
}

func buildTermQuery(query, category, complexity string, from, size int) map[string]interface{} {
	must := []map[string]interface{}{
		{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"term^3", "display_term^2", "definition", "synonyms"},
			},
		},
	}

	var filters []map[string]interface{}
	if category != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"category": category},
		})
	}
	if complexity != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"complexity": complexity},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filters,
			},
		},
		"from": from,
		"size": size,
	}
}
