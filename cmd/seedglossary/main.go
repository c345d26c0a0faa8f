// Command seedglossary loads a legal-terms JSON dataset into Postgres,
// mirrors it into Elasticsearch when configured, and links related
// terms, by embedding similarity when Milvus is available and by
// category otherwise.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	einoollama "github.com/cloudwego/eino-ext/components/embedding/ollama"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/clariohq/clario-backend/config"
	"github.com/clariohq/clario-backend/pkg/logger"
	"github.com/clariohq/clario-backend/storage/es"
	"github.com/clariohq/clario-backend/storage/milvus"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

// seedTerm is the shape of one entry in the seed file.
type seedTerm struct {
	Term            string                 `json:"term"`
	Definition      string                 `json:"definition"`
	Category        string                 `json:"category"`
	Complexity      string                 `json:"complexity"`
	Examples        []string               `json:"examples"`
	Synonyms        []string               `json:"synonyms"`
	Antonyms        []string               `json:"antonyms"`
	Usage           *types.TermUsage       `json:"usage"`
	LegalReferences []types.LegalReference `json:"legalReferences"`
	Translations    []types.Translation    `json:"translations"`
}

func main() {
	var (
		file  = flag.String("file", "data/legal_terms.json", "path to the seed JSON file")
		reset = flag.Bool("relink", true, "recompute related-term links after seeding")
	)
	flag.Parse()

	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	if err := run(cfg, *file, *reset); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func run(cfg *config.Config, file string, relink bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seeds []seedTerm
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	db, err := postgres.InitDB(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	repo := postgres.NewTermRepo(db)

	var termIndex *es.TermIndex
	if cfg.ESEnabled() {
		termIndex, err = es.NewTermIndex([]string{cfg.ESAddr}, cfg.TermIndex)
		if err != nil {
			return fmt.Errorf("init term index: %w", err)
		}
	}

	for _, seed := range seeds {
		key := strings.ToLower(strings.TrimSpace(seed.Term))
		if key == "" || seed.Definition == "" {
			log.Warn().Str("term", seed.Term).Msg("skipping incomplete seed entry")
			continue
		}

		row := &postgres.LegalTerm{
			// Deterministic id so reseeding never duplicates.
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte("legal-term:"+key)).String(),
			Term:        key,
			DisplayTerm: strings.TrimSpace(seed.Term),
			Definition:  seed.Definition,
			Category:    seed.Category,
			Complexity:  seed.Complexity,
			Examples:    seed.Examples,
			Synonyms:    seed.Synonyms,
			Antonyms:    seed.Antonyms,
			IsActive:    true,
		}
		if row.Category == "" {
			row.Category = "general"
		}
		if row.Complexity == "" {
			row.Complexity = "basic"
		}
		if seed.Usage != nil {
			if seed.Usage.Frequency != "" && !types.ValidTermFrequency(seed.Usage.Frequency) {
				log.Warn().Str("term", key).Str("frequency", seed.Usage.Frequency).Msg("dropping invalid usage frequency")
				seed.Usage.Frequency = ""
			}
			row.Usage = datatypes.NewJSONType(*seed.Usage)
		}
		if seed.LegalReferences != nil {
			row.LegalReferences = datatypes.NewJSONSlice(seed.LegalReferences)
		}
		if seed.Translations != nil {
			row.Translations = datatypes.NewJSONSlice(seed.Translations)
		}

		if err := repo.Upsert(ctx, row); err != nil {
			return fmt.Errorf("upsert %q: %w", key, err)
		}
	}
	log.Info().Int("terms", len(seeds)).Msg("terms upserted")

	all, err := repo.AllActive(ctx)
	if err != nil {
		return err
	}

	if termIndex != nil {
		for i := range all {
			if err := termIndex.Index(ctx, &all[i]); err != nil {
				return fmt.Errorf("index %q: %w", all[i].Term, err)
			}
		}
		log.Info().Int("terms", len(all)).Msg("search index refreshed")
	}

	if !relink {
		return nil
	}
	if cfg.MilvusEnabled() {
		return linkByEmbedding(ctx, cfg, repo, all)
	}
	return linkAdjacent(ctx, cfg, repo, all)
}

// linkByEmbedding rebuilds the vector collection and stores each term's
// nearest neighbors as its related terms.
func linkByEmbedding(ctx context.Context, cfg *config.Config, repo *postgres.TermRepo, all []postgres.LegalTerm) error {
	embedder, err := einoollama.NewEmbedder(ctx, &einoollama.EmbeddingConfig{
		BaseURL: cfg.OllamaBaseURL,
		Model:   cfg.EmbedModel,
		Timeout: 60 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init embedder: %w", err)
	}

	index, err := milvus.Connect(ctx, cfg.MilvusAddr, cfg.MilvusUser, cfg.MilvusPassword, cfg.TermCollection, embedder)
	if err != nil {
		return fmt.Errorf("connect milvus: %w", err)
	}
	defer index.Close()

	if err := index.Rebuild(ctx, all); err != nil {
		return fmt.Errorf("rebuild vector collection: %w", err)
	}

	for i := range all {
		related, err := index.Similar(ctx, &all[i], cfg.RelatedTermSize)
		if err != nil {
			return fmt.Errorf("similar terms for %q: %w", all[i].Term, err)
		}
		if err := repo.SetRelated(ctx, all[i].ID, related); err != nil {
			return err
		}
	}
	log.Info().Int("terms", len(all)).Msg("related terms linked by embedding")
	return nil
}

// linkAdjacent is the fallback when no vector backend is configured:
// each term is linked to the next few terms in seed order. The relation
// is one-directional, A -> B does not imply B -> A.
func linkAdjacent(ctx context.Context, cfg *config.Config, repo *postgres.TermRepo, all []postgres.LegalTerm) error {
	for i := range all {
		related := make([]string, 0, cfg.RelatedTermSize)
		for j := i + 1; j < len(all) && len(related) < cfg.RelatedTermSize; j++ {
			related = append(related, all[j].ID)
		}
		if err := repo.SetRelated(ctx, all[i].ID, related); err != nil {
			return err
		}
	}
	log.Info().Int("terms", len(all)).Msg("related terms linked by seed order")
	return nil
}
