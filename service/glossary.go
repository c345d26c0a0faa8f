package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

// TermSearcher is the relevance-ranked search backend for the glossary.
// Nil when Elasticsearch is not configured; queries then fall back to
// SQL substring matching.
type TermSearcher interface {
	Search(ctx context.Context, query, category, complexity string, from, size int) ([]string, int64, error)
}

// GlossaryService serves the shared, ownerless legal-terms dataset.
type GlossaryService struct {
	repo     *postgres.TermRepo
	searcher TermSearcher
}

func NewGlossaryService(repo *postgres.TermRepo, searcher TermSearcher) *GlossaryService {
	return &GlossaryService{repo: repo, searcher: searcher}
}

// List returns filtered, paginated terms. With a search string and a
// configured searcher, results are relevance-ranked and the requested
// sort is ignored (ranking and secondary sort are mutually exclusive
// per request); without a searcher the SQL fallback still matches
// substrings but ranks only by term-prefix hits.
func (s *GlossaryService) List(ctx context.Context, filter types.TermFilter, page types.PageParams) ([]postgres.LegalTerm, types.Pagination, error) {
	if filter.Search != "" && s.searcher != nil {
		ids, total, err := s.searcher.Search(ctx, filter.Search, filter.Category, filter.Complexity, page.Offset(), page.Limit)
		if err != nil {
			// A down search backend should not take the glossary with
			// it; degrade to the SQL path.
			log.Warn().Err(err).Msg("term search backend failed, falling back to SQL")
			return s.listSQL(ctx, filter, page)
		}
		terms, err := s.termsInOrder(ctx, ids)
		if err != nil {
			return nil, types.Pagination{}, err
		}
		return terms, page.Paginate(total), nil
	}
	return s.listSQL(ctx, filter, page)
}

func (s *GlossaryService) listSQL(ctx context.Context, filter types.TermFilter, page types.PageParams) ([]postgres.LegalTerm, types.Pagination, error) {
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	return items, page.Paginate(total), nil
}

// termsInOrder resolves ids to full rows preserving relevance order.
func (s *GlossaryService) termsInOrder(ctx context.Context, ids []string) ([]postgres.LegalTerm, error) {
	rows, err := s.repo.AllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]postgres.LegalTerm, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]postgres.LegalTerm, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

// TermDetail is a term plus its resolved related terms.
type TermDetail struct {
	Term         *postgres.LegalTerm  `json:"term"`
	RelatedTerms []postgres.LegalTerm `json:"relatedTerms"`
}

func (s *GlossaryService) Get(ctx context.Context, id string) (*TermDetail, error) {
	term, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.repo.GetByIDs(ctx, term.RelatedTerms)
	if err != nil {
		return nil, err
	}
	return &TermDetail{Term: term, RelatedTerms: related}, nil
}

func (s *GlossaryService) Lookup(ctx context.Context, q string) ([]postgres.LegalTerm, error) {
	return s.repo.Lookup(ctx, q)
}

func (s *GlossaryService) Categories(ctx context.Context) ([]postgres.CategoryCount, error) {
	return s.repo.Categories(ctx)
}

func (s *GlossaryService) Random(ctx context.Context, count int) ([]postgres.LegalTerm, error) {
	if count < 1 {
		count = 5
	}
	if count > 50 {
		count = 50
	}
	return s.repo.Random(ctx, count)
}
