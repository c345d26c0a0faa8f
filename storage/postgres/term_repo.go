package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clariohq/clario-backend/types"
)

// TermRepo wraps all queries against the legal_terms table. Every query
// path excludes soft-deleted (is_active = false) terms.
type TermRepo struct {
	db *gorm.DB
}

func NewTermRepo(db *gorm.DB) *TermRepo {
	return &TermRepo{db: db}
}

// Upsert inserts a term or refreshes an existing one keyed on the
// canonical lowercase term. Used by the seeding flow.
func (r *TermRepo) Upsert(ctx context.Context, t *LegalTerm) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "term"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_term", "definition", "category", "complexity",
			"examples", "synonyms", "antonyms", "usage",
			"legal_references", "translations", "is_active", "updated_at",
		}),
	}).Create(t).Error
}

func (r *TermRepo) GetByID(ctx context.Context, id string) (*LegalTerm, error) {
	var t LegalTerm
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&t).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TermRepo) GetByTerm(ctx context.Context, term string) (*LegalTerm, error) {
	var t LegalTerm
	err := r.db.WithContext(ctx).
		Where("term = ? AND is_active = ?", term, true).
		First(&t).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// GetByIDs resolves related-term references. Missing or inactive ids
// are silently dropped.
func (r *TermRepo) GetByIDs(ctx context.Context, ids []string) ([]LegalTerm, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []LegalTerm
	err := r.db.WithContext(ctx).
		Select("id", "display_term", "definition", "category", "complexity").
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&items).Error
	return items, err
}

// AllByIDs fetches full rows for a set of ids, active only, in
// arbitrary order.
func (r *TermRepo) AllByIDs(ctx context.Context, ids []string) ([]LegalTerm, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []LegalTerm
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&items).Error
	return items, err
}

// List filters by category and complexity with one of the fixed sort
// orders. A search string switches to substring matching over term,
// display term and definition, ranked by match position in the term;
// search and secondary sort are mutually exclusive per request.
func (r *TermRepo) List(ctx context.Context, filter types.TermFilter, page types.PageParams) ([]LegalTerm, int64, error) {
	tx := r.db.WithContext(ctx).Model(&LegalTerm{}).Where("is_active = ?", true)

	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Complexity != "" {
		tx = tx.Where("complexity = ?", filter.Complexity)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("term ILIKE ? OR display_term ILIKE ? OR definition ILIKE ? OR EXISTS (SELECT 1 FROM unnest(synonyms) AS s WHERE s ILIKE ?)",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Search != "" {
		// Cheap relevance: exact-prefix matches on the canonical term
		// first, then alphabetical.
		tx = tx.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "(term ILIKE ?) DESC, display_term ASC",
			Vars:               []interface{}{filter.Search + "%"},
			WithoutParentheses: true,
		}})
	} else {
		switch filter.Sort {
		case "category":
			tx = tx.Order("category ASC, display_term ASC")
		case "complexity":
			tx = tx.Order("CASE complexity WHEN 'basic' THEN 1 WHEN 'intermediate' THEN 2 WHEN 'advanced' THEN 3 ELSE 0 END ASC, display_term ASC")
		default: // alphabetical
			tx = tx.Order("display_term ASC")
		}
	}

	var items []LegalTerm
	err := tx.Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error
	return items, total, err
}

// Lookup is the /glossary/search/:term path: case-insensitive substring
// match against term, display term or any synonym, capped at 10 rows.
func (r *TermRepo) Lookup(ctx context.Context, q string) ([]LegalTerm, error) {
	pattern := "%" + q + "%"
	var items []LegalTerm
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("term ILIKE ? OR display_term ILIKE ? OR EXISTS (SELECT 1 FROM unnest(synonyms) AS s WHERE s ILIKE ?)",
			pattern, pattern, pattern).
		Limit(10).
		Find(&items).Error
	return items, err
}

// CategoryCount is one glossary category with its active-term count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func (r *TermRepo) Categories(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).Model(&LegalTerm{}).
		Select("category, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category").
		Order("category ASC").
		Find(&rows).Error
	return rows, err
}

// Random samples active terms for the "term of the day" style endpoint.
func (r *TermRepo) Random(ctx context.Context, count int) ([]LegalTerm, error) {
	var items []LegalTerm
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("random()").
		Limit(count).
		Find(&items).Error
	return items, err
}

// SetRelated overwrites a term's related-term links. Linkage is
// one-directional: A -> B does not imply B -> A.
func (r *TermRepo) SetRelated(ctx context.Context, id string, relatedIDs []string) error {
	return r.db.WithContext(ctx).Model(&LegalTerm{}).
		Where("id = ?", id).
		Update("related_terms", pqArray(relatedIDs)).Error
}

// AllActive streams every active term, used by the seeding second pass.
func (r *TermRepo) AllActive(ctx context.Context) ([]LegalTerm, error) {
	var items []LegalTerm
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
