package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clariohq/clario-backend/types"
)

// DocumentRepo wraps all queries against the documents table.
type DocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepo) GetByID(ctx context.Context, id, userID string) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DocumentRepo) Save(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepo) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List filters by type, status and starred flag, with a case-insensitive
// substring search over the title or tag membership. Sorted by
// last-updated descending.
func (r *DocumentRepo) List(ctx context.Context, userID string, filter types.DocumentFilter, page types.PageParams) ([]Document, int64, error) {
	tx := r.db.WithContext(ctx).Model(&Document{}).Where("user_id = ?", userID)

	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Starred != nil {
		tx = tx.Where("is_starred = ?", *filter.Starred)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Document
	err := tx.Order("updated_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error
	return items, total, err
}

func (r *DocumentRepo) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Document{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// Recent returns the newest documents for the dashboard.
func (r *DocumentRepo) Recent(ctx context.Context, userID string, limit int) ([]Document, error) {
	var items []Document
	err := r.db.WithContext(ctx).
		Select("id", "title", "type", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
