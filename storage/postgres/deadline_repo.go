package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clariohq/clario-backend/types"
)

// DeadlineRepo wraps all queries against the deadlines table.
type DeadlineRepo struct {
	db *gorm.DB
}

func NewDeadlineRepo(db *gorm.DB) *DeadlineRepo {
	return &DeadlineRepo{db: db}
}

func (r *DeadlineRepo) Create(ctx context.Context, d *Deadline) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// GetByID fetches a deadline scoped to its owner. A record owned by
// another user comes back as ErrNotFound.
func (r *DeadlineRepo) GetByID(ctx context.Context, id, userID string) (*Deadline, error) {
	var d Deadline
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DeadlineRepo) Save(ctx context.Context, d *Deadline) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DeadlineRepo) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Deadline{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List applies the allow-listed equality filters and offset pagination,
// sorted by due date ascending.
func (r *DeadlineRepo) List(ctx context.Context, userID string, filter types.DeadlineFilter, page types.PageParams) ([]Deadline, int64, error) {
	tx := r.db.WithContext(ctx).Model(&Deadline{}).Where("user_id = ?", userID)

	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Deadline
	err := tx.Order("due_date ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error
	return items, total, err
}

// Upcoming returns the next deadlines still in flight.
func (r *DeadlineRepo) Upcoming(ctx context.Context, userID string, limit int) ([]Deadline, error) {
	var items []Deadline
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{types.DeadlineUpcoming, types.DeadlineInProgress}).
		Order("due_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// Overdue returns all deadlines currently stored as overdue.
func (r *DeadlineRepo) Overdue(ctx context.Context, userID string) ([]Deadline, error) {
	var items []Deadline
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, types.DeadlineOverdue).
		Order("due_date ASC").
		Find(&items).Error
	return items, err
}

func (r *DeadlineRepo) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Deadline{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *DeadlineRepo) CountByStatus(ctx context.Context, userID string, statuses ...string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Deadline{}).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Count(&n).Error
	return n, err
}

func (r *DeadlineRepo) CountByPriority(ctx context.Context, userID string, priorities ...string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Deadline{}).
		Where("user_id = ? AND priority IN ?", userID, priorities).
		Count(&n).Error
	return n, err
}

// MarkOverdue is the batch recompute: every non-terminal deadline whose
// due date has passed is flipped to overdue. Run by the nightly job and
// by the dashboard health-check path. Idempotent.
func (r *DeadlineRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Deadline{}).
		Where("status NOT IN ? AND due_date < ?",
			[]string{types.DeadlineCompleted, types.DeadlineCancelled, types.DeadlineOverdue}, now).
		Update("status", types.DeadlineOverdue)
	return result.RowsAffected, result.Error
}

// MarkOverdueForUser is the per-user variant used on the health-check
// read path so counts reflect wall-clock truth.
func (r *DeadlineRepo) MarkOverdueForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Deadline{}).
		Where("user_id = ? AND status NOT IN ? AND due_date < ?",
			userID, []string{types.DeadlineCompleted, types.DeadlineCancelled, types.DeadlineOverdue}, now).
		Update("status", types.DeadlineOverdue)
	return result.RowsAffected, result.Error
}
