package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

// DeadlineView is a deadline plus its derived daysRemaining, computed
// on read and never stored.
type DeadlineView struct {
	*postgres.Deadline
	DaysRemaining int `json:"daysRemaining"`
}

func deadlineView(d *postgres.Deadline, now time.Time) DeadlineView {
	return DeadlineView{Deadline: d, DaysRemaining: d.DaysRemaining(now)}
}

func deadlineViews(items []postgres.Deadline, now time.Time) []DeadlineView {
	views := make([]DeadlineView, len(items))
	for i := range items {
		views[i] = deadlineView(&items[i], now)
	}
	return views
}

// DeadlineService owns deadline CRUD and the explicit status recompute.
type DeadlineService struct {
	repo *postgres.DeadlineRepo
}

func NewDeadlineService(repo *postgres.DeadlineRepo) *DeadlineService {
	return &DeadlineService{repo: repo}
}

func (s *DeadlineService) List(ctx context.Context, userID string, filter types.DeadlineFilter, page types.PageParams) ([]DeadlineView, types.Pagination, error) {
	items, total, err := s.repo.List(ctx, userID, filter, page)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	return deadlineViews(items, time.Now()), page.Paginate(total), nil
}

func (s *DeadlineService) Get(ctx context.Context, id, userID string) (*DeadlineView, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	v := deadlineView(d, time.Now())
	return &v, nil
}

func (s *DeadlineService) Create(ctx context.Context, userID string, req types.CreateDeadlineRequest) (*DeadlineView, error) {
	d := &postgres.Deadline{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      types.DeadlineUpcoming,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
		Tags:        req.Tags,
		IsRecurring: req.IsRecurring,
	}
	if d.Priority == "" {
		d.Priority = types.PriorityMedium
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.EstimatedHours = req.EstimatedHours
	if req.Cost != nil {
		cost := datatypes.NewJSONType(*req.Cost)
		d.Cost = &cost
	}
	if req.RecurringPattern != nil {
		pattern := datatypes.NewJSONType(*req.RecurringPattern)
		d.RecurringPattern = &pattern
	}
	if req.Reminders != nil {
		d.ReminderSettings = datatypes.NewJSONType(*req.Reminders)
	} else {
		d.ReminderSettings = datatypes.NewJSONType(types.ReminderSettings{
			Enabled:       true,
			EmailReminder: true,
			PushReminder:  true,
		})
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	v := deadlineView(d, time.Now())
	return &v, nil
}

// Update applies a partial update: only fields present in the request
// mutate the record. A note is appended to the existing list, never
// replacing it.
func (s *DeadlineService) Update(ctx context.Context, id, userID, author string, req types.UpdateDeadlineRequest) (*DeadlineView, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.DueDate != nil {
		d.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		d.Priority = *req.Priority
	}
	if req.Status != nil {
		d.Status = *req.Status
		if d.Status == types.DeadlineCompleted && d.CompletionDate == nil {
			now := time.Now()
			d.CompletionDate = &now
		}
	}
	if req.Category != nil {
		d.Category = *req.Category
	}
	if req.AssignedTo != nil {
		d.AssignedTo = *req.AssignedTo
	}
	if req.Tags != nil {
		d.Tags = req.Tags
	}
	if req.EstimatedHours != nil {
		d.EstimatedHours = req.EstimatedHours
	}
	if req.ActualHours != nil {
		d.ActualHours = req.ActualHours
	}
	if req.Cost != nil {
		cost := datatypes.NewJSONType(*req.Cost)
		d.Cost = &cost
	}
	if req.Notes != nil && *req.Notes != "" {
		d.Notes = append(d.Notes, types.Note{
			Content:   *req.Notes,
			Timestamp: time.Now(),
			Author:    author,
		})
	}

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	v := deadlineView(d, time.Now())
	return &v, nil
}

func (s *DeadlineService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *DeadlineService) Upcoming(ctx context.Context, userID string, limit int) ([]DeadlineView, error) {
	items, err := s.repo.Upcoming(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return deadlineViews(items, time.Now()), nil
}

func (s *DeadlineService) Overdue(ctx context.Context, userID string) ([]DeadlineView, error) {
	items, err := s.repo.Overdue(ctx, userID)
	if err != nil {
		return nil, err
	}
	return deadlineViews(items, time.Now()), nil
}
