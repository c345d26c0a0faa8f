package types

import "time"

// Note is a single append-only deadline note.
type Note struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

// Cost tracks the money attached to a compliance obligation.
type Cost struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// RecurringPattern describes how a recurring deadline repeats.
type RecurringPattern struct {
	Frequency string     `json:"frequency"`
	Interval  int        `json:"interval"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ReminderSettings controls notification lead times for a deadline.
type ReminderSettings struct {
	Enabled       bool  `json:"enabled"`
	DaysBefore    []int `json:"daysBefore"`
	EmailReminder bool  `json:"emailReminder"`
	PushReminder  bool  `json:"pushReminder"`
}

// CreateDeadlineRequest is the POST /deadlines payload.
type CreateDeadlineRequest struct {
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description"`
	DueDate          time.Time         `json:"dueDate" binding:"required"`
	Priority         string            `json:"priority"`
	Category         string            `json:"category" binding:"required"`
	AssignedTo       string            `json:"assignedTo"`
	Tags             []string          `json:"tags"`
	EstimatedHours   *float64          `json:"estimatedHours"`
	Cost             *Cost             `json:"cost"`
	Reminders        *ReminderSettings `json:"reminderSettings"`
	IsRecurring      bool              `json:"isRecurring"`
	RecurringPattern *RecurringPattern `json:"recurringPattern"`
}

// UpdateDeadlineRequest carries PATCH-like partial updates: only fields
// present in the request mutate the record. Notes is a single new note
// appended to the existing list, never a replacement.
type UpdateDeadlineRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	DueDate        *time.Time `json:"dueDate"`
	Priority       *string    `json:"priority"`
	Status         *string    `json:"status"`
	Category       *string    `json:"category"`
	AssignedTo     *string    `json:"assignedTo"`
	Tags           []string   `json:"tags"`
	EstimatedHours *float64   `json:"estimatedHours"`
	ActualHours    *float64   `json:"actualHours"`
	Cost           *Cost      `json:"cost"`
	Notes          *string    `json:"notes"`
}

// DeadlineFilter is the allow-listed equality filter set for listing
// deadlines. Empty fields are ignored.
type DeadlineFilter struct {
	Status   string
	Priority string
	Category string
}
