package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clariohq/clario-backend/types"
)

var anchor = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDeadlineIsOverdue(t *testing.T) {
	tests := []struct {
		name   string
		due    time.Time
		status string
		want   bool
	}{
		{"past due and open", anchor.Add(-time.Hour), types.DeadlineUpcoming, true},
		{"past due but completed", anchor.Add(-time.Hour), types.DeadlineCompleted, false},
		{"not yet due", anchor.Add(time.Hour), types.DeadlineUpcoming, false},
		{"due exactly now", anchor, types.DeadlineUpcoming, false},
		{"past due and cancelled", anchor.Add(-48 * time.Hour), types.DeadlineCancelled, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deadline{DueDate: tt.due, Status: tt.status}
			assert.Equal(t, tt.want, d.IsOverdue(anchor))
		})
	}
}

func TestDeadlineDaysRemaining(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"exactly 24h out", anchor.Add(24 * time.Hour), 1},
		{"just over 24h rounds up", anchor.Add(25 * time.Hour), 2},
		{"under a day rounds up to 1", anchor.Add(time.Hour), 1},
		{"due now", anchor, 0},
		{"one hour late", anchor.Add(-time.Hour), 0},
		{"two days late", anchor.Add(-48 * time.Hour), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deadline{DueDate: tt.due}
			assert.Equal(t, tt.want, d.DaysRemaining(anchor))
		})
	}
}

func TestRefreshStatus(t *testing.T) {
	t.Run("flips open past-due to overdue", func(t *testing.T) {
		d := Deadline{DueDate: anchor.Add(-time.Hour), Status: types.DeadlineInProgress}
		assert.True(t, d.RefreshStatus(anchor))
		assert.Equal(t, types.DeadlineOverdue, d.Status)
	})

	t.Run("idempotent once overdue", func(t *testing.T) {
		d := Deadline{DueDate: anchor.Add(-time.Hour), Status: types.DeadlineOverdue}
		assert.False(t, d.RefreshStatus(anchor))
		assert.Equal(t, types.DeadlineOverdue, d.Status)
	})

	t.Run("terminal statuses are never touched", func(t *testing.T) {
		for _, status := range []string{types.DeadlineCompleted, types.DeadlineCancelled} {
			d := Deadline{DueDate: anchor.Add(-time.Hour), Status: status}
			assert.False(t, d.RefreshStatus(anchor))
			assert.Equal(t, status, d.Status)
		}
	})

	t.Run("future deadline unchanged", func(t *testing.T) {
		d := Deadline{DueDate: anchor.Add(time.Hour), Status: types.DeadlineUpcoming}
		assert.False(t, d.RefreshStatus(anchor))
		assert.Equal(t, types.DeadlineUpcoming, d.Status)
	})
}
