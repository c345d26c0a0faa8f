package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskScore(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   int
	}{
		{"healthy account", Counts{Deadlines: 5, Documents: 3}, 100},
		{"one overdue", Counts{Overdue: 1, Deadlines: 5, Documents: 3}, 80},
		{"two overdue two high priority", Counts{Overdue: 2, HighPriority: 2, Deadlines: 6, Documents: 3}, 40},
		{"empty account", Counts{}, 50},
		{"no documents only", Counts{Deadlines: 2, Documents: 0}, 80},
		{"clamped at zero", Counts{Overdue: 10, HighPriority: 10, Deadlines: 20, Documents: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskScore(tt.counts))
		})
	}
}

func TestRiskScoreMonotonic(t *testing.T) {
	base := Counts{Deadlines: 10, Documents: 5}
	prev := RiskScore(base)
	for overdue := int64(1); overdue <= 6; overdue++ {
		c := base
		c.Overdue = overdue
		score := RiskScore(c)
		assert.LessOrEqual(t, score, prev, "more overdue must never raise the score")
		prev = score
	}
}

func TestRecommendationsOrder(t *testing.T) {
	recs := Recommendations(Counts{Overdue: 2, HighPriority: 1, Deadlines: 3})
	// overdue, high-priority, no-documents fire here, in that order
	// (deadlines are tracked so no-deadlines does not).
	assert.Len(t, recs, 3)
	assert.Equal(t, "urgent", recs[0].Type)
	assert.Equal(t, "Address Overdue Deadlines", recs[0].Title)
	assert.Contains(t, recs[0].Description, "2 overdue deadline(s)")
	assert.Equal(t, "high", recs[1].Type)
	assert.Equal(t, "medium", recs[2].Type)
	assert.Equal(t, "Upload Legal Documents", recs[2].Title)
}

func TestRecommendationsEmptyAccount(t *testing.T) {
	recs := Recommendations(Counts{})
	assert.Len(t, recs, 2)
	assert.Equal(t, "Start Tracking Deadlines", recs[0].Title)
	assert.Equal(t, "Upload Legal Documents", recs[1].Title)
}

func TestRecommendationsAllClear(t *testing.T) {
	recs := Recommendations(Counts{Deadlines: 3, Documents: 2})
	assert.Len(t, recs, 1)
	assert.Equal(t, "success", recs[0].Type)
	assert.Equal(t, "Excellent Legal Health", recs[0].Title)
	assert.Equal(t, "Your legal compliance is in good standing!", recs[0].Description)
}

func TestComplianceScore(t *testing.T) {
	assert.Equal(t, 100, ComplianceScore(0, 0))
	assert.Equal(t, 50, ComplianceScore(1, 2))
	assert.Equal(t, 33, ComplianceScore(1, 3))
	assert.Equal(t, 67, ComplianceScore(2, 3))
	assert.Equal(t, 0, ComplianceScore(0, 4))
	assert.Equal(t, 100, ComplianceScore(5, 5))
}
