// Package health derives the legal-health risk score and its advisory
// recommendations from deadline/document counts. Everything here is a
// pure function over counts; the constants are business rules carried
// over verbatim, not a model to tune.
package health

import "fmt"

// Counts is the aggregate input to the derivations.
type Counts struct {
	Overdue      int64
	HighPriority int64
	Deadlines    int64
	Documents    int64
}

// Recommendation is one advisory item in the health checkup.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RiskScore starts at 100 and subtracts 20 per overdue deadline, 10 per
// high/critical-priority deadline, 30 flat when no deadlines are
// tracked and 20 flat when no documents exist, clamped to [0, 100].
func RiskScore(c Counts) int {
	score := int64(100)

	score -= c.Overdue * 20
	score -= c.HighPriority * 10
	if c.Deadlines == 0 {
		score -= 30
	}
	if c.Documents == 0 {
		score -= 20
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

// Recommendations emits advisories in fixed check order: overdue,
// high-priority, no-deadlines, no-documents. When nothing fires, a
// single all-clear item is returned.
func Recommendations(c Counts) []Recommendation {
	var recs []Recommendation

	if c.Overdue > 0 {
		recs = append(recs, Recommendation{
			Type:        "urgent",
			Title:       "Address Overdue Deadlines",
			Description: fmt.Sprintf("You have %d overdue deadline(s) that require immediate attention.", c.Overdue),
		})
	}
	if c.HighPriority > 0 {
		recs = append(recs, Recommendation{
			Type:        "high",
			Title:       "High Priority Deadlines",
			Description: fmt.Sprintf("You have %d high-priority deadline(s) approaching.", c.HighPriority),
		})
	}
	if c.Deadlines == 0 {
		recs = append(recs, Recommendation{
			Type:        "medium",
			Title:       "Start Tracking Deadlines",
			Description: "Begin tracking your legal deadlines to maintain compliance.",
		})
	}
	if c.Documents == 0 {
		recs = append(recs, Recommendation{
			Type:        "medium",
			Title:       "Upload Legal Documents",
			Description: "Upload your legal documents for analysis and management.",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type:        "success",
			Title:       "Excellent Legal Health",
			Description: "Your legal compliance is in good standing!",
		})
	}
	return recs
}

// ComplianceScore is the dashboard stat: percentage of tracked
// deadlines completed, 100 when nothing is tracked.
func ComplianceScore(completed, total int64) int {
	if total == 0 {
		return 100
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
