package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/logic/health"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

// DashboardService aggregates deadline/document counts into the stats
// and legal-health views.
type DashboardService struct {
	deadlines *postgres.DeadlineRepo
	documents *postgres.DocumentRepo
}

func NewDashboardService(deadlines *postgres.DeadlineRepo, documents *postgres.DocumentRepo) *DashboardService {
	return &DashboardService{deadlines: deadlines, documents: documents}
}

// Stats is the GET /dashboard/stats payload.
type Stats struct {
	Documents    int64 `json:"documents"`
	Deadlines    int64 `json:"deadlines"`
	Upcoming     int64 `json:"upcoming"`
	Overdue      int64 `json:"overdue"`
	HighPriority int64 `json:"highPriority"`
	Compliance   int   `json:"compliance"`
}

// DashboardData bundles stats with the recent/upcoming shortlists.
type DashboardData struct {
	Stats             Stats               `json:"stats"`
	RecentDocuments   []postgres.Document `json:"recentDocuments"`
	UpcomingDeadlines []DeadlineView      `json:"upcomingDeadlines"`
}

func (s *DashboardService) Stats(ctx context.Context, userID string) (*DashboardData, error) {
	documentCount, err := s.documents.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalDeadlines, err := s.deadlines.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.deadlines.CountByStatus(ctx, userID, types.DeadlineUpcoming, types.DeadlineInProgress)
	if err != nil {
		return nil, err
	}
	overdue, err := s.deadlines.CountByStatus(ctx, userID, types.DeadlineOverdue)
	if err != nil {
		return nil, err
	}
	highPriority, err := s.deadlines.CountByPriority(ctx, userID, types.PriorityHigh, types.PriorityCritical)
	if err != nil {
		return nil, err
	}
	completed, err := s.deadlines.CountByStatus(ctx, userID, types.DeadlineCompleted)
	if err != nil {
		return nil, err
	}

	recentDocs, err := s.documents.Recent(ctx, userID, 5)
	if err != nil {
		return nil, err
	}
	upcomingList, err := s.deadlines.Upcoming(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Stats: Stats{
			Documents:    documentCount,
			Deadlines:    totalDeadlines,
			Upcoming:     upcoming,
			Overdue:      overdue,
			HighPriority: highPriority,
			Compliance:   health.ComplianceScore(completed, totalDeadlines),
		},
		RecentDocuments:   recentDocs,
		UpcomingDeadlines: deadlineViews(upcomingList, time.Now()),
	}, nil
}

// HealthCheck is the GET /dashboard/health-check payload.
type HealthCheck struct {
	RiskScore       int                     `json:"riskScore"`
	Recommendations []health.Recommendation `json:"recommendations"`
	Summary         HealthSummary           `json:"summary"`
}

type HealthSummary struct {
	OverdueDeadlines      int64 `json:"overdueDeadlines"`
	HighPriorityDeadlines int64 `json:"highPriorityDeadlines"`
	TotalDeadlines        int64 `json:"totalDeadlines"`
	DocumentCount         int64 `json:"documentCount"`
}

// HealthCheck recomputes stored statuses for the user first, so the
// counts reflect wall-clock truth, then derives the risk score and
// recommendations. This is the opt-in recompute path; stored status can
// be stale between invocations.
func (s *DashboardService) HealthCheck(ctx context.Context, userID string) (*HealthCheck, error) {
	if n, err := s.deadlines.MarkOverdueForUser(ctx, userID, time.Now()); err != nil {
		return nil, err
	} else if n > 0 {
		log.Info().Int64("deadlines", n).Str("user", userID).Msg("marked overdue on health check")
	}

	overdue, err := s.deadlines.CountByStatus(ctx, userID, types.DeadlineOverdue)
	if err != nil {
		return nil, err
	}
	highPriority, err := s.deadlines.CountByPriority(ctx, userID, types.PriorityHigh, types.PriorityCritical)
	if err != nil {
		return nil, err
	}
	totalDeadlines, err := s.deadlines.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	documentCount, err := s.documents.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := health.Counts{
		Overdue:      overdue,
		HighPriority: highPriority,
		Deadlines:    totalDeadlines,
		Documents:    documentCount,
	}
	return &HealthCheck{
		RiskScore:       health.RiskScore(counts),
		Recommendations: health.Recommendations(counts),
		Summary: HealthSummary{
			OverdueDeadlines:      overdue,
			HighPriorityDeadlines: highPriority,
			TotalDeadlines:        totalDeadlines,
			DocumentCount:         documentCount,
		},
	}, nil
}
