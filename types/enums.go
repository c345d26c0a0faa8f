package types

// Deadline priority levels.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Deadline lifecycle statuses. Completed and cancelled are terminal:
// no automatic transition may overwrite them.
const (
	DeadlineUpcoming   = "upcoming"
	DeadlineInProgress = "in-progress"
	DeadlineCompleted  = "completed"
	DeadlineOverdue    = "overdue"
	DeadlineCancelled  = "cancelled"
)

// Document workflow statuses, set by explicit actions only.
const (
	DocumentDraft    = "draft"
	DocumentAnalyzed = "analyzed"
	DocumentReviewed = "reviewed"
	DocumentApproved = "approved"
)

var (
	deadlinePriorities = map[string]bool{
		PriorityLow: true, PriorityMedium: true, PriorityHigh: true, PriorityCritical: true,
	}
	deadlineStatuses = map[string]bool{
		DeadlineUpcoming: true, DeadlineInProgress: true, DeadlineCompleted: true,
		DeadlineOverdue: true, DeadlineCancelled: true,
	}
	deadlineCategories = map[string]bool{
		"tax-compliance": true, "intellectual-property": true, "corporate-governance": true,
		"hr-compliance": true, "data-compliance": true, "insurance": true,
		"it-compliance": true, "vendor-management": true, "other": true,
	}
	documentTypes = map[string]bool{
		"contract": true, "nda": true, "employment": true, "privacy": true,
		"terms": true, "partnership": true, "lease": true, "other": true,
	}
	documentStatuses = map[string]bool{
		DocumentDraft: true, DocumentAnalyzed: true, DocumentReviewed: true, DocumentApproved: true,
	}
	termCategories = map[string]bool{
		"contract": true, "liability": true, "intellectual-property": true,
		"employment": true, "corporate": true, "litigation": true, "general": true,
	}
	termComplexities = map[string]bool{
		"basic": true, "intermediate": true, "advanced": true,
	}
	termFrequencies = map[string]bool{
		"common": true, "uncommon": true, "rare": true,
	}
	recurrenceFrequencies = map[string]bool{
		"daily": true, "weekly": true, "monthly": true, "quarterly": true, "annually": true,
	}
	glossarySorts = map[string]bool{
		"alphabetical": true, "category": true, "complexity": true,
	}
)

func ValidPriority(s string) bool            { return deadlinePriorities[s] }
func ValidDeadlineStatus(s string) bool      { return deadlineStatuses[s] }
func ValidDeadlineCategory(s string) bool    { return deadlineCategories[s] }
func ValidDocumentType(s string) bool        { return documentTypes[s] }
func ValidDocumentStatus(s string) bool      { return documentStatuses[s] }
func ValidTermCategory(s string) bool        { return termCategories[s] }
func ValidTermComplexity(s string) bool      { return termComplexities[s] }
func ValidTermFrequency(s string) bool       { return termFrequencies[s] }
func ValidRecurrenceFrequency(s string) bool { return recurrenceFrequencies[s] }
func ValidGlossarySort(s string) bool        { return glossarySorts[s] }

// IsTerminalDeadlineStatus reports whether a status disables further
// automatic transitions.
func IsTerminalDeadlineStatus(s string) bool {
	return s == DeadlineCompleted || s == DeadlineCancelled
}

// IsHighPriority reports whether a priority counts against the legal
// health risk score.
func IsHighPriority(s string) bool {
	return s == PriorityHigh || s == PriorityCritical
}

// ComplexityRank fixes the ordering basic < intermediate < advanced for
// the glossary complexity sort. Unknown values sort first.
func ComplexityRank(s string) int {
	switch s {
	case "basic":
		return 1
	case "intermediate":
		return 2
	case "advanced":
		return 3
	default:
		return 0
	}
}
