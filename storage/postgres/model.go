package postgres

import (
	"math"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/clariohq/clario-backend/types"
)

// Deadline is a tracked compliance obligation with a due date and a
// lifecycle status. The stored status is only refreshed by explicit
// recomputation (the nightly sweep or the dashboard health-check path),
// so it can lag behind wall-clock time between recomputes.
type Deadline struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null;index:idx_deadlines_user_due;index:idx_deadlines_user_status;index:idx_deadlines_user_priority;index:idx_deadlines_user_category" json:"userId"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	DueDate     time.Time `gorm:"column:due_date;not null;index:idx_deadlines_user_due" json:"dueDate"`
	Priority    string    `gorm:"column:priority;type:varchar(20);default:medium;index:idx_deadlines_user_priority" json:"priority"`
	Status      string    `gorm:"column:status;type:varchar(20);default:upcoming;index:idx_deadlines_user_status" json:"status"`
	Category    string    `gorm:"column:category;type:varchar(50);not null;index:idx_deadlines_user_category" json:"category"`
	AssignedTo  string    `gorm:"column:assigned_to;type:varchar(255)" json:"assignedTo,omitempty"`

	Tags             pq.StringArray                              `gorm:"column:tags;type:text[]" json:"tags"`
	ReminderSettings datatypes.JSONType[types.ReminderSettings]  `gorm:"column:reminder_settings;type:jsonb" json:"reminderSettings"`
	RelatedDocuments pq.StringArray                              `gorm:"column:related_documents;type:text[]" json:"relatedDocuments,omitempty"`
	Notes            datatypes.JSONSlice[types.Note]             `gorm:"column:notes;type:jsonb" json:"notes"`
	Cost             *datatypes.JSONType[types.Cost]             `gorm:"column:cost;type:jsonb" json:"cost,omitempty"`
	RecurringPattern *datatypes.JSONType[types.RecurringPattern] `gorm:"column:recurring_pattern;type:jsonb" json:"recurringPattern,omitempty"`

	CompletionDate *time.Time `gorm:"column:completion_date" json:"completionDate,omitempty"`
	EstimatedHours *float64   `gorm:"column:estimated_hours" json:"estimatedHours,omitempty"`
	ActualHours    *float64   `gorm:"column:actual_hours" json:"actualHours,omitempty"`
	IsRecurring    bool       `gorm:"column:is_recurring;default:false" json:"isRecurring"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Deadline) TableName() string {
	return "deadlines"
}

// IsOverdue reports whether the deadline is logically overdue at now.
// Pure predicate, no state change.
func (d *Deadline) IsOverdue(now time.Time) bool {
	return now.After(d.DueDate) && d.Status != types.DeadlineCompleted
}

// DaysRemaining counts whole days until the due date, ceiling
// semantics: exactly 24h out is 1, anything past due is <= 0.
func (d *Deadline) DaysRemaining(now time.Time) int {
	return int(math.Ceil(d.DueDate.Sub(now).Hours() / 24))
}

// RefreshStatus sets status to overdue when the deadline has slipped.
// Terminal states (completed, cancelled) are never touched. Idempotent;
// returns true when the status actually changed.
func (d *Deadline) RefreshStatus(now time.Time) bool {
	if types.IsTerminalDeadlineStatus(d.Status) {
		return false
	}
	if d.IsOverdue(now) && d.Status != types.DeadlineOverdue {
		d.Status = types.DeadlineOverdue
		return true
	}
	return false
}

// Document is a stored legal text plus optional AI-derived analysis and
// simplification. Content columns are flattened; the API layer restores
// the nested content shape.
type Document struct {
	ID     string `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;not null;index:idx_documents_user_type;index:idx_documents_user_starred" json:"userId"`
	Title  string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Type   string `gorm:"column:type;type:varchar(20);not null;index:idx_documents_user_type" json:"type"`
	Status string `gorm:"column:status;type:varchar(20);default:draft" json:"status"`

	ContentOriginal   string         `gorm:"column:content_original;type:text;not null" json:"-"`
	ContentSimplified string         `gorm:"column:content_simplified;type:text" json:"-"`
	Analysis          datatypes.JSON `gorm:"column:analysis;type:jsonb" json:"-"`
	// AnalysisKind tags the analysis payload: "clauses", "clause-check"
	// or empty when no analysis is attached.
	AnalysisKind string `gorm:"column:analysis_kind;type:varchar(20)" json:"-"`

	FilePath string `gorm:"column:file_path;type:varchar(512)" json:"-"`
	FileName string `gorm:"column:file_name;type:varchar(255)" json:"fileName,omitempty"`
	FileSize int64  `gorm:"column:file_size" json:"fileSize,omitempty"`
	MimeType string `gorm:"column:mime_type;type:varchar(100)" json:"mimeType,omitempty"`

	Tags      pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	IsStarred bool           `gorm:"column:is_starred;default:false;index:idx_documents_user_starred" json:"isStarred"`
	IsPublic  bool           `gorm:"column:is_public;default:false" json:"isPublic"`

	WordCount       int        `gorm:"column:word_count" json:"-"`
	PageCount       int        `gorm:"column:page_count" json:"-"`
	Language        string     `gorm:"column:language;type:varchar(10);default:en" json:"-"`
	LastAnalyzed    *time.Time `gorm:"column:last_analyzed" json:"-"`
	RiskScore       *float64   `gorm:"column:risk_score" json:"-"`
	ComplexityScore *float64   `gorm:"column:complexity_score" json:"-"`

	Version          int                                        `gorm:"column:version;default:1" json:"version"`
	PreviousVersions datatypes.JSONSlice[types.DocumentVersion] `gorm:"column:previous_versions;type:jsonb" json:"previousVersions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Document) TableName() string {
	return "documents"
}

// LegalTerm is a shared, ownerless glossary entry. Inactive terms are
// soft-deleted: excluded from every query path but never removed.
type LegalTerm struct {
	ID          string `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Term        string `gorm:"column:term;type:varchar(255);uniqueIndex;not null" json:"term"`
	DisplayTerm string `gorm:"column:display_term;type:varchar(255);not null" json:"displayTerm"`
	Definition  string `gorm:"column:definition;type:text;not null" json:"definition"`
	Category    string `gorm:"column:category;type:varchar(50);not null;index" json:"category"`
	Complexity  string `gorm:"column:complexity;type:varchar(20);default:basic;index" json:"complexity"`

	Examples     pq.StringArray `gorm:"column:examples;type:text[]" json:"examples"`
	RelatedTerms pq.StringArray `gorm:"column:related_terms;type:text[]" json:"relatedTerms"`
	Synonyms     pq.StringArray `gorm:"column:synonyms;type:text[]" json:"synonyms"`
	Antonyms     pq.StringArray `gorm:"column:antonyms;type:text[]" json:"antonyms"`

	Usage           datatypes.JSONType[types.TermUsage]       `gorm:"column:usage;type:jsonb" json:"usage"`
	LegalReferences datatypes.JSONSlice[types.LegalReference] `gorm:"column:legal_references;type:jsonb" json:"legalReferences,omitempty"`
	Translations    datatypes.JSONSlice[types.Translation]    `gorm:"column:translations;type:jsonb" json:"translations,omitempty"`

	IsActive  bool    `gorm:"column:is_active;default:true;index" json:"isActive"`
	CreatedBy *string `gorm:"column:created_by;type:uuid" json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LegalTerm) TableName() string {
	return "legal_terms"
}
