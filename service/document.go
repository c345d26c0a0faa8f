package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/config"
	"github.com/clariohq/clario-backend/logic/ai"
	"github.com/clariohq/clario-backend/logic/extract"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

// ClauseAnalyzer is the slice of the AI gateway the document flows use.
type ClauseAnalyzer interface {
	AnalyzeClauses(ctx context.Context, documentText string) (*ai.ClauseAnalysis, error)
	Simplify(ctx context.Context, documentText string) (string, error)
	CheckStandardClauses(ctx context.Context, documentText string) (*ai.ClauseCheck, error)
}

// DocumentContent is the nested content block in API responses.
type DocumentContent struct {
	Original   string          `json:"original"`
	Simplified string          `json:"simplified,omitempty"`
	Analysis   json.RawMessage `json:"analysis,omitempty"`
}

// DocumentMetadata is the nested metadata block in API responses.
type DocumentMetadata struct {
	WordCount       int        `json:"wordCount"`
	PageCount       int        `json:"pageCount,omitempty"`
	Language        string     `json:"language"`
	LastAnalyzed    *time.Time `json:"lastAnalyzed,omitempty"`
	RiskScore       *float64   `json:"riskScore,omitempty"`
	ComplexityScore *float64   `json:"complexityScore,omitempty"`
}

// DocumentView restores the nested response shape over the flat row.
type DocumentView struct {
	*postgres.Document
	Content  DocumentContent  `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}

func documentView(d *postgres.Document) DocumentView {
	return DocumentView{
		Document: d,
		Content: DocumentContent{
			Original:   d.ContentOriginal,
			Simplified: d.ContentSimplified,
			Analysis:   json.RawMessage(d.Analysis),
		},
		Metadata: DocumentMetadata{
			WordCount:       d.WordCount,
			PageCount:       d.PageCount,
			Language:        d.Language,
			LastAnalyzed:    d.LastAnalyzed,
			RiskScore:       d.RiskScore,
			ComplexityScore: d.ComplexityScore,
		},
	}
}

func documentViews(items []postgres.Document) []DocumentView {
	views := make([]DocumentView, len(items))
	for i := range items {
		views[i] = documentView(&items[i])
	}
	return views
}

// DocumentService owns document CRUD, file uploads and the AI-derived
// mutations. Records are updated only after a fully parsed, valid AI
// response; a failed call leaves the row untouched.
type DocumentService struct {
	repo     *postgres.DocumentRepo
	analyzer ClauseAnalyzer
	cfg      *config.Config
}

func NewDocumentService(repo *postgres.DocumentRepo, analyzer ClauseAnalyzer, cfg *config.Config) *DocumentService {
	return &DocumentService{repo: repo, analyzer: analyzer, cfg: cfg}
}

func (s *DocumentService) List(ctx context.Context, userID string, filter types.DocumentFilter, page types.PageParams) ([]DocumentView, types.Pagination, error) {
	items, total, err := s.repo.List(ctx, userID, filter, page)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	return documentViews(items), page.Paginate(total), nil
}

func (s *DocumentService) Get(ctx context.Context, id, userID string) (*DocumentView, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	v := documentView(d)
	return &v, nil
}

func (s *DocumentService) Create(ctx context.Context, userID string, req types.CreateDocumentRequest) (*DocumentView, error) {
	d := &postgres.Document{
		ID:              uuid.New().String(),
		UserID:          userID,
		Title:           req.Title,
		Type:            req.Type,
		Status:          types.DocumentDraft,
		ContentOriginal: req.Content,
		Tags:            req.Tags,
		WordCount:       extract.WordCount(req.Content),
		Language:        "en",
		Version:         1,
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	v := documentView(d)
	return &v, nil
}

// Upload stores the file under the configured directory, extracts its
// text and creates the document. The file's lifecycle is tied to the
// document's.
func (s *DocumentService) Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader, title, docType string, tags []string) (*DocumentView, error) {
	if !extract.AllowedExtension(fileHeader.Filename) {
		return nil, fmt.Errorf("%w: only pdf, doc, docx and txt files are allowed", ErrInvalidUpload)
	}
	if fileHeader.Size > s.cfg.MaxUploadSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidUpload, s.cfg.MaxUploadSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	content, err := extract.Text(ctx, src, fileHeader.Filename)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	id := uuid.New().String()
	dstPath := filepath.Join(s.cfg.UploadDir, id+strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	if title == "" {
		title = fileHeader.Filename
	}
	if docType == "" {
		docType = "other"
	}
	d := &postgres.Document{
		ID:              id,
		UserID:          userID,
		Title:           title,
		Type:            docType,
		Status:          types.DocumentDraft,
		ContentOriginal: content,
		FilePath:        dstPath,
		FileName:        fileHeader.Filename,
		FileSize:        fileHeader.Size,
		MimeType:        extract.MimeType(fileHeader.Filename),
		Tags:            tags,
		WordCount:       extract.WordCount(content),
		Language:        "en",
		Version:         1,
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if err := s.repo.Create(ctx, d); err != nil {
		// The row failed, so the stored file is an orphan.
		if rmErr := os.Remove(dstPath); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", dstPath).Msg("orphaned upload cleanup failed")
		}
		return nil, err
	}
	v := documentView(d)
	return &v, nil
}

// Update applies partial edits. Editing the original content recounts
// words; whether it also clears stale analysis is a product decision
// surfaced as the ClearAnalysisOnEdit option (off keeps the observed
// behavior of leaving stale analysis attached).
func (s *DocumentService) Update(ctx context.Context, id, userID string, req types.UpdateDocumentRequest) (*DocumentView, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Type != nil {
		d.Type = *req.Type
	}
	if req.Content != nil {
		d.ContentOriginal = *req.Content
		d.WordCount = extract.WordCount(*req.Content)
		if s.cfg.ClearAnalysisOnEdit && len(d.Analysis) > 0 {
			d.Analysis = nil
			d.AnalysisKind = ""
			d.RiskScore = nil
			d.LastAnalyzed = nil
		}
	}
	if req.Tags != nil {
		d.Tags = req.Tags
	}
	if req.IsStarred != nil {
		d.IsStarred = *req.IsStarred
	}

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	v := documentView(d)
	return &v, nil
}

// Delete removes the row and then, best effort, its stored file. A
// failed file removal is logged, never surfaced.
func (s *DocumentService) Delete(ctx context.Context, id, userID string) error {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	if d.FilePath != "" {
		if err := os.Remove(d.FilePath); err != nil {
			log.Warn().Err(err).Str("path", d.FilePath).Msg("stored file removal failed")
		}
	}
	return nil
}

// Analyze runs the clause breakdown and persists it, moving the
// document to the analyzed status and recording the overall risk.
func (s *DocumentService) Analyze(ctx context.Context, id, userID string) (*ai.ClauseAnalysis, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.AnalyzeClauses(ctx, d.ContentOriginal)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}
	now := time.Now()
	risk := float64(analysis.OverallRisk)

	d.Analysis = payload
	d.AnalysisKind = ai.KindClauses
	d.LastAnalyzed = &now
	d.RiskScore = &risk
	d.Status = types.DocumentAnalyzed
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return analysis, nil
}

// Simplify rewrites the document in plain language and records the
// resulting complexity score.
func (s *DocumentService) Simplify(ctx context.Context, id, userID string) (string, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return "", err
	}

	simplified, err := s.analyzer.Simplify(ctx, d.ContentOriginal)
	if err != nil {
		return "", err
	}

	d.ContentSimplified = simplified
	score := ComplexityScore(len(simplified), len(d.ContentOriginal))
	d.ComplexityScore = &score
	if err := s.repo.Save(ctx, d); err != nil {
		return "", err
	}
	return simplified, nil
}

// CheckClauses runs the standard-clause checklist and persists it as
// the document's analysis payload.
func (s *DocumentService) CheckClauses(ctx context.Context, id, userID string) (*ai.ClauseCheck, error) {
	d, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	check, err := s.analyzer.CheckStandardClauses(ctx, d.ContentOriginal)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(check)
	if err != nil {
		return nil, fmt.Errorf("encode clause check: %w", err)
	}
	now := time.Now()
	risk := float64(check.OverallRisk)

	d.Analysis = payload
	d.AnalysisKind = ai.KindClauseCheck
	d.LastAnalyzed = &now
	d.RiskScore = &risk
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return check, nil
}

// ComplexityScore measures how much shorter the simplified text is:
// max(0, 100 - simplified/original*100).
func ComplexityScore(simplifiedLen, originalLen int) float64 {
	if originalLen == 0 {
		return 0
	}
	score := 100 - float64(simplifiedLen)/float64(originalLen)*100
	if score < 0 {
		return 0
	}
	return score
}
