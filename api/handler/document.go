package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/middleware"
	"github.com/clariohq/clario-backend/api/response"
	"github.com/clariohq/clario-backend/service"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

type documentListData struct {
	Documents  []service.DocumentView `json:"documents"`
	Pagination types.Pagination       `json:"pagination"`
}

func (h *DocumentHandler) List(c *gin.Context) {
	filter := types.DocumentFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if filter.Type != "" && !types.ValidDocumentType(filter.Type) {
		response.BadRequest(c, "invalid type filter")
		return
	}
	if filter.Status != "" && !types.ValidDocumentStatus(filter.Status) {
		response.BadRequest(c, "invalid status filter")
		return
	}
	if starred := c.Query("starred"); starred != "" {
		v := starred == "true"
		filter.Starred = &v
	}

	page := pageParams(c, 10)
	items, pagination, err := h.svc.List(c.Request.Context(), middleware.UserID(c), filter, page)
	if err != nil {
		log.Error().Err(err).Msg("list documents")
		response.ServerError(c, "could not list documents")
		return
	}
	response.OK(c, documentListData{Documents: items, Pagination: pagination})
}

func (h *DocumentHandler) Get(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		log.Error().Err(err).Msg("get document")
		response.ServerError(c, "could not fetch document")
		return
	}
	response.OK(c, d)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req types.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, type and content are required")
		return
	}
	if !types.ValidDocumentType(req.Type) {
		response.BadRequest(c, "invalid document type")
		return
	}

	d, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		log.Error().Err(err).Msg("create document")
		response.ServerError(c, "could not create document")
		return
	}
	response.Created(c, "document created", d)
}

// Upload accepts a multipart form with a "file" field plus optional
// title, type and comma-separated tags fields.
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	docType := c.PostForm("type")
	if docType != "" && !types.ValidDocumentType(docType) {
		response.BadRequest(c, "invalid document type")
		return
	}
	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	d, err := h.svc.Upload(c.Request.Context(), middleware.UserID(c), fileHeader, c.PostForm("title"), docType, tags)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUpload) {
			response.BadRequest(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("upload document")
		response.ServerError(c, "could not process upload")
		return
	}
	response.Created(c, "document uploaded", d)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	var req types.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Type != nil && !types.ValidDocumentType(*req.Type) {
		response.BadRequest(c, "invalid document type")
		return
	}

	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		log.Error().Err(err).Msg("update document")
		response.ServerError(c, "could not update document")
		return
	}
	response.OKMessage(c, "document updated", d)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		log.Error().Err(err).Msg("delete document")
		response.ServerError(c, "could not delete document")
		return
	}
	response.OKMessage(c, "document deleted", nil)
}

// Analyze runs the clause breakdown on a stored document.
func (h *DocumentHandler) Analyze(c *gin.Context) {
	analysis, err := h.svc.Analyze(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		log.Error().Err(err).Msg("analyze document")
		response.ServerError(c, "analysis failed")
		return
	}
	response.OK(c, analysis)
}

// Simplify rewrites a stored document in plain language.
func (h *DocumentHandler) Simplify(c *gin.Context) {
	simplified, err := h.svc.Simplify(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		log.Error().Err(err).Msg("simplify document")
		response.ServerError(c, "simplification failed")
		return
	}
	response.OK(c, gin.H{"simplified": simplified})
}

// CheckClauses runs the standard-clause checklist on a stored document.
func (h *DocumentHandler) CheckClauses(c *gin.Context) {
	check, err := h.svc.CheckClauses(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		log.Error().Err(err).Msg("check clauses")
		response.ServerError(c, "clause check failed")
		return
	}
	response.OK(c, check)
}
