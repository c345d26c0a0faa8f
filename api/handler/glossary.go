package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/response"
	"github.com/clariohq/clario-backend/service"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

// Glossary is the slice of the glossary service the handler consumes.
type Glossary interface {
	List(ctx context.Context, filter types.TermFilter, page types.PageParams) ([]postgres.LegalTerm, types.Pagination, error)
	Get(ctx context.Context, id string) (*service.TermDetail, error)
	Lookup(ctx context.Context, q string) ([]postgres.LegalTerm, error)
	Categories(ctx context.Context) ([]postgres.CategoryCount, error)
	Random(ctx context.Context, count int) ([]postgres.LegalTerm, error)
}

type GlossaryHandler struct {
	svc Glossary
}

func NewGlossaryHandler(svc Glossary) *GlossaryHandler {
	return &GlossaryHandler{svc: svc}
}

type termListData struct {
	Terms      []postgres.LegalTerm `json:"terms"`
	Pagination types.Pagination     `json:"pagination"`
}

// List browses the glossary with optional filters and full-text search.
func (h *GlossaryHandler) List(c *gin.Context) {
	filter := types.TermFilter{
		Category:   c.Query("category"),
		Complexity: c.Query("complexity"),
		Search:     c.Query("search"),
		Sort:       c.DefaultQuery("sort", "alphabetical"),
	}
	if filter.Category != "" && !types.ValidTermCategory(filter.Category) {
		response.BadRequest(c, "invalid category filter")
		return
	}
	if filter.Complexity != "" && !types.ValidTermComplexity(filter.Complexity) {
		response.BadRequest(c, "invalid complexity filter")
		return
	}
	if !types.ValidGlossarySort(filter.Sort) {
		response.BadRequest(c, "invalid sort option")
		return
	}

	page := pageParams(c, 20)
	terms, pagination, err := h.svc.List(c.Request.Context(), filter, page)
	if err != nil {
		log.Error().Err(err).Msg("list terms")
		response.ServerError(c, "could not list terms")
		return
	}
	response.OK(c, termListData{Terms: terms, Pagination: pagination})
}

func (h *GlossaryHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "term not found")
			return
		}
		log.Error().Err(err).Msg("get term")
		response.ServerError(c, "could not fetch term")
		return
	}
	response.OK(c, detail)
}

// Lookup resolves a word against terms, display names and synonyms.
// No match is not an error: the client gets an empty list.
func (h *GlossaryHandler) Lookup(c *gin.Context) {
	terms, err := h.svc.Lookup(c.Request.Context(), c.Param("term"))
	if err != nil {
		log.Error().Err(err).Msg("lookup term")
		response.ServerError(c, "lookup failed")
		return
	}
	if terms == nil {
		terms = []postgres.LegalTerm{}
	}
	response.OK(c, terms)
}

func (h *GlossaryHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("term categories")
		response.ServerError(c, "could not fetch categories")
		return
	}
	response.OK(c, categories)
}

// Random returns up to count random terms, defaulting to 5.
func (h *GlossaryHandler) Random(c *gin.Context) {
	count := 5
	if raw := c.Param("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "count must be a number")
			return
		}
		count = n
	}
	terms, err := h.svc.Random(c.Request.Context(), count)
	if err != nil {
		log.Error().Err(err).Msg("random terms")
		response.ServerError(c, "could not fetch terms")
		return
	}
	response.OK(c, terms)
}
