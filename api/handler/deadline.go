package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/middleware"
	"github.com/clariohq/clario-backend/api/response"
	"github.com/clariohq/clario-backend/service"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

type DeadlineHandler struct {
	svc *service.DeadlineService
}

func NewDeadlineHandler(svc *service.DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{svc: svc}
}

type deadlineListData struct {
	Deadlines  []service.DeadlineView `json:"deadlines"`
	Pagination types.Pagination       `json:"pagination"`
}

// List returns the caller's deadlines ordered by due date.
func (h *DeadlineHandler) List(c *gin.Context) {
	filter := types.DeadlineFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	}
	if filter.Status != "" && !types.ValidDeadlineStatus(filter.Status) {
		response.BadRequest(c, "invalid status filter")
		return
	}
	if filter.Priority != "" && !types.ValidPriority(filter.Priority) {
		response.BadRequest(c, "invalid priority filter")
		return
	}
	if filter.Category != "" && !types.ValidDeadlineCategory(filter.Category) {
		response.BadRequest(c, "invalid category filter")
		return
	}

	page := pageParams(c, 10)
	items, pagination, err := h.svc.List(c.Request.Context(), middleware.UserID(c), filter, page)
	if err != nil {
		log.Error().Err(err).Msg("list deadlines")
		response.ServerError(c, "could not list deadlines")
		return
	}
	response.OK(c, deadlineListData{Deadlines: items, Pagination: pagination})
}

func (h *DeadlineHandler) Get(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "deadline not found")
			return
		}
		log.Error().Err(err).Msg("get deadline")
		response.ServerError(c, "could not fetch deadline")
		return
	}
	response.OK(c, d)
}

func (h *DeadlineHandler) Create(c *gin.Context) {
	var req types.CreateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, dueDate and category are required")
		return
	}
	if !types.ValidDeadlineCategory(req.Category) {
		response.BadRequest(c, "invalid category")
		return
	}
	if req.Priority != "" && !types.ValidPriority(req.Priority) {
		response.BadRequest(c, "invalid priority")
		return
	}
	if req.RecurringPattern != nil && !types.ValidRecurrenceFrequency(req.RecurringPattern.Frequency) {
		response.BadRequest(c, "invalid recurrence frequency")
		return
	}

	d, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		log.Error().Err(err).Msg("create deadline")
		response.ServerError(c, "could not create deadline")
		return
	}
	response.Created(c, "deadline created", d)
}

func (h *DeadlineHandler) Update(c *gin.Context) {
	var req types.UpdateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Status != nil && !types.ValidDeadlineStatus(*req.Status) {
		response.BadRequest(c, "invalid status")
		return
	}
	if req.Priority != nil && !types.ValidPriority(*req.Priority) {
		response.BadRequest(c, "invalid priority")
		return
	}
	if req.Category != nil && !types.ValidDeadlineCategory(*req.Category) {
		response.BadRequest(c, "invalid category")
		return
	}

	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.Username(c), req)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "deadline not found")
			return
		}
		log.Error().Err(err).Msg("update deadline")
		response.ServerError(c, "could not update deadline")
		return
	}
	response.OKMessage(c, "deadline updated", d)
}

func (h *DeadlineHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "deadline not found")
			return
		}
		log.Error().Err(err).Msg("delete deadline")
		response.ServerError(c, "could not delete deadline")
		return
	}
	response.OKMessage(c, "deadline deleted", nil)
}

// Upcoming returns deadlines that are still open, soonest first.
func (h *DeadlineHandler) Upcoming(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	items, err := h.svc.Upcoming(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		log.Error().Err(err).Msg("upcoming deadlines")
		response.ServerError(c, "could not fetch upcoming deadlines")
		return
	}
	response.OK(c, items)
}

func (h *DeadlineHandler) Overdue(c *gin.Context) {
	items, err := h.svc.Overdue(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("overdue deadlines")
		response.ServerError(c, "could not fetch overdue deadlines")
		return
	}
	response.OK(c, items)
}

// pageParams reads page/limit query params with clamping shared by the
// list endpoints.
func pageParams(c *gin.Context, defaultLimit int) types.PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	return types.NormalizePage(page, limit, defaultLimit)
}
