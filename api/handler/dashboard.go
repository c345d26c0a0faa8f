package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/middleware"
	"github.com/clariohq/clario-backend/api/response"
	"github.com/clariohq/clario-backend/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats returns the aggregate counts plus recent documents and the
// nearest open deadlines.
func (h *DashboardHandler) Stats(c *gin.Context) {
	data, err := h.svc.Stats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("dashboard stats")
		response.ServerError(c, "could not compute stats")
		return
	}
	response.OK(c, data)
}

// HealthCheck recomputes overdue statuses and reports the compliance
// risk score with recommendations.
func (h *DashboardHandler) HealthCheck(c *gin.Context) {
	data, err := h.svc.HealthCheck(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("health check")
		response.ServerError(c, "could not run health check")
		return
	}
	response.OK(c, data)
}
