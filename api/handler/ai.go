package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/response"
	"github.com/clariohq/clario-backend/logic/ai"
)

// AIHandler exposes the assistant endpoints that operate on request
// text rather than stored documents.
type AIHandler struct {
	gateway *ai.Gateway
}

func NewAIHandler(gateway *ai.Gateway) *AIHandler {
	return &AIHandler{gateway: gateway}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}

// Chat answers a free-form legal question.
func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "message is required")
		return
	}
	answer, err := h.gateway.Chat(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		log.Error().Err(err).Msg("ai chat")
		response.ServerError(c, "assistant is unavailable")
		return
	}
	response.OK(c, gin.H{"response": answer})
}

type documentTextRequest struct {
	DocumentText string `json:"documentText" binding:"required"`
}

// AnalyzeClauses breaks ad hoc document text into risk-scored clauses.
func (h *AIHandler) AnalyzeClauses(c *gin.Context) {
	var req documentTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "documentText is required")
		return
	}
	analysis, err := h.gateway.AnalyzeClauses(c.Request.Context(), req.DocumentText)
	if err != nil {
		log.Error().Err(err).Msg("ai analyze clauses")
		response.ServerError(c, "analysis failed")
		return
	}
	response.OK(c, analysis)
}

// SimplifyDocument rewrites ad hoc document text in plain language.
func (h *AIHandler) SimplifyDocument(c *gin.Context) {
	var req documentTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "documentText is required")
		return
	}
	simplified, err := h.gateway.Simplify(c.Request.Context(), req.DocumentText)
	if err != nil {
		log.Error().Err(err).Msg("ai simplify")
		response.ServerError(c, "simplification failed")
		return
	}
	response.OK(c, gin.H{"simplified": simplified})
}

// CheckStandardClauses reports which standard clauses the text contains.
func (h *AIHandler) CheckStandardClauses(c *gin.Context) {
	var req documentTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "documentText is required")
		return
	}
	check, err := h.gateway.CheckStandardClauses(c.Request.Context(), req.DocumentText)
	if err != nil {
		log.Error().Err(err).Msg("ai check clauses")
		response.ServerError(c, "clause check failed")
		return
	}
	response.OK(c, check)
}

type generateRequest struct {
	Type   string            `json:"type" binding:"required"`
	Params map[string]string `json:"params"`
}

// GenerateDocument drafts a document of the requested type.
func (h *AIHandler) GenerateDocument(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "type is required")
		return
	}
	draft, err := h.gateway.GenerateDocument(c.Request.Context(), req.Type, req.Params)
	if err != nil {
		log.Error().Err(err).Msg("ai generate document")
		response.ServerError(c, "generation failed")
		return
	}
	response.OK(c, gin.H{"document": draft, "type": req.Type})
}
