// Package handler wires HTTP routes to services.
package handler

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/middleware"
	"github.com/clariohq/clario-backend/api/response"
	"github.com/clariohq/clario-backend/config"
)

type AuthHandler struct {
	cfg *config.Config
	// username -> password, parsed from the configured user list
	users map[string]string
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	users := make(map[string]string, len(cfg.Users))
	for _, entry := range cfg.Users {
		name, pass, ok := strings.Cut(entry, ":")
		if !ok || name == "" {
			log.Warn().Str("entry", entry).Msg("skipping malformed user entry")
			continue
		}
		users[name] = pass
	}
	return &AuthHandler{cfg: cfg, users: users}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Login exchanges credentials for a bearer token. The user id is
// derived deterministically from the username so data survives restarts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	want, ok := h.users[req.Username]
	if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(req.Password)) != 1 {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	userID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(req.Username)).String()
	ttl := time.Duration(h.cfg.TokenExpireHours) * time.Hour
	token, err := middleware.GenerateToken(h.cfg.JWTSecret, userID, req.Username, ttl)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		response.ServerError(c, "could not issue token")
		return
	}

	response.OK(c, loginResponse{Token: token, UserID: userID, Username: req.Username})
}
