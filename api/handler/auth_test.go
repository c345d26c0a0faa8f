package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clariohq/clario-backend/api/middleware"
	"github.com/clariohq/clario-backend/config"
)

func loginRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:        "login-test-secret",
		TokenExpireHours: 1,
		Users:            []string{"alice:wonderland", "bob:builder", "broken-entry"},
	}
	r := gin.New()
	r.POST("/api/auth/login", NewAuthHandler(cfg).Login)
	return r, cfg
}

func postLogin(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	r, cfg := loginRouter(t)
	rec := postLogin(t, r, gin.H{"username": "alice", "password": "wonderland"})
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token    string `json:"token"`
			UserID   string `json:"userId"`
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "alice", envelope.Data.Username)
	assert.NotEmpty(t, envelope.Data.UserID)

	claims, err := middleware.ParseToken(cfg.JWTSecret, envelope.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, envelope.Data.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginUserIDIsStable(t *testing.T) {
	r, _ := loginRouter(t)

	ids := make(map[string]bool)
	for i := 0; i < 2; i++ {
		rec := postLogin(t, r, gin.H{"username": "bob", "password": "builder"})
		require.Equal(t, http.StatusOK, rec.Code)
		var envelope struct {
			Data struct {
				UserID string `json:"userId"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		ids[envelope.Data.UserID] = true
	}
	assert.Len(t, ids, 1, "the same user must get the same id across logins")
}

func TestLoginFailures(t *testing.T) {
	r, _ := loginRouter(t)

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{"wrong password", gin.H{"username": "alice", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", gin.H{"username": "carol", "password": "x"}, http.StatusUnauthorized},
		{"malformed user entry is not loggable", gin.H{"username": "broken-entry", "password": ""}, http.StatusBadRequest},
		{"missing password", gin.H{"username": "alice"}, http.StatusBadRequest},
		{"empty body", gin.H{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(t, r, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}
