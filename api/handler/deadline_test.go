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

	"github.com/clariohq/clario-backend/service"
)

// The repo behind the service is never reached: every case here must be
// rejected by handler validation before the service layer.
func deadlineCreateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/deadlines", NewDeadlineHandler(service.NewDeadlineService(nil)).Create)
	return r
}

func TestCreateDeadlineValidation(t *testing.T) {
	router := deadlineCreateRouter()

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing required fields", gin.H{"title": "File annual report"}},
		{"unknown category", gin.H{
			"title": "File annual report", "dueDate": "2026-09-30T00:00:00Z", "category": "misc",
		}},
		{"unknown priority", gin.H{
			"title": "File annual report", "dueDate": "2026-09-30T00:00:00Z",
			"category": "tax-compliance", "priority": "urgent",
		}},
		{"unknown recurrence frequency", gin.H{
			"title": "File annual report", "dueDate": "2026-09-30T00:00:00Z",
			"category": "tax-compliance", "isRecurring": true,
			"recurringPattern": gin.H{"frequency": "fortnightly", "interval": 2},
		}},
		{"empty recurrence frequency", gin.H{
			"title": "File annual report", "dueDate": "2026-09-30T00:00:00Z",
			"category":         "tax-compliance",
			"recurringPattern": gin.H{"interval": 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/deadlines", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}
