package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	rec := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "generated request id should be a uuid")
	assert.Equal(t, id, rec.Body.String(), "handler should see the same id")
}

func TestRequestIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "client-chosen-id")
	rec := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(rec, req)

	assert.Equal(t, "client-chosen-id", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "client-chosen-id", rec.Body.String())
}
