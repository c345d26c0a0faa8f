package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clariohq/clario-backend/service"
	"github.com/clariohq/clario-backend/storage/postgres"
	"github.com/clariohq/clario-backend/types"
)

type stubGlossary struct {
	lookupTerms []postgres.LegalTerm
	lookupErr   error
}

func (s *stubGlossary) List(context.Context, types.TermFilter, types.PageParams) ([]postgres.LegalTerm, types.Pagination, error) {
	return nil, types.Pagination{}, nil
}

func (s *stubGlossary) Get(context.Context, string) (*service.TermDetail, error) {
	return nil, postgres.ErrNotFound
}

func (s *stubGlossary) Lookup(context.Context, string) ([]postgres.LegalTerm, error) {
	return s.lookupTerms, s.lookupErr
}

func (s *stubGlossary) Categories(context.Context) ([]postgres.CategoryCount, error) {
	return nil, nil
}

func (s *stubGlossary) Random(context.Context, int) ([]postgres.LegalTerm, error) {
	return nil, nil
}

func glossaryRouter(svc Glossary) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGlossaryHandler(svc)
	r.GET("/api/glossary/search/:term", h.Lookup)
	return r
}

func TestGlossaryLookup(t *testing.T) {
	tests := []struct {
		name     string
		svc      *stubGlossary
		wantCode int
		wantBody string
	}{
		{
			name: "match",
			svc: &stubGlossary{lookupTerms: []postgres.LegalTerm{
				{ID: "11111111-1111-1111-1111-111111111111", Term: "indemnity", DisplayTerm: "Indemnity"},
			}},
			wantCode: http.StatusOK,
			wantBody: `"term":"indemnity"`,
		},
		{
			// An unknown word is an empty result set, not a 404.
			name:     "no match",
			svc:      &stubGlossary{},
			wantCode: http.StatusOK,
			wantBody: `"data":[]`,
		},
		{
			name:     "backend failure",
			svc:      &stubGlossary{lookupErr: errors.New("boom")},
			wantCode: http.StatusInternalServerError,
			wantBody: `"success":false`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := glossaryRouter(tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/glossary/search/indemnity", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
