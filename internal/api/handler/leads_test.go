package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novasync/clinic-api/internal/domain"
)

type stubLeadLister struct {
	leads []domain.Lead
	err   error
}

func (s *stubLeadLister) List(_ context.Context) ([]domain.Lead, error) {
	return s.leads, s.err
}

func TestGetLeads(t *testing.T) {
	t.Run("returns the sheet rows", func(t *testing.T) {
		lister := &stubLeadLister{leads: []domain.Lead{
			{"id": 1, "Name": "Alice", "Phone": "555-0100"},
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		rec := httptest.NewRecorder()

		GetLeads(lister).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var leads []domain.Lead
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
		require.Len(t, leads, 1)
		assert.Equal(t, "Alice", leads[0]["Name"])
	})

	t.Run("empty sheet answers an empty array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		rec := httptest.NewRecorder()

		GetLeads(&stubLeadLister{leads: []domain.Lead{}}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("sheet failure is an internal error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		rec := httptest.NewRecorder()

		GetLeads(&stubLeadLister{err: assert.AnError}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
