package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/novasync/clinic-api/infrastructure/integrator/meta/domain"
	"github.com/novasync/clinic-api/internal/domain"
)

type stubInsighter struct {
	overview *domain.CampaignOverview
	err      error
}

func (s *stubInsighter) GetCampaignOverview() (*domain.CampaignOverview, error) {
	return s.overview, s.err
}

func TestGetMetaCampaigns(t *testing.T) {
	t.Run("returns the overview", func(t *testing.T) {
		insighter := &stubInsighter{overview: &domain.CampaignOverview{
			Data: []domain.CampaignSummary{{ID: "c1", Name: "Implants May", Status: "active"}},
			Stats: &domain.CampaignStats{
				TotalSpend:  30.0,
				TotalClicks: 10,
				AvgCTR:      5.0,
				AvgCPC:      3.0,
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/meta/campaigns", nil)
		rec := httptest.NewRecorder()

		GetMetaCampaigns(insighter).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var overview domain.CampaignOverview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
		require.Len(t, overview.Data, 1)
		assert.Equal(t, "c1", overview.Data[0].ID)
		require.NotNil(t, overview.Stats)
		assert.Equal(t, 5.0, overview.Stats.AvgCTR)
		assert.Empty(t, overview.Error)
	})

	t.Run("missing credentials still answers 200", func(t *testing.T) {
		insighter := &stubInsighter{overview: &domain.CampaignOverview{
			Data:  []domain.CampaignSummary{},
			Error: "Missing backend credentials",
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/meta/campaigns", nil)
		rec := httptest.NewRecorder()

		GetMetaCampaigns(insighter).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[],"error":"Missing backend credentials"}`, rec.Body.String())
	})

	t.Run("passes the graph api status through", func(t *testing.T) {
		insighter := &stubInsighter{err: &metadomain.UpstreamError{
			StatusCode: http.StatusBadRequest,
			Body:       []byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`),
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/meta/campaigns", nil)
		rec := httptest.NewRecorder()

		GetMetaCampaigns(insighter).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "Meta API Error", envelope["error"])
		assert.NotNil(t, envelope["details"])
	})

	t.Run("other failures are internal errors", func(t *testing.T) {
		insighter := &stubInsighter{err: assert.AnError}

		req := httptest.NewRequest(http.MethodGet, "/api/meta/campaigns", nil)
		rec := httptest.NewRecorder()

		GetMetaCampaigns(insighter).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
