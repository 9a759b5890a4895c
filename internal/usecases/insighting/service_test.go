package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/novasync/clinic-api/infrastructure/integrator/meta/domain"
	"github.com/novasync/clinic-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/novasync/clinic-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		MetaAds: config.MetaAds{
			AdAccountID: "123456",
			AccessToken: "test-token",
		},
	}
}

func TestGetCampaignOverview_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	service := NewService(&config.Config{}, mockClient)

	overview, err := service.GetCampaignOverview()
	require.NoError(t, err)

	assert.Empty(t, overview.Data)
	assert.Nil(t, overview.Stats)
	assert.Equal(t, "Missing backend credentials", overview.Error)
}

func TestGetCampaignOverview_AggregatesTotalsAndAverages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetCampaignsByAccountID("123456").
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Implants May", EffectiveStatus: "ACTIVE"},
			{ID: "c2", Name: "Whitening May", EffectiveStatus: "PAUSED"},
		}, nil)

	mockClient.EXPECT().
		GetCampaignInsightsByID("c1").
		Return(&metadomain.CampaignInsight{
			Impressions: "100",
			Clicks:      "10",
			Spend:       "25.50",
			CTR:         "10.0",
			CPC:         "2.55",
			CPM:         "255.0",
			Reach:       "90",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "3"},
				{ActionType: "onsite_conversion.lead_grouped", Value: "2"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "1"},
				{ActionType: "link_click", Value: "10"},
			},
		}, nil)

	mockClient.EXPECT().
		GetCampaignInsightsByID("c2").
		Return(&metadomain.CampaignInsight{
			Impressions: "100",
			Clicks:      "0",
			Spend:       "4.50",
			Reach:       "80",
			Actions: []metadomain.Action{
				{ActionType: "onsite_conversion.purchase", Value: "2"},
				{ActionType: "lead", Value: "not-a-number"},
			},
		}, nil)

	service := NewService(testConfig(), mockClient)

	overview, err := service.GetCampaignOverview()
	require.NoError(t, err)
	require.Len(t, overview.Data, 2)

	first := overview.Data[0]
	assert.Equal(t, "c1", first.ID)
	assert.Equal(t, "active", first.Status)
	assert.Equal(t, 25.50, first.Spend)
	assert.Equal(t, 100, first.Impressions)
	assert.Equal(t, 10, first.Clicks)
	assert.Equal(t, 90, first.Reach)
	assert.Equal(t, 5, first.Leads)
	assert.Equal(t, 1, first.Conversions)

	second := overview.Data[1]
	assert.Equal(t, "paused", second.Status)
	assert.Equal(t, 0, second.Leads, "unparsable action values count as zero")
	assert.Equal(t, 2, second.Conversions)

	stats := overview.Stats
	require.NotNil(t, stats)
	assert.Equal(t, 30.0, stats.TotalSpend)
	assert.Equal(t, 200, stats.TotalImpressions)
	assert.Equal(t, 10, stats.TotalClicks)
	assert.Equal(t, 5, stats.TotalLeads)
	assert.Equal(t, 170, stats.TotalReach)

	// 10 clicks / 200 impressions * 100
	assert.Equal(t, 5.0, stats.AvgCTR)
	// 30.00 spend / 10 clicks
	assert.Equal(t, 3.0, stats.AvgCPC)
}

func TestGetCampaignOverview_ZeroDenominatorsLeaveAveragesAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetCampaignsByAccountID("123456").
		Return([]metadomain.Campaign{{ID: "c1", Name: "No Delivery"}}, nil)

	mockClient.EXPECT().
		GetCampaignInsightsByID("c1").
		Return(nil, nil)

	service := NewService(testConfig(), mockClient)

	overview, err := service.GetCampaignOverview()
	require.NoError(t, err)
	require.Len(t, overview.Data, 1)

	assert.Equal(t, "unknown", overview.Data[0].Status)
	assert.Zero(t, overview.Stats.AvgCTR)
	assert.Zero(t, overview.Stats.AvgCPC)
}

func TestGetCampaignOverview_CampaignListErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	upstreamErr := &metadomain.UpstreamError{
		StatusCode: 400,
		Body:       []byte(`{"error":{"message":"Invalid OAuth access token","code":190}}`),
	}

	mockClient.EXPECT().
		GetCampaignsByAccountID("123456").
		Return(nil, upstreamErr)

	service := NewService(testConfig(), mockClient)

	overview, err := service.GetCampaignOverview()
	assert.Nil(t, overview)
	assert.ErrorIs(t, err, upstreamErr)
}
