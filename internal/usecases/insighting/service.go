package insighting

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/novasync/clinic-api/infrastructure/integrator/meta/domain"
	"github.com/novasync/clinic-api/infrastructure/integrator/meta/metaclient"
	"github.com/novasync/clinic-api/internal/config"
	"github.com/novasync/clinic-api/internal/domain"
	"github.com/novasync/clinic-api/pkg/utils"
)

// Action-type codes counted as leads and conversions.
var (
	leadActionTypes = map[string]bool{
		"lead":                           true,
		"onsite_conversion.lead_grouped": true,
	}

	conversionActionTypes = map[string]bool{
		"offsite_conversion.fb_pixel_purchase": true,
		"onsite_conversion.purchase":           true,
	}
)

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

func NewService(cfg *config.Config, client metaclient.Client) CampaignInsighter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// GetCampaignOverview joins every campaign with its most recent insights
// record and computes the account-wide totals and averages. Missing ads
// credentials yield an empty-data overview with the error set, not a
// failure, so the front end does not crash.
func (s *Service) GetCampaignOverview() (*domain.CampaignOverview, error) {
	if s.cfg.MetaAds.AccessToken == "" || s.cfg.MetaAds.AdAccountID == "" {
		logrus.Warn("insights: missing ads credentials, returning empty overview")
		return &domain.CampaignOverview{
			Data:  []domain.CampaignSummary{},
			Error: "Missing backend credentials",
		}, nil
	}

	campaigns, err := s.client.GetCampaignsByAccountID(s.cfg.MetaAds.AdAccountID)
	if err != nil {
		return nil, err
	}

	logrus.WithField("campaign_count", len(campaigns)).Debug("insights: campaigns fetched")

	summaries := make([]domain.CampaignSummary, 0, len(campaigns))
	stats := domain.CampaignStats{}

	for _, campaign := range campaigns {
		insight, err := s.client.GetCampaignInsightsByID(campaign.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("insights: failed to get campaign insights")
			return nil, err
		}

		summary := buildSummary(campaign, insight)
		summaries = append(summaries, summary)

		stats.TotalSpend += summary.Spend
		stats.TotalImpressions += summary.Impressions
		stats.TotalClicks += summary.Clicks
		stats.TotalLeads += summary.Leads
		stats.TotalReach += summary.Reach
	}

	if stats.TotalImpressions > 0 {
		stats.AvgCTR = utils.RoundWithTwoDecimalPlace(float64(stats.TotalClicks) / float64(stats.TotalImpressions) * 100)
	}
	if stats.TotalClicks > 0 {
		stats.AvgCPC = utils.RoundWithTwoDecimalPlace(stats.TotalSpend / float64(stats.TotalClicks))
	}
	stats.TotalSpend = utils.RoundWithTwoDecimalPlace(stats.TotalSpend)

	return &domain.CampaignOverview{
		Data:  summaries,
		Stats: &stats,
	}, nil
}

// buildSummary flattens a campaign and its insights snapshot. A nil insight
// (campaign without delivery) leaves every metric at zero.
func buildSummary(campaign metadomain.Campaign, insight *metadomain.CampaignInsight) domain.CampaignSummary {
	status := "unknown"
	if campaign.EffectiveStatus != "" {
		status = strings.ToLower(campaign.EffectiveStatus)
	}

	summary := domain.CampaignSummary{
		ID:     campaign.ID,
		Name:   campaign.Name,
		Status: status,
	}

	if insight == nil {
		return summary
	}

	summary.Spend = parseFloat(insight.Spend)
	summary.Impressions = parseInt(insight.Impressions)
	summary.Clicks = parseInt(insight.Clicks)
	summary.CTR = parseFloat(insight.CTR)
	summary.CPC = parseFloat(insight.CPC)
	summary.CPM = parseFloat(insight.CPM)
	summary.Reach = parseInt(insight.Reach)
	summary.Leads = sumActions(insight.Actions, leadActionTypes)
	summary.Conversions = sumActions(insight.Actions, conversionActionTypes)

	return summary
}

// sumActions adds the values of every action whose type is in wanted.
// Absent or unparsable values count as zero.
func sumActions(actions []metadomain.Action, wanted map[string]bool) int {
	total := 0
	for _, action := range actions {
		if !wanted[action.ActionType] {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
			}).Warn("insights: action value is not an integer")
			continue
		}

		total += value
	}
	return total
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
