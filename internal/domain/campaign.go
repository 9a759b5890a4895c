package domain

// CampaignSummary is a flat per-campaign record joining the campaign resource
// with its most recent insights snapshot.
type CampaignSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	Reach       int     `json:"reach"`
	Leads       int     `json:"leads"`
	Conversions int     `json:"conversions"`
}

// CampaignStats accumulates totals across all campaigns plus the two derived
// ratios. AvgCTR and AvgCPC stay zero when their denominators are zero.
type CampaignStats struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalImpressions int     `json:"totalImpressions"`
	TotalClicks      int     `json:"totalClicks"`
	TotalLeads       int     `json:"totalLeads"`
	TotalReach       int     `json:"totalReach"`
	AvgCTR           float64 `json:"avgCTR"`
	AvgCPC           float64 `json:"avgCPC"`
}

// CampaignOverview is the /api/meta/campaigns response body. Error is set
// instead of an HTTP error status when the ads credentials are missing.
type CampaignOverview struct {
	Data  []CampaignSummary `json:"data"`
	Stats *CampaignStats    `json:"stats,omitempty"`
	Error string            `json:"error,omitempty"`
}
