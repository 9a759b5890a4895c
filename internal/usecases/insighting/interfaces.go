package insighting

import "github.com/novasync/clinic-api/internal/domain"

// CampaignInsighter aggregates the ad account's campaigns with their
// last-30-days insights into the overview served to the front end.
type CampaignInsighter interface {
	GetCampaignOverview() (*domain.CampaignOverview, error)
}
