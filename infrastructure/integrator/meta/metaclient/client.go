package metaclient

import (
	"net/http"
	"strings"
	"time"

	metadomain "github.com/novasync/clinic-api/infrastructure/integrator/meta/domain"
	"github.com/novasync/clinic-api/internal/config"
)

const defaultHTTPTimeout = 10 * time.Second

// Client reads campaigns and insights from the Meta Graph API.
type Client interface {
	GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetCampaignInsightsByID(campaignID string) (*metadomain.CampaignInsight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// NormalizeAccountID guarantees the ad account ID carries its required
// "act_" prefix.
func NormalizeAccountID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
