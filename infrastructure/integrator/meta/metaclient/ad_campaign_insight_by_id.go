package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/novasync/clinic-api/infrastructure/integrator/meta/domain"
)

const campaignInsightFields = "impressions,clicks,spend,ctr,cpc,cpp,cpm,reach,frequency,actions,cost_per_action_type"

type ResponseAdCampaignInsight struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsightsByID fetches the last-30-days insights record for one
// campaign. Only the first row is used; campaigns without delivery return
// nil without an error, matching the Graph API's empty data array.
func (c *MetaClient) GetCampaignInsightsByID(campaignID string) (*metadomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.MetaAds.URL, campaignID)

	params := url.Values{}
	params.Add("fields", campaignInsightFields)
	params.Add("date_preset", "last_30d")
	params.Add("access_token", c.Cfg.MetaAds.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to create insights request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: insights request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response ResponseAdCampaignInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("meta: failed to decode insights response")
		return nil, err
	}

	if len(response.Data) == 0 {
		logrus.WithField("campaign_id", campaignID).Debug("meta: campaign has no insights rows")
		return nil, nil
	}

	return &response.Data[0], nil
}
