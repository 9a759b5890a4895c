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

const campaignListFields = "id,name,status,effective_status,objective,spend_cap,daily_budget,lifetime_budget"

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID fetches up to 50 campaigns for the ad account. A
// non-200 response aborts with an UpstreamError carrying status and body.
func (c *MetaClient) GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/%s/campaigns", c.Cfg.MetaAds.URL, NormalizeAccountID(accountID))

	params := url.Values{}
	params.Add("fields", campaignListFields)
	params.Add("limit", "50")
	params.Add("access_token", c.Cfg.MetaAds.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to create campaign list request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: campaign list request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("meta: campaign list returned an error")

		return nil, &metadomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	var response ResponseAdCampaign
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: failed to decode campaign list")
		return nil, err
	}

	return response.Data, nil
}
