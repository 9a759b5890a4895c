package instagramclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/internal/config"
)

const defaultHTTPTimeout = 10 * time.Second

// Client sends Instagram direct messages through the Meta Graph API.
type Client interface {
	Configured() bool
	SendText(ctx context.Context, recipientID, text string) error
}

// SendRequest is the Graph API direct message payload. Instagram addresses
// recipients by their scoped user ID, not a phone number.
type SendRequest struct {
	Recipient SendRecipient `json:"recipient"`
	Message   SendMessage   `json:"message"`
}

type SendRecipient struct {
	ID string `json:"id"`
}

type SendMessage struct {
	Text string `json:"text"`
}

type InstagramClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &InstagramClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Configured reports whether the page access token is set.
func (c *InstagramClient) Configured() bool {
	return c.cfg.Instagram.AccessToken != ""
}

func (c *InstagramClient) SendText(ctx context.Context, recipientID, text string) error {
	payload := SendRequest{
		Recipient: SendRecipient{ID: recipientID},
		Message:   SendMessage{Text: text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshaling instagram send request")
	}

	url := fmt.Sprintf("%s/me/messages", c.cfg.Instagram.GraphURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating instagram send request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Instagram.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending instagram message")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading instagram send response")
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"body":        string(respBody),
	}).Debug("instagram: send response received")

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("instagram send returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
