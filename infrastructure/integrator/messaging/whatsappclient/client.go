package whatsappclient

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

// Client sends WhatsApp messages through the Meta Cloud API.
type Client interface {
	Configured() bool
	SendText(ctx context.Context, to, text string) error
}

// SendRequest is the Cloud API text message payload.
type SendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type,omitempty"`
	Text             SendText `json:"text"`
}

type SendText struct {
	Body string `json:"body"`
}

type WhatsAppClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &WhatsAppClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Configured reports whether the access token and phone number ID are set.
func (c *WhatsAppClient) Configured() bool {
	return c.cfg.WhatsApp.AccessToken != "" && c.cfg.WhatsApp.PhoneID != ""
}

func (c *WhatsAppClient) SendText(ctx context.Context, to, text string) error {
	payload := SendRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             SendText{Body: text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshaling whatsapp send request")
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.WhatsApp.GraphURL, c.cfg.WhatsApp.PhoneID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating whatsapp send request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.WhatsApp.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending whatsapp message")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading whatsapp send response")
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"body":        string(respBody),
	}).Debug("whatsapp: send response received")

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("whatsapp send returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
