package vapiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/novasync/clinic-api/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultHTTPTimeout = 10 * time.Second

// Client talks to the voice platform's call API.
type Client interface {
	InitiateCall(req *CallRequest) (*UpstreamResponse, error)
	ListCalls(limit int) (*UpstreamResponse, error)
}

// CallRequest is the call-creation payload. AssistantOverrides is only set
// when the caller supplies context variables.
type CallRequest struct {
	AssistantID        string              `json:"assistantId"`
	PhoneNumberID      string              `json:"phoneNumberId"`
	Customer           Customer            `json:"customer"`
	AssistantOverrides *AssistantOverrides `json:"assistantOverrides,omitempty"`
}

type Customer struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

type AssistantOverrides struct {
	VariableValues map[string]string `json:"variableValues"`
}

// UpstreamResponse carries the platform's status code and raw body so the
// handler can forward both verbatim.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the platform accepted the request.
func (r *UpstreamResponse) Success() bool {
	return r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated
}

type VapiClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &VapiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (c *VapiClient) InitiateCall(callReq *CallRequest) (*UpstreamResponse, error) {
	body, err := json.Marshal(callReq)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling call request")
	}

	url := fmt.Sprintf("%s/call/phone", c.cfg.Vapi.URL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "creating call request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Vapi.APIKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *VapiClient) ListCalls(limit int) (*UpstreamResponse, error) {
	url := fmt.Sprintf("%s/call?limit=%s", c.cfg.Vapi.URL, strconv.Itoa(limit))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating call list request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Vapi.APIKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *VapiClient) do(req *http.Request) (*UpstreamResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling voice platform")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading voice platform response")
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"path":        req.URL.Path,
	}).Debug("vapi: upstream response received")

	return &UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
