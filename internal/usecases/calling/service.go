package calling

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/novasync/clinic-api/infrastructure/integrator/vapi/vapiclient"
	"github.com/novasync/clinic-api/internal/config"
)

// ErrNotConfigured signals the voice platform credentials are absent; the
// handler turns it into a misconfiguration response.
var ErrNotConfigured = errors.New("voice platform credentials are not configured")

// Caller proxies call initiation and call history to the voice platform,
// forwarding upstream status and body.
type Caller interface {
	InitiateCall(phoneNumber, name string, variables map[string]string) (*vapiclient.UpstreamResponse, error)
	ListCalls(limit int) (*vapiclient.UpstreamResponse, error)
}

type Service struct {
	cfg    *config.Config
	client vapiclient.Client
}

func NewService(cfg *config.Config, client vapiclient.Client) Caller {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// InitiateCall places an outbound call to the patient. Context variables,
// when present, are injected as assistant overrides.
func (s *Service) InitiateCall(phoneNumber, name string, variables map[string]string) (*vapiclient.UpstreamResponse, error) {
	if s.cfg.Vapi.APIKey == "" || s.cfg.Vapi.AssistantID == "" || s.cfg.Vapi.PhoneNumberID == "" {
		logrus.WithFields(logrus.Fields{
			"has_api_key":         s.cfg.Vapi.APIKey != "",
			"has_assistant_id":    s.cfg.Vapi.AssistantID != "",
			"has_phone_number_id": s.cfg.Vapi.PhoneNumberID != "",
		}).Error("calling: missing voice platform credentials")
		return nil, ErrNotConfigured
	}

	request := &vapiclient.CallRequest{
		AssistantID:   s.cfg.Vapi.AssistantID,
		PhoneNumberID: s.cfg.Vapi.PhoneNumberID,
		Customer: vapiclient.Customer{
			Number: phoneNumber,
			Name:   name,
		},
	}

	if len(variables) > 0 {
		request.AssistantOverrides = &vapiclient.AssistantOverrides{
			VariableValues: variables,
		}
	}

	logrus.WithField("phone_number", phoneNumber).Info("calling: initiating call")

	return s.client.InitiateCall(request)
}

// ListCalls forwards to the platform's call list endpoint.
func (s *Service) ListCalls(limit int) (*vapiclient.UpstreamResponse, error) {
	if s.cfg.Vapi.APIKey == "" {
		return nil, ErrNotConfigured
	}

	logrus.WithField("limit", limit).Info("calling: fetching call history")

	return s.client.ListCalls(limit)
}
