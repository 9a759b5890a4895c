package handler

import (
	"net/http"

	"github.com/novasync/clinic-api/internal/api/handler/router"
	"github.com/novasync/clinic-api/internal/config"
	"github.com/novasync/clinic-api/internal/usecases/agenda"
	"github.com/novasync/clinic-api/internal/usecases/booking"
	"github.com/novasync/clinic-api/internal/usecases/calling"
	"github.com/novasync/clinic-api/internal/usecases/inboxing"
	"github.com/novasync/clinic-api/internal/usecases/insighting"
	"github.com/novasync/clinic-api/internal/usecases/leads"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func VoiceCalls(service calling.Caller) []router.Route {
	return []router.Route{
		{
			Path:    "/api/vapi/initiate-call",
			Method:  http.MethodPost,
			Handler: InitiateCall(service),
		},
		{
			Path:    "/api/vapi/calls",
			Method:  http.MethodGet,
			Handler: ListCalls(service),
		},
	}
}

func VoiceWebhook(dispatcher booking.ToolDispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/api/vapi/webhook",
			Method:  http.MethodPost,
			Handler: VapiWebhook(dispatcher),
		},
	}
}

func Leads(service leads.LeadLister) []router.Route {
	return []router.Route{
		{
			Path:    "/api/leads",
			Method:  http.MethodGet,
			Handler: GetLeads(service),
		},
	}
}

func Appointments(service agenda.AppointmentLister) []router.Route {
	return []router.Route{
		{
			Path:    "/api/appointments",
			Method:  http.MethodGet,
			Handler: GetAppointments(service),
		},
	}
}

func WhatsApp(cfg *config.Config, store *inboxing.Store, sender WhatsAppSender) []router.Route {
	return []router.Route{
		{
			Path:    "/api/whatsapp/webhook",
			Method:  http.MethodGet,
			Handler: VerifyWebhook(cfg.WhatsApp.VerifyToken),
		},
		{
			Path:    "/api/whatsapp/webhook",
			Method:  http.MethodPost,
			Handler: WhatsAppWebhook(store),
		},
		{
			Path:    "/api/whatsapp/send",
			Method:  http.MethodPost,
			Handler: SendWhatsAppMessage(store, sender),
		},
	}
}

func Instagram(cfg *config.Config, store *inboxing.Store, sender InstagramSender) []router.Route {
	return []router.Route{
		{
			Path:    "/api/instagram/webhook",
			Method:  http.MethodGet,
			Handler: VerifyWebhook(cfg.Instagram.VerifyToken),
		},
		{
			Path:    "/api/instagram/webhook",
			Method:  http.MethodPost,
			Handler: InstagramWebhook(store),
		},
		{
			Path:    "/api/instagram/send",
			Method:  http.MethodPost,
			Handler: SendInstagramMessage(store, sender),
		},
	}
}

func Messages(store *inboxing.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/api/messages",
			Method:  http.MethodGet,
			Handler: GetMessages(store),
		},
	}
}

func Campaigns(service insighting.CampaignInsighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/meta/campaigns",
			Method:  http.MethodGet,
			Handler: GetMetaCampaigns(service),
		},
	}
}
