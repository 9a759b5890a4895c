package domain

// Webhook payload shapes for the two Meta messaging platforms. Both deliver
// entry arrays; WhatsApp nests messages under changes/value, Instagram uses
// either a messaging array or the changes/value form.

type WhatsAppWebhookRequest struct {
	Entry []WhatsAppEntry `json:"entry"`
}

type WhatsAppEntry struct {
	ID      string           `json:"id"`
	Changes []WhatsAppChange `json:"changes"`
}

type WhatsAppChange struct {
	Field string        `json:"field"`
	Value WhatsAppValue `json:"value"`
}

type WhatsAppValue struct {
	Contacts []WhatsAppContact        `json:"contacts"`
	Messages []WhatsAppInboundMessage `json:"messages"`
}

type WhatsAppContact struct {
	WaID    string          `json:"wa_id"`
	Profile WhatsAppProfile `json:"profile"`
}

type WhatsAppProfile struct {
	Name string `json:"name"`
}

type WhatsAppInboundMessage struct {
	ID        string        `json:"id"`
	From      string        `json:"from"`
	Timestamp string        `json:"timestamp"`
	Type      string        `json:"type"`
	Text      *WhatsAppText `json:"text,omitempty"`
}

type WhatsAppText struct {
	Body string `json:"body"`
}

type InstagramWebhookRequest struct {
	Object string           `json:"object"`
	Entry  []InstagramEntry `json:"entry"`
}

type InstagramEntry struct {
	ID        string               `json:"id"`
	Time      int64                `json:"time"`
	Messaging []InstagramMessaging `json:"messaging"`
	Changes   []InstagramChange    `json:"changes"`
}

type InstagramMessaging struct {
	Sender    InstagramParty    `json:"sender"`
	Recipient InstagramParty    `json:"recipient"`
	Timestamp int64             `json:"timestamp"`
	Message   *InstagramMessage `json:"message,omitempty"`
}

type InstagramParty struct {
	ID string `json:"id"`
}

type InstagramMessage struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

type InstagramChange struct {
	Field string         `json:"field"`
	Value InstagramValue `json:"value"`
}

type InstagramValue struct {
	Messages []InstagramChangeMessage `json:"messages"`
}

type InstagramChangeMessage struct {
	ID   string `json:"id"`
	From string `json:"from"`
	Text string `json:"text"`
}
