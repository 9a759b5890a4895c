package domain

const (
	PlatformWhatsApp  = "whatsapp"
	PlatformInstagram = "instagram"
)

// Message is the platform-independent chat message shape kept by the inbox.
// Inbound messages carry From, outbound messages carry To.
type Message struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Sender   string `json:"sender"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Text     string `json:"text"`
	Time     string `json:"time"`
	Avatar   string `json:"avatar"`
	Unread   bool   `json:"unread"`
}
