package domain

import "encoding/json"

// ServerMessageTypeToolCalls is the webhook message type that carries tool
// invocations from the voice agent.
const ServerMessageTypeToolCalls = "tool-calls"

// Tool names the voice agent dispatches on.
const (
	ToolBookAppointment     = "book_appointment"
	ToolScheduleDental      = "schedule_dental_appointment"
	ToolSendWhatsAppDetails = "send_whatsapp_details"
	ToolScheduleFollowup    = "schedule_followup"
	ToolUpdateLeadData      = "update_lead_data"
)

// VapiWebhookRequest is the envelope posted by the voice platform.
type VapiWebhookRequest struct {
	Message *VapiServerMessage `json:"message"`
}

type VapiServerMessage struct {
	Type      string     `json:"type"`
	ToolCalls []ToolCall `json:"toolCalls"`
}

// ToolCall is one function-invocation request from the agent. A textual
// result keyed by ID must be produced for every call, success or not.
type ToolCall struct {
	ID       string       `json:"id"`
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name string `json:"name"`
	// Arguments arrives either as a JSON object or as a JSON-encoded string,
	// depending on the agent version.
	Arguments json.RawMessage `json:"arguments"`
}

// ParsedArguments decodes the arguments into a flat map, handling the
// double-encoded string variant. Undecodable arguments yield an empty map.
func (f ToolFunction) ParsedArguments() map[string]string {
	args := map[string]string{}
	if len(f.Arguments) == 0 {
		return args
	}

	raw := f.Arguments
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return args
	}

	for key, value := range asMap {
		if s, ok := value.(string); ok {
			args[key] = s
		}
	}

	return args
}

// ToolCallResult is the per-call outcome returned to the voice platform.
type ToolCallResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
}

// VapiWebhookResponse wraps one result per submitted tool call.
type VapiWebhookResponse struct {
	Results []ToolCallResult `json:"results"`
}
