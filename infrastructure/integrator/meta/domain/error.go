package metadomain

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse is the Graph API error shape.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails holds the Graph API error payload.
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// UpstreamError preserves a non-success Graph API response so the handler
// can forward its status code and body to the caller.
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("meta graph api returned status %d: %s", e.StatusCode, string(e.Body))
}

// Details decodes the error body for the response envelope, falling back to
// the raw text when it is not JSON.
func (e *UpstreamError) Details() any {
	var details map[string]interface{}
	if err := json.Unmarshal(e.Body, &details); err != nil {
		return string(e.Body)
	}
	return details
}
