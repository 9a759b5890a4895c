package whatsappclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novasync/clinic-api/internal/config"
)

func newTestClient(graphURL string) Client {
	return NewClient(&config.Config{
		WhatsApp: config.WhatsApp{
			GraphURL:    graphURL,
			AccessToken: "test-token",
			PhoneID:     "555000111",
		},
	})
}

func TestConfigured(t *testing.T) {
	assert.True(t, newTestClient("https://graph.facebook.com/v17.0").Configured())

	assert.False(t, NewClient(&config.Config{}).Configured())
	assert.False(t, NewClient(&config.Config{
		WhatsApp: config.WhatsApp{AccessToken: "token-only"},
	}).Configured())
}

func TestSendText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/555000111/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload SendRequest
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "whatsapp", payload.MessagingProduct)
		assert.Equal(t, "15551234567", payload.To)
		assert.Equal(t, "text", payload.Type)
		assert.Equal(t, "See you at 2pm", payload.Text.Body)

		fmt.Fprint(w, `{"messages":[{"id":"wamid.out1"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.SendText(context.Background(), "15551234567", "See you at 2pm")
	require.NoError(t, err)
}

func TestSendText_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token"}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.SendText(context.Background(), "15551234567", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
