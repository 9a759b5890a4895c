package vapiclient

import (
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

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Vapi: config.Vapi{
			URL:           serverURL,
			APIKey:        "test-key",
			AssistantID:   "asst_1",
			PhoneNumberID: "phone_1",
		},
	})
}

func TestInitiateCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/call/phone", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "asst_1", payload["assistantId"])
		assert.Equal(t, "phone_1", payload["phoneNumberId"])

		customer := payload["customer"].(map[string]interface{})
		assert.Equal(t, "+15551234567", customer["number"])

		overrides := payload["assistantOverrides"].(map[string]interface{})
		values := overrides["variableValues"].(map[string]interface{})
		assert.Equal(t, "facebook", values["lead_source"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"call_abc","status":"queued"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.InitiateCall(&CallRequest{
		AssistantID:   "asst_1",
		PhoneNumberID: "phone_1",
		Customer:      Customer{Number: "+15551234567", Name: "Maria"},
		AssistantOverrides: &AssistantOverrides{
			VariableValues: map[string]string{"lead_source": "facebook"},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success())
	assert.JSONEq(t, `{"id":"call_abc","status":"queued"}`, string(resp.Body))
}

func TestInitiateCall_OmitsOverridesWhenAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "assistantOverrides")

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.InitiateCall(&CallRequest{
		AssistantID:   "asst_1",
		PhoneNumberID: "phone_1",
		Customer:      Customer{Number: "+15551234567"},
	})
	require.NoError(t, err)
}

func TestListCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		fmt.Fprint(w, `[{"id":"call_1"}]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.ListCalls(25)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":"call_1"}]`, string(resp.Body))
}

func TestListCalls_PassesUpstreamErrorThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"invalid api key"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.ListCalls(50)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, resp.Success())
}
