package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsaristov/MoodJournal/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test_key", 5*time.Second)
	require.NoError(t, err)
	return client, server
}

func TestNewClientMissingCredential(t *testing.T) {
	_, err := NewClient("https://openrouter.ai/api/v1", "", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingCredential))
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Serene"}}]}`))
	})

	text, err := client.Complete(context.Background(), "test-model", "you are a psychologist", "one word please", 0, 50)
	require.NoError(t, err)
	assert.Equal(t, "Serene", text)

	assert.Equal(t, "Bearer test_key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])

	// Zero temperature is omitted from the wire.
	_, hasTemp := gotBody["temperature"]
	assert.False(t, hasTemp)
	assert.Equal(t, float64(50), gotBody["max_tokens"])
}

func TestCompleteServiceError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"insufficient credits"}`))
	})

	_, err := client.Complete(context.Background(), "m", "s", "u", 0, 0)
	require.Error(t, err)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusPaymentRequired, svcErr.Status)
	assert.Contains(t, svcErr.Body, "insufficient credits")
}

func TestCompleteParseError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>gateway</html>`},
		{"empty choices", `{"choices":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})

			_, err := client.Complete(context.Background(), "m", "s", "u", 0, 0)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.body, parseErr.Body)
		})
	}
}

func TestCompleteTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	client, err := NewClient(url, "k", time.Second)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "m", "s", "u", 0, 0)
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}
