package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookType(t *testing.T) {
	assert.True(t, Feedback.Valid())
	assert.True(t, BugReport.Valid())
	assert.False(t, WebhookType("Other").Valid())

	assert.Equal(t, "Feedback", Feedback.Title())
	assert.Equal(t, "Bug Report", BugReport.Title())
}

func TestSendWebhook(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	t.Setenv("DISCORD_WEBHOOK", srv.URL)

	require.NoError(t, SendWebhook(context.Background(), BugReport, "it broke"))

	embeds, ok := received["embeds"].([]any)
	require.True(t, ok)
	require.Len(t, embeds, 1)

	embed := embeds[0].(map[string]any)
	assert.Equal(t, "Bug Report", embed["title"])
	assert.Equal(t, "it broke", embed["description"])
}

func TestSendWebhookMissingEnv(t *testing.T) {
	t.Setenv("DISCORD_WEBHOOK", "")

	assert.Error(t, SendWebhook(context.Background(), Feedback, "hello"))
}

func TestSendWebhookErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no thanks", http.StatusForbidden)
	}))
	defer srv.Close()

	t.Setenv("DISCORD_WEBHOOK", srv.URL)

	err := SendWebhook(context.Background(), Feedback, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
