package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const embedColor = 0x7437dd

var httpClient = &http.Client{Timeout: 5 * time.Second}

type WebhookType string

const (
	Feedback  WebhookType = "Feedback"
	BugReport WebhookType = "BugReport"
)

// SendWebhookPayload is the JSON body of POST /v1/webhook.
type SendWebhookPayload struct {
	WhType  WebhookType `json:"wh_type"`
	Content string      `json:"content"`
}

func (t WebhookType) Title() string {
	if t == BugReport {
		return "Bug Report"
	}
	return string(t)
}

func (t WebhookType) Valid() bool {
	return t == Feedback || t == BugReport
}

// SendWebhook posts an embed to the Discord webhook from the env so
// user feedback and bug reports land in the team channel.
func SendWebhook(ctx context.Context, whType WebhookType, content string) error {
	webhook := os.Getenv("DISCORD_WEBHOOK")
	if webhook == "" {
		return fmt.Errorf("DISCORD_WEBHOOK env var not found")
	}

	payload := map[string]any{
		"embeds": []map[string]any{{
			"title":       whType.Title(),
			"description": content,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"color":       embedColor,
			"footer": map[string]any{
				"text": "Sharify",
			},
		}},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("webhook request failed with status %d and response %s", res.StatusCode, string(body))
	}

	return nil
}
