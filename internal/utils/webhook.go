package utils

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// NotifyWebhook posts a JSON payload to the configured webhook URL in the
// background. The notification is advisory: failures are logged, never
// surfaced to the caller, and never retried.
func NotifyWebhook(webhookURL string, payload interface{}) {
	if webhookURL == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Webhook payload marshal failed: %v", err)
		return
	}

	go func() {
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Post(webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("Webhook notification failed: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			log.Printf("Webhook notification returned status %d", resp.StatusCode)
		}
	}()
}
