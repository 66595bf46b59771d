// Package webhook delivers signed event notifications to endpoints
// registered per project. Delivery is best-effort: failures are logged, never
// propagated to the operation that triggered the event.
package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"securereq/internal/database"
	"securereq/internal/models"
)

var client = &http.Client{Timeout: 10 * time.Second}

type payload struct {
	Event     string      `json:"event"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Sign computes the signature header value for a serialized payload.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Fire posts the event to every active webhook of the project subscribed to
// this event type.
func Fire(projectID uint, eventType string, data interface{}) {
	var hooks []models.Webhook
	if err := database.DB.
		Where("project_id = ? AND is_active = ?", projectID, true).
		Find(&hooks).Error; err != nil {
		log.Printf("webhook lookup failed for project %d: %v", projectID, err)
		return
	}

	for _, wh := range hooks {
		if !subscribed(wh.EventTypes, eventType) {
			continue
		}

		body, err := json.Marshal(payload{
			Event:     eventType,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Data:      data,
		})
		if err != nil {
			log.Printf("webhook payload marshal failed: %v", err)
			continue
		}

		req, err := http.NewRequest("POST", wh.URL, bytes.NewReader(body))
		if err != nil {
			log.Printf("webhook request build failed for %s: %v", wh.URL, err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Webhook-Signature", Sign(body, wh.Secret))

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("webhook delivery to %s failed: %v", wh.URL, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			log.Printf("webhook delivery to %s returned %s", wh.URL, resp.Status)
		}
	}
}

// Ping sends a synchronous test event to a single webhook and returns the
// endpoint's HTTP status code. Unlike Fire, errors propagate so the caller
// can report them.
func Ping(wh models.Webhook) (int, error) {
	body, err := json.Marshal(payload{
		Event:     "ping",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      map[string]string{"message": "webhook connectivity test"},
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest("POST", wh.URL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Signature", Sign(body, wh.Secret))

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func subscribed(eventTypes []string, event string) bool {
	for _, et := range eventTypes {
		if et == event {
			return true
		}
	}
	return false
}
