package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func TestSign(t *testing.T) {
	body := []byte(`{"event":"analysis.completed"}`)
	secret := "topsecret"

	got := Sign(body, secret)

	if !strings.HasPrefix(got, "sha256=") {
		t.Fatalf("signature missing scheme prefix: %q", got)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if got != want {
		t.Errorf("signature mismatch: got %q want %q", got, want)
	}
}

func TestSignDependsOnSecret(t *testing.T) {
	body := []byte("payload")
	if Sign(body, "a") == Sign(body, "b") {
		t.Error("different secrets produced identical signatures")
	}
}

func TestSubscribed(t *testing.T) {
	events := []string{"analysis.completed", "bulk_analysis.completed"}
	if !subscribed(events, "analysis.completed") {
		t.Error("expected subscription match")
	}
	if subscribed(events, "project.deleted") {
		t.Error("unexpected subscription match")
	}
	if subscribed(nil, "analysis.completed") {
		t.Error("empty subscription list should match nothing")
	}
}
