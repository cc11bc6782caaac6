package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/httpx"
)

func TestWebhookDeliversEvent(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer srv.Close()

	w := NewWebhook(config.WebhookConfig{URL: srv.URL, Enabled: true}, httpx.New(5*time.Second), zap.NewNop())
	require.True(t, w.Enabled())

	w.Notify(SubjectContentGenerated, map[string]string{"id": "a-1"})

	select {
	case body := <-received:
		var event Event
		require.NoError(t, json.Unmarshal(body, &event))
		assert.Equal(t, SubjectContentGenerated, event.Type)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was never delivered")
	}
}

func TestWebhookDisabledWithoutURL(t *testing.T) {
	w := NewWebhook(config.WebhookConfig{Enabled: true}, httpx.New(time.Second), zap.NewNop())
	assert.False(t, w.Enabled())

	// must not panic or block
	w.Notify(SubjectContentGenerated, nil)
}

func TestWebhookNilSafe(t *testing.T) {
	var w *Webhook
	assert.False(t, w.Enabled())
	w.Notify(SubjectContentGenerated, nil)
}

func TestBusDisabledWithoutConnection(t *testing.T) {
	b := NewBus(nil, zap.NewNop())
	assert.False(t, b.Enabled())

	// must be a no-op, not a panic
	b.Publish(SubjectJobStarted, map[string]string{"job": "trendDiscovery"})
}

func TestBusNilSafe(t *testing.T) {
	var b *Bus
	assert.False(t, b.Enabled())
	b.Publish(SubjectJobFinished, nil)
}
