// internal/notify/notify.go

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"clipforge/internal/config"
	"clipforge/internal/httpx"
)

// Event subjects published on the bus and mirrored to the WebSocket stream.
const (
	SubjectContentGenerated = "content.generated"
	SubjectContentPublished = "content.published"
	SubjectJobStarted       = "jobs.started"
	SubjectJobFinished      = "jobs.finished"
)

// Event is the envelope for bus and webhook notifications.
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Bus publishes events to NATS. A nil connection disables it; every publish
// is best-effort and failures are only logged.
type Bus struct {
	nc     *nats.Conn
	logger *zap.Logger
}

// NewBus creates the event bus. nc may be nil when NATS is not configured.
func NewBus(nc *nats.Conn, logger *zap.Logger) *Bus {
	return &Bus{nc: nc, logger: logger}
}

// Enabled reports whether a bus connection exists.
func (b *Bus) Enabled() bool {
	return b != nil && b.nc != nil
}

// Publish sends an event on the subject. No-op when the bus is disabled.
func (b *Bus) Publish(subject string, data interface{}) {
	if !b.Enabled() {
		return
	}

	payload, err := json.Marshal(Event{
		Type:      subject,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		b.logger.Warn("event encoding failed", zap.String("subject", subject), zap.Error(err))
		return
	}

	if err := b.nc.Publish(subject, payload); err != nil {
		b.logger.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
	}
}

// Webhook posts events to a configured URL. Delivery is fire-and-forget:
// the pipeline never waits on it and failures are logged, never returned.
type Webhook struct {
	url     string
	enabled bool
	timeout time.Duration
	http    *httpx.Client
	logger  *zap.Logger
}

// NewWebhook creates the webhook notifier from config.
func NewWebhook(cfg config.WebhookConfig, httpClient *httpx.Client, logger *zap.Logger) *Webhook {
	return &Webhook{
		url:     cfg.URL,
		enabled: cfg.Enabled && cfg.URL != "",
		timeout: 30 * time.Second,
		http:    httpClient,
		logger:  logger,
	}
}

// Enabled reports whether notifications will be sent.
func (w *Webhook) Enabled() bool {
	return w != nil && w.enabled
}

// Notify delivers the event asynchronously. The goroutine carries its own
// context so a finished pipeline call does not cancel the delivery.
func (w *Webhook) Notify(event string, data interface{}) {
	if !w.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()

		err := w.http.Do(ctx, httpx.Request{
			Method: http.MethodPost,
			URL:    w.url,
			Body: Event{
				Type:      event,
				Timestamp: time.Now().UTC(),
				Data:      data,
			},
		})
		if err != nil {
			w.logger.Warn("webhook notification failed",
				zap.String("event", event),
				zap.Error(err))
			return
		}

		w.logger.Debug("webhook notified", zap.String("event", event))
	}()
}
