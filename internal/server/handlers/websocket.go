// internal/server/handlers/websocket.go

package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Timing for the event stream connection.
const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 512
	wsSendBuffer     = 64
)

// Subjects bridged from the event bus to connected clients.
var wsSubjects = []string{"content.>", "jobs.>"}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// eventClient is one connected event-stream subscriber. The stream is
// one-way: bus events flow out, inbound frames are read only to service
// control messages.
type eventClient struct {
	conn      *websocket.Conn
	send      chan []byte
	subs      []*nats.Subscription
	closeOnce sync.Once
	logger    *zap.Logger
}

// EventStreamHandler upgrades the connection and bridges pipeline and job
// events from NATS to the client.
func EventStreamHandler(natsConn *nats.Conn, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &eventClient{
			conn:   conn,
			send:   make(chan []byte, wsSendBuffer),
			logger: logger,
		}

		for _, subject := range wsSubjects {
			sub, err := natsConn.Subscribe(subject, func(msg *nats.Msg) {
				select {
				case client.send <- msg.Data:
				default:
					// slow consumer, drop the event
				}
			})
			if err != nil {
				logger.Warn("event subscription failed",
					zap.String("subject", subject),
					zap.Error(err))
				client.close()
				return
			}
			client.subs = append(client.subs, sub)
		}

		go client.writePump()
		go client.readPump()

		logger.Debug("event stream client connected",
			zap.String("remote", r.RemoteAddr))
	}
}

// readPump consumes control frames and detects disconnects.
func (c *eventClient) readPump() {
	defer c.close()

	c.conn.SetReadLimit(wsMaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("event stream read error", zap.Error(err))
			}
			return
		}
	}
}

// writePump forwards queued events to the client, batching whatever has
// accumulated into one frame, and keeps the connection alive with pings.
func (c *eventClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *eventClient) close() {
	c.closeOnce.Do(func() {
		for _, sub := range c.subs {
			sub.Unsubscribe()
		}
		c.conn.Close()
	})
}
