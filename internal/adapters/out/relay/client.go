// Package relay pushes order notifications to an external relay service
// over a websocket connection. The relay fans the events out to connected
// browser and mobile clients; this process only maintains the single
// outbound connection.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodcourt/internal/core/domain/services"

	"github.com/gorilla/websocket"
)

// Message is the envelope the relay expects on the wire.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// EventPayload is the serialized form of a status notification.
type EventPayload struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	CustomerID string    `json:"customerId"`
	StaffID    *string   `json:"staffId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Client maintains a single outbound websocket connection to the relay.
// The connection is dialed lazily on the first push and redialed after
// any write failure. Safe for concurrent use.
type Client struct {
	url    string
	dialer *websocket.Dialer
	logger *slog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewClient creates a relay client for the given websocket URL.
// No connection is established until the first Push.
func NewClient(url string, logger *slog.Logger) *Client {
	return &Client{
		url:    url,
		dialer: websocket.DefaultDialer,
		logger: logger.With("component", "relay_client"),
	}
}

// Push sends one notification to the relay. The caller's context bounds
// both the dial and the write. A failed write closes the connection so
// the next push starts fresh.
func (c *Client) Push(ctx context.Context, event services.Event) error {
	payload := EventPayload{
		OrderID:    event.OrderID.String(),
		Status:     event.Status.String(),
		Message:    event.Message,
		CustomerID: event.CustomerID.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.StaffID != nil {
		staffID := event.StaffID.String()
		payload.StaffID = &staffID
	}

	data, err := json.Marshal(Message{Event: "orderStatus", Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal relay message: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := c.connection(ctx)
	if err != nil {
		return fmt.Errorf("dial relay %s: %w", c.url, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			c.dropConnection()
			return fmt.Errorf("set relay write deadline: %w", err)
		}
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.dropConnection()
		return fmt.Errorf("write relay message: %w", err)
	}

	return nil
}

// Close shuts down the relay connection if one is open.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}

// connection returns the open connection, dialing if needed.
// Caller must hold c.mu.
func (c *Client) connection(ctx context.Context) (*websocket.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Connected to relay", "url", c.url)
	c.conn = conn
	return conn, nil
}

// dropConnection closes and forgets the current connection.
// Caller must hold c.mu.
func (c *Client) dropConnection() {
	if c.conn == nil {
		return
	}
	_ = c.conn.Close()
	c.conn = nil
}
