package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// Event describes one committed order update for notification fan-out.
// It carries the final committed state; dispatch happens strictly after
// the transaction that produced it.
type Event struct {
	// OrderID identifies the updated order
	OrderID kernel.UUID

	// Status is the committed status after the transition
	Status order.Status

	// OccurredAt is when the transition was applied
	OccurredAt time.Time

	// CustomerID is the order owner, always notified
	CustomerID kernel.UUID

	// StaffID is the assigned crew member, notified when set
	StaffID *kernel.UUID

	// Message is the human-readable text; filled from the status table
	// when left empty
	Message string
}

// Callback receives events for a subscribed user.
type Callback func(event Event)

// RelayPusher sends events to the external WebSocket relay.
// Delivery is best-effort: failures are logged and swallowed, never
// propagated to the transaction that triggered the push.
type RelayPusher interface {
	Push(ctx context.Context, event Event) error
}

// getStatusMessages returns the static status-to-text lookup table used to
// derive the human-readable message of an event.
func getStatusMessages() map[order.Status]string {
	return map[order.Status]string{
		order.Pending:   "Your order has been received and is waiting for the kitchen.",
		order.Preparing: "Your order is now being prepared.",
		order.Ready:     "Your order is ready for pickup at the counter.",
		order.Completed: "Your order is complete. Enjoy your meal!",
		order.Cancelled: "Your order has been cancelled.",
	}
}

// MessageFor returns the display text for a status, falling back to a
// generic message for anything outside the table.
func MessageFor(status order.Status) string {
	if msg, ok := getStatusMessages()[status]; ok {
		return msg
	}
	return "Your order status has been updated."
}

// Subscription represents one registered callback.
// Cancel removes it from the dispatcher; cancelling twice is safe.
type Subscription struct {
	cancel func()
}

// Cancel unregisters the callback.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// NotificationDispatcher fans out committed order updates to interested
// parties: in-process subscribers keyed by user ID, plus an optional
// outbound WebSocket relay.
//
// The subscriber registry is owned by the dispatcher instance and guarded
// by a mutex; there is no package-level state, and instances are safe for
// concurrent use. Relay pushes run on their own goroutine with a bounded
// timeout so a slow or dead relay can never stall or fail the caller.
//
// Example:
//
//	dispatcher := services.NewNotificationDispatcher(relay, logger)
//	sub := dispatcher.Subscribe(customerID, func(e services.Event) {
//	    fmt.Println(e.Message)
//	})
//	defer sub.Cancel()
//
//	dispatcher.Notify(ctx, event) // after the transition committed
type NotificationDispatcher struct {
	mu          sync.RWMutex
	subscribers map[kernel.UUID]map[uint64]Callback
	nextToken   uint64

	relay        RelayPusher
	relayTimeout time.Duration
	logger       *slog.Logger
}

// defaultRelayTimeout bounds a single outbound relay push.
const defaultRelayTimeout = 5 * time.Second

// NewNotificationDispatcher creates a dispatcher with an optional relay.
// Pass a nil relay to disable outbound pushes (in-process fan-out only).
func NewNotificationDispatcher(relay RelayPusher, logger *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		subscribers:  make(map[kernel.UUID]map[uint64]Callback),
		relay:        relay,
		relayTimeout: defaultRelayTimeout,
		logger:       logger.With("component", "notification_dispatcher"),
	}
}

// Subscribe registers a callback for all events addressed to userID.
// The returned Subscription unregisters it; subscriptions are process-local
// and rebuilt per process lifetime, never persisted.
func (d *NotificationDispatcher) Subscribe(userID kernel.UUID, callback Callback) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.subscribers[userID] == nil {
		d.subscribers[userID] = make(map[uint64]Callback)
	}
	d.nextToken++
	token := d.nextToken
	d.subscribers[userID][token] = callback

	return Subscription{cancel: func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if callbacks, ok := d.subscribers[userID]; ok {
			delete(callbacks, token)
			if len(callbacks) == 0 {
				delete(d.subscribers, userID)
			}
		}
	}}
}

// Notify fans out a committed update to the subscribers of the order's
// customer and assigned staff member, then pushes to the relay.
//
// In-process callbacks run synchronously on the caller's goroutine; the
// relay push runs asynchronously with a bounded timeout and detached
// cancellation, so the already-committed transition outcome is never
// affected by delivery problems. Call exactly once per committed
// transition, after commit.
func (d *NotificationDispatcher) Notify(ctx context.Context, event Event) {
	if event.Message == "" {
		event.Message = MessageFor(event.Status)
	}

	for _, callback := range d.collectCallbacks(event) {
		callback(event)
	}

	if d.relay == nil {
		return
	}

	go func() {
		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.relayTimeout)
		defer cancel()

		if err := d.relay.Push(pushCtx, event); err != nil {
			d.logger.ErrorContext(pushCtx, "Relay push failed",
				"order_id", event.OrderID.String(),
				"status", event.Status.String(),
				"error", err)
		}
	}()
}

// collectCallbacks snapshots the matching callbacks under the read lock so
// they can be invoked without holding it.
func (d *NotificationDispatcher) collectCallbacks(event Event) []Callback {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var callbacks []Callback
	for _, callback := range d.subscribers[event.CustomerID] {
		callbacks = append(callbacks, callback)
	}
	if event.StaffID != nil && !event.StaffID.IsEqual(event.CustomerID) {
		for _, callback := range d.subscribers[*event.StaffID] {
			callbacks = append(callbacks, callback)
		}
	}
	return callbacks
}
