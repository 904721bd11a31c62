package http

import "time"

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Contact    ContactRequest     `json:"contact"`
	Items      []OrderItemRequest `json:"items"`
}

// ContactRequest carries the customer contact captured at checkout.
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItemRequest is one order line as submitted at checkout.
type OrderItemRequest struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// PlaceOrderResponse returns the identifier of the created order.
type PlaceOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// UpdateStatusRequest moves an order to a new status.
type UpdateStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	ActorID string `json:"actorId"`
	Note    string `json:"note,omitempty"`
}

// UpdatePreparationRequest reports kitchen progress on an order.
type UpdatePreparationRequest struct {
	OrderID        string     `json:"orderId"`
	Preparation    string     `json:"preparation"`
	EstimatedReady *time.Time `json:"estimatedReady,omitempty"`
	ActorID        string     `json:"actorId"`
	Note           string     `json:"note,omitempty"`
}

// UpdateStatusResponse confirms an applied status transition.
type UpdateStatusResponse struct {
	Success   bool      `json:"success"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderSnapshotResponse is one row of the polling feed.
// Contact fields let the crew board reach the customer directly.
type OrderSnapshotResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerAddress string     `json:"customerAddress"`
	Items           string     `json:"items"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	Preparation     string     `json:"preparation"`
	EstimatedReady  *time.Time `json:"estimatedReady,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// StatisticsResponse is the rollup computed over the returned snapshots.
type StatisticsResponse struct {
	TotalCount     int     `json:"totalCount"`
	PendingCount   int     `json:"pendingCount"`
	PreparingCount int     `json:"preparingCount"`
	ReadyCount     int     `json:"readyCount"`
	CompletedCount int     `json:"completedCount"`
	CancelledCount int     `json:"cancelledCount"`
	Revenue        float64 `json:"revenue"`
}

// ListChangedOrdersResponse is the polling feed envelope.
// ServerTime lets clients use it as the since parameter of the next poll.
type ListChangedOrdersResponse struct {
	Success    bool                    `json:"success"`
	Orders     []OrderSnapshotResponse `json:"orders"`
	Statistics StatisticsResponse      `json:"statistics"`
	ServerTime time.Time               `json:"serverTime"`
}

// StatusChangeResponse is one entry of an order's status history.
type StatusChangeResponse struct {
	Previous  string    `json:"previous"`
	Next      string    `json:"next"`
	Note      string    `json:"note,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
}

// OrderStatusResponse is the customer-facing status lookup result.
type OrderStatusResponse struct {
	Success        bool                   `json:"success"`
	OrderID        string                 `json:"orderId"`
	Status         string                 `json:"status"`
	Preparation    string                 `json:"preparation"`
	EstimatedReady *time.Time             `json:"estimatedReady,omitempty"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	History        []StatusChangeResponse `json:"history"`
}

// ErrorResponse is the envelope returned on every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
