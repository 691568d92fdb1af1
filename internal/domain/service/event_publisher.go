package service

import (
	"context"
)

// Order event types published to the message queue.
const (
	OrderEventAssigned   = "order.assigned"
	OrderEventUnassigned = "order.unassigned"
	OrderEventDelivered  = "order.delivered"
	OrderEventDeleted    = "order.deleted"
	OrderEventNew        = "order.new"
)

// OrderEvent represents an order lifecycle change fanned out to downstream consumers
type OrderEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	OrderID   string `json:"order_id"`
	SellerID  string `json:"seller_id,omitempty"`
	PartnerID string `json:"partner_id,omitempty"`
	Status    string `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
