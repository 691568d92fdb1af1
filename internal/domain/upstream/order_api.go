// Package upstream defines the interfaces for the marketplace backend API.
// These interfaces act as a contract between the domain/application layers and the HTTP client infrastructure.
package upstream

import (
	"context"
	"errors"

	"ketalog/internal/domain/entity"
)

// ErrNotFound is a domain-specific error returned when the backend reports a missing resource.
var ErrNotFound = errors.New("resource not found upstream")

// ErrUnauthorized is returned when the backend rejects the session token.
var ErrUnauthorized = errors.New("session rejected upstream")

// OrderAPI defines the order operations exposed by the marketplace backend.
// The application layer will depend on this interface, not the concrete implementation.
type OrderAPI interface {
	// ListOrders retrieves every order visible to the admin console.
	ListOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrder retrieves a single order by its ID.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// AssignPartner assigns a delivery partner to an order and returns the
	// order as the backend now sees it.
	AssignPartner(ctx context.Context, orderID, partnerID string) (*entity.Order, error)

	// UnassignPartner removes the delivery partner from an order.
	UnassignPartner(ctx context.Context, orderID string) (*entity.Order, error)

	// UpdateStatus moves an order to the given status via the dedicated
	// status endpoint.
	UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error)

	// PatchOrder updates arbitrary order fields via the generic order
	// endpoint. Used as a fallback when the status endpoint is missing.
	PatchOrder(ctx context.Context, orderID string, fields map[string]any) (*entity.Order, error)

	// DeleteOrder removes an order permanently.
	DeleteOrder(ctx context.Context, orderID string) error
}
