// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"ketalog/internal/domain/entity"
)

/// OrderBoardUsecase defines the interface for the order management board:
// the cached order list, the poll cycle, and every per-order action.
type OrderBoardUsecase interface {
	// Refresh fetches the order list from the backend and replaces the
	// cached snapshot. Stale responses from overlapping refreshes are
	// discarded, never merged.
	Refresh(ctx context.Context) (*BoardSnapshot, error)

	// List returns the cached snapshot filtered by the query. It never
	// touches the backend.
	List(ctx context.Context, query ListOrdersQuery) (*BoardSnapshot, error)

	// Get returns one cached order by ID.
	Get(ctx context.Context, orderID string) (*entity.Order, error)

	// Timeline returns the fulfillment progress steps for one order.
	Timeline(ctx context.Context, orderID string) ([]entity.TimelineStep, error)

	// AssignPartner assigns a delivery partner to an order, merges the
	// backend's answer into the cached order, and builds the WhatsApp
	// briefings for the partner and the seller.
	AssignPartner(ctx context.Context, input *AssignPartnerInput) (*AssignPartnerResult, error)

	// UnassignPartner removes the delivery partner from an order.
	UnassignPartner(ctx context.Context, orderID string) (*entity.Order, error)

	// MarkDelivered moves an assigned order to the delivered state.
	MarkDelivered(ctx context.Context, orderID string) (*entity.Order, error)

	// Delete removes an order. The cached copy is dropped only after the
	// backend acknowledges.
	Delete(ctx context.Context, orderID string) error

	// NotifySeller builds the "pack the order" WhatsApp message for the
	// order's seller, resolving the seller from the directory when the
	// order carries only an ID.
	NotifySeller(ctx context.Context, orderID string) (*SellerNotice, error)

	// WhatsAppQR renders the click-to-chat link for the given audience
	// ("partner" or "seller") as a PNG QR code.
	WhatsAppQR(ctx context.Context, orderID, audience string) ([]byte, error)
}

// --- Input DTOs ---

// ListOrdersQuery filters the cached order snapshot.
type ListOrdersQuery struct {
	// Search matches order reference, buyer name or shop name,
	// case-insensitively. Empty means no filtering.
	Search string `json:"search"`

	// Bucket selects a partition: "active", "delivered", or "" for both.
	Bucket string `json:"bucket"`
}

// AssignPartnerInput defines the data required to assign a delivery partner.
type AssignPartnerInput struct {
	OrderID   string `json:"order_id"`
	PartnerID string `json:"partner_id"`

	// OverridePincode lets the operator assign a partner whose pincode
	// does not match the seller's.
	OverridePincode bool `json:"override_pincode"`
}

// --- Output DTOs ---

// BoardSnapshot is the order board as the console currently sees it.
type BoardSnapshot struct {
	Active      []entity.Order `json:"active"`
	Delivered   []entity.Order `json:"delivered"`
	Sequence    uint64         `json:"sequence"`
	RefreshedAt time.Time      `json:"refreshed_at"`

	// NewOrders lists orders that appeared since the previous snapshot.
	// Only Refresh populates it.
	NewOrders []entity.Order `json:"new_orders,omitempty"`
}

// AssignPartnerResult carries the merged order plus the ready-to-send
// WhatsApp briefings. Opening the chats stays the operator's move.
type AssignPartnerResult struct {
	Order          *entity.Order `json:"order"`
	PartnerMessage string        `json:"partner_message"`
	PartnerLink    string        `json:"partner_link"`
	SellerMessage  string        `json:"seller_message,omitempty"`
	SellerLink     string        `json:"seller_link,omitempty"`
}

// SellerNotice is the "pack the order" message for a seller.
type SellerNotice struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}
