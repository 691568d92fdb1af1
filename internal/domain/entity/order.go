// Package entity contains the core business objects of the admin console,
// mirroring the documents the marketplace backend serves.
package entity

import (
	"strings"
	"time"
)

// Raw order statuses as stored by the backend. The stored value is free-form
// and may be absent entirely; DisplayStatus normalises it for the dashboard.
const (
	StatusPlaced     = "placed"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order is a customer order as the admin console sees it. Relational fields
// (items, buyer, seller) are populated by the backend's list endpoint but may
// come back as bare identifiers from mutation endpoints, hence the Refs.
type Order struct {
	ID              string               `json:"_id"`
	Items           []OrderItem          `json:"items,omitempty"`
	Buyer           *Buyer               `json:"buyer,omitempty"`
	Seller          Ref[Seller]          `json:"sellerId"`
	DeliveryPartner Ref[DeliveryPartner] `json:"deliveryPartner"`
	Address         *Address             `json:"address,omitempty"`
	TotalAmount     float64              `json:"totalAmount"`
	ShippingCharge  float64              `json:"shippingCharge"`
	OrderStatus     string               `json:"orderStatus,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Product  Ref[Product] `json:"product"`
	Quantity int          `json:"quantity"`
	Price    float64      `json:"price"`
}

// Product carries the denormalised product fields the dashboard displays.
type Product struct {
	ID         string  `json:"_id"`
	Title      string  `json:"title"`
	Category   string  `json:"category,omitempty"`
	Commission float64 `json:"commission,omitempty"`
}

// Address is a shipping destination.
type Address struct {
	FullAddress string `json:"fullAddress,omitempty"`
	City        string `json:"city,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
}

// EntityID implements Identifiable.
func (o Order) EntityID() string { return o.ID }

// EntityID implements Identifiable.
func (p Product) EntityID() string { return p.ID }

// RawStatus returns the stored status lowercased, never empty.
func (o *Order) RawStatus() string {
	status := strings.ToLower(strings.TrimSpace(o.OrderStatus))
	if status == "" {
		return StatusPlaced
	}

	return status
}

// terminalStatus reports whether the backend has advanced the order past the
// point where assignment state matters for display.
func terminalStatus(status string) bool {
	switch status {
	case StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}

	return false
}

// DisplayStatus derives the status shown on the dashboard. The backend does
// not advance the stored status when a delivery partner is assigned, so the
// console infers "confirmed" from the assignment instead. Stored terminal
// statuses always win.
func (o *Order) DisplayStatus() string {
	if status := o.RawStatus(); terminalStatus(status) {
		return status
	}
	if !o.DeliveryPartner.IsZero() {
		return StatusConfirmed
	}

	return StatusPlaced
}

// Delivered reports whether the stored status is delivered.
func (o *Order) Delivered() bool {
	return o.RawStatus() == StatusDelivered
}

// PartnerAssigned reports whether a delivery partner reference is present.
func (o *Order) PartnerAssigned() bool {
	return !o.DeliveryPartner.IsZero()
}

// Reference is the short human-facing order reference (last six characters
// of the identifier, uppercased), as printed on notifications and tables.
func (o *Order) Reference() string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}

	return strings.ToUpper(id)
}

// SellerPincode returns the seller's service pincode when the seller record
// is populated locally, else the empty string.
func (o *Order) SellerPincode() string {
	if seller := o.Seller.Record(); seller != nil {
		return seller.Pincode
	}

	return ""
}

// TimelineStep is one stage of the order's lifecycle as rendered on the
// order-detail screen.
type TimelineStep struct {
	Status  string     `json:"status"`
	At      *time.Time `json:"at,omitempty"`
	Reached bool       `json:"reached"`
}

// Timeline derives the placed → confirmed → shipped → delivered progression.
// Confirmation is inferred from partner assignment like DisplayStatus.
func (o *Order) Timeline() []TimelineStep {
	status := o.RawStatus()
	confirmed := o.PartnerAssigned() ||
		status == StatusConfirmed || status == StatusProcessing ||
		status == StatusShipped || status == StatusDelivered
	shipped := status == StatusShipped || status == StatusDelivered

	created := o.CreatedAt
	steps := []TimelineStep{
		{Status: StatusPlaced, At: &created, Reached: true},
		{Status: StatusConfirmed, Reached: confirmed},
		{Status: StatusShipped, Reached: shipped},
		{Status: StatusDelivered, Reached: status == StatusDelivered},
	}
	if confirmed {
		updated := o.UpdatedAt
		steps[1].At = &updated
	}

	return steps
}
