package service

import (
	"ketalog/internal/domain/entity"
)

// PartnerAssignment bundles everything the partner briefing message needs.
// Seller may be nil when the order's seller reference never resolved.
type PartnerAssignment struct {
	Order   *entity.Order
	Seller  *entity.Seller
	Partner *entity.DeliveryPartner
}

// WhatsAppComposer builds the WhatsApp messages and click-to-chat links the
// console hands back to the operator. Message building is pure: composing a
// message never opens a chat or touches the network.
type WhatsAppComposer interface {
	// PartnerMessage builds the pickup-and-deliver briefing sent to a
	// delivery partner after assignment.
	PartnerMessage(a PartnerAssignment) string

	// SellerMessage builds the "pack the order" notice sent to a seller.
	SellerMessage(order *entity.Order, seller *entity.Seller) string

	// Link builds a wa.me click-to-chat URL for the given mobile number
	// and prefilled message.
	Link(mobile, message string) string
}
