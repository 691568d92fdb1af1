// Package whatsapp builds the WhatsApp briefings and click-to-chat links
// the console offers the operator. Nothing here talks to WhatsApp; the
// operator opens the chat themselves.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"ketalog/internal/domain/entity"
	"ketalog/internal/domain/service"
)

const (
	fallbackContact = "N/A"
	fallbackAddress = "Address not set"
)

// Composer implements service.WhatsAppComposer.
type Composer struct {
	countryCode string
}

// NewComposer creates a composer. countryCode is prepended to ten-digit
// mobile numbers when building wa.me links, e.g. "91".
func NewComposer(countryCode string) service.WhatsAppComposer {
	return &Composer{countryCode: strings.TrimSpace(countryCode)}
}

// PartnerMessage builds the pickup-and-deliver briefing for a delivery
// partner. Missing contact or address details degrade to placeholders
// instead of dropping lines, so the partner always sees the full shape.
func (c *Composer) PartnerMessage(a service.PartnerAssignment) string {
	order := a.Order

	shopName := fallbackContact
	sellerMobile := fallbackContact
	pickupAddress := fallbackAddress
	if a.Seller != nil {
		if a.Seller.ShopName != "" {
			shopName = a.Seller.ShopName
		}
		if a.Seller.Mobile != "" {
			sellerMobile = a.Seller.Mobile
		}
		if a.Seller.Address != "" {
			pickupAddress = a.Seller.Address
		}
	}

	buyerName := fallbackContact
	buyerMobile := fallbackContact
	if order.Buyer != nil {
		if order.Buyer.FullName != "" {
			buyerName = order.Buyer.FullName
		}
		if order.Buyer.Mobile != "" {
			buyerMobile = order.Buyer.Mobile
		}
	}

	dropAddress := fallbackAddress
	if order.Address != nil && order.Address.FullAddress != "" {
		dropAddress = order.Address.FullAddress
		if order.Address.Pincode != "" {
			dropAddress += " - " + order.Address.Pincode
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New delivery assignment\n\n")
	fmt.Fprintf(&b, "Order #%s\n\n", order.Reference())
	fmt.Fprintf(&b, "Pickup: %s (%s)\n", shopName, sellerMobile)
	fmt.Fprintf(&b, "Pickup address: %s\n\n", pickupAddress)
	fmt.Fprintf(&b, "Deliver to: %s (%s)\n", buyerName, buyerMobile)
	fmt.Fprintf(&b, "Delivery address: %s\n\n", dropAddress)
	fmt.Fprintf(&b, "%s\n", itemsLine(order))
	fmt.Fprintf(&b, "Collect: Rs %.2f", order.TotalAmount)

	return b.String()
}

// SellerMessage builds the "pack the order" notice for a seller.
func (c *Composer) SellerMessage(order *entity.Order, seller *entity.Seller) string {
	name := fallbackContact
	if seller != nil && seller.OwnerName != "" {
		name = seller.OwnerName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	fmt.Fprintf(&b, "You have a new order #%s. Please keep it packed and ready for pickup.\n\n", order.Reference())
	fmt.Fprintf(&b, "%s\n", itemsLine(order))
	fmt.Fprintf(&b, "Order value: Rs %.2f", order.TotalAmount)

	return b.String()
}

// Link builds a wa.me click-to-chat URL. Ten-digit numbers get the
// configured country code prepended; longer numbers are assumed to carry
// their own.
func (c *Composer) Link(mobile, message string) string {
	digits := digitsOnly(mobile)
	if len(digits) == 10 && c.countryCode != "" {
		digits = c.countryCode + digits
	}

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

func itemsLine(order *entity.Order) string {
	if len(order.Items) == 0 {
		return "Items: " + fallbackContact
	}

	parts := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		title := fallbackContact
		if product := item.Product.Record(); product != nil && product.Title != "" {
			title = product.Title
		}
		parts = append(parts, fmt.Sprintf("%s x%d", title, item.Quantity))
	}

	return "Items: " + strings.Join(parts, ", ")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
