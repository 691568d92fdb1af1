package impl

import (
	"ketalog/internal/domain/entity"
)

// mergeOrder folds the backend's reply for one order into the cached copy.
//
// Scalars the reply carries win. Relational fields keep the cached resolved
// record when the reply downgrades them to a bare ID or omits them entirely,
// so a mutation response with unpopulated references never wipes names and
// shops off the board.
func mergeOrder(cached, reply *entity.Order) *entity.Order {
	merged := *reply

	if merged.ID == "" {
		merged.ID = cached.ID
	}
	if merged.OrderStatus == "" {
		merged.OrderStatus = cached.OrderStatus
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = cached.CreatedAt
	}
	if merged.UpdatedAt.IsZero() {
		merged.UpdatedAt = cached.UpdatedAt
	}
	if merged.TotalAmount == 0 {
		merged.TotalAmount = cached.TotalAmount
	}
	if merged.ShippingCharge == 0 {
		merged.ShippingCharge = cached.ShippingCharge
	}
	if merged.Address == nil {
		merged.Address = cached.Address
	}

	if merged.Buyer == nil {
		merged.Buyer = cached.Buyer
	}

	merged.Seller = mergeRef(cached.Seller, merged.Seller)
	merged.DeliveryPartner = mergeRef(cached.DeliveryPartner, merged.DeliveryPartner)

	if len(merged.Items) == 0 {
		merged.Items = cached.Items
	} else if len(merged.Items) == len(cached.Items) {
		for i := range merged.Items {
			merged.Items[i].Product = mergeRef(cached.Items[i].Product, merged.Items[i].Product)
		}
	}

	return &merged
}

// mergeRef keeps the cached resolved record when the reply carries the same
// entity as a bare ID, or omits the reference. A reply that names a
// different entity, resolved or not, wins.
func mergeRef[T entity.Identifiable](cached, reply entity.Ref[T]) entity.Ref[T] {
	if reply.IsZero() {
		return cached
	}
	if reply.Resolved() {
		return reply
	}
	if cached.Resolved() && cached.ID() == reply.ID() {
		return cached
	}

	return reply
}
