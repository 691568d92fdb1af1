package entity

import "time"

// Backend payment-status strings for ledger rows. Older rows predate the
// string form and carry booleans instead; the analytics usecase folds both
// into the Paid flags.
const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
)

// LedgerRecord is one per-order commission row of the seller ledger.
type LedgerRecord struct {
	ID                       string      `json:"_id"`
	Order                    Ref[Order]  `json:"orderId"`
	Seller                   Ref[Seller] `json:"sellerId"`
	PlatformCommission       float64     `json:"platformCommission"`
	PlatformCommissionPct    float64     `json:"platformCommissionPercentage,omitempty"`
	SellerEarning            float64     `json:"sellerEarning"`
	DeliveryPartnerFee       float64     `json:"deliveryPartnerFee"`
	PlatformCommissionStatus string      `json:"platformCommissionStatus,omitempty"`
	DeliveryPartnerFeeStatus string      `json:"deliveryPartnerFeeStatus,omitempty"`
	PlatformCommissionPaid   bool        `json:"isPlatformCommissionPaid"`
	DeliveryCommissionPaid   bool        `json:"isDeliveryCommissionPaid"`
	CreatedAt                time.Time   `json:"createdAt"`
}

// EntityID implements Identifiable.
func (r LedgerRecord) EntityID() string { return r.ID }

// EffectiveDate is the row date used for filtering: the row's own timestamp,
// falling back to the order's when the backend omitted it.
func (r *LedgerRecord) EffectiveDate() time.Time {
	if !r.CreatedAt.IsZero() {
		return r.CreatedAt
	}
	if order := r.Order.Record(); order != nil {
		return order.CreatedAt
	}

	return time.Time{}
}

// DeliveryCommission is the platform's share of the shipping charge:
// shipping collected minus the partner's fee, floored at zero.
func (r *LedgerRecord) DeliveryCommission() float64 {
	var shipping float64
	if order := r.Order.Record(); order != nil {
		shipping = order.ShippingCharge
	}
	commission := shipping - r.DeliveryPartnerFee
	if commission < 0 {
		return 0
	}

	return commission
}

// DashboardStats is the aggregate block served by the backend's stats
// endpoint, extended with the ledger-derived commission total.
type DashboardStats struct {
	TotalRevenue     float64         `json:"totalRevenue"`
	TotalOrders      int             `json:"totalOrders"`
	TotalSellers     int             `json:"totalSellers"`
	TotalBuyers      int             `json:"totalBuyers"`
	OrdersByCategory []CategoryCount `json:"ordersByCategory,omitempty"`
	TotalCommission  float64         `json:"totalCommission"`
}

// CategoryCount is one bar of the category-performance chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
