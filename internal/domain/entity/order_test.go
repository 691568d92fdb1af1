package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_RawStatus(t *testing.T) {
	assert.Equal(t, StatusPlaced, (&Order{}).RawStatus())
	assert.Equal(t, StatusPlaced, (&Order{OrderStatus: "  "}).RawStatus())
	assert.Equal(t, StatusShipped, (&Order{OrderStatus: "Shipped"}).RawStatus())
	assert.Equal(t, "weird", (&Order{OrderStatus: "WEIRD"}).RawStatus())
}

func TestOrder_DisplayStatus(t *testing.T) {
	partner := RefOf(&DeliveryPartner{ID: "p1"})

	tests := []struct {
		name  string
		order Order
		want  string
	}{
		{name: "no status no partner", order: Order{}, want: StatusPlaced},
		{name: "partner assigned implies confirmed", order: Order{DeliveryPartner: partner}, want: StatusConfirmed},
		{name: "bare partner id implies confirmed", order: Order{DeliveryPartner: RefID[DeliveryPartner]("p1")}, want: StatusConfirmed},
		{name: "stored terminal status wins over assignment", order: Order{OrderStatus: StatusShipped, DeliveryPartner: partner}, want: StatusShipped},
		{name: "delivered", order: Order{OrderStatus: StatusDelivered}, want: StatusDelivered},
		{name: "cancelled", order: Order{OrderStatus: StatusCancelled, DeliveryPartner: partner}, want: StatusCancelled},
		{name: "stored confirmed without partner still shows placed", order: Order{OrderStatus: StatusConfirmed}, want: StatusPlaced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.DisplayStatus())
		})
	}
}

func TestOrder_Reference(t *testing.T) {
	assert.Equal(t, "8F3A1B", (&Order{ID: "65acdeff00118f3a1b"}).Reference())
	assert.Equal(t, "AB12", (&Order{ID: "ab12"}).Reference())
	assert.Empty(t, (&Order{}).Reference())
}

func TestOrder_SellerPincode(t *testing.T) {
	resolved := Order{Seller: RefOf(&Seller{ID: "s1", Pincode: "560001"})}
	assert.Equal(t, "560001", resolved.SellerPincode())

	bare := Order{Seller: RefID[Seller]("s1")}
	assert.Empty(t, bare.SellerPincode())
}

func TestOrder_Timeline(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)

	t.Run("fresh order", func(t *testing.T) {
		order := Order{ID: "o1", CreatedAt: created}
		steps := order.Timeline()
		require.Len(t, steps, 4)

		assert.True(t, steps[0].Reached)
		require.NotNil(t, steps[0].At)
		assert.Equal(t, created, *steps[0].At)

		assert.False(t, steps[1].Reached)
		assert.False(t, steps[2].Reached)
		assert.False(t, steps[3].Reached)
	})

	t.Run("assignment reaches confirmed", func(t *testing.T) {
		order := Order{
			ID:              "o1",
			CreatedAt:       created,
			UpdatedAt:       updated,
			DeliveryPartner: RefID[DeliveryPartner]("p1"),
		}
		steps := order.Timeline()

		assert.True(t, steps[1].Reached)
		require.NotNil(t, steps[1].At)
		assert.Equal(t, updated, *steps[1].At)
		assert.False(t, steps[2].Reached)
	})

	t.Run("delivered reaches everything", func(t *testing.T) {
		order := Order{ID: "o1", CreatedAt: created, OrderStatus: StatusDelivered}
		for _, step := range order.Timeline() {
			assert.True(t, step.Reached, step.Status)
		}
	})
}

func TestLedgerRecord_DeliveryCommission(t *testing.T) {
	withOrder := func(shipping, fee float64) LedgerRecord {
		return LedgerRecord{
			Order:              RefOf(&Order{ID: "o1", ShippingCharge: shipping}),
			DeliveryPartnerFee: fee,
		}
	}

	r := withOrder(50, 30)
	assert.InDelta(t, 20, r.DeliveryCommission(), 1e-9)

	// Partner fee above the shipping collected floors at zero, never negative.
	r = withOrder(20, 35)
	assert.Zero(t, r.DeliveryCommission())

	// Unresolved order ref means no shipping is known.
	r = LedgerRecord{Order: RefID[Order]("o1"), DeliveryPartnerFee: 10}
	assert.Zero(t, r.DeliveryCommission())
}

func TestLedgerRecord_EffectiveDate(t *testing.T) {
	rowDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	orderDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	r := LedgerRecord{CreatedAt: rowDate, Order: RefOf(&Order{CreatedAt: orderDate})}
	assert.Equal(t, rowDate, r.EffectiveDate())

	r = LedgerRecord{Order: RefOf(&Order{CreatedAt: orderDate})}
	assert.Equal(t, orderDate, r.EffectiveDate())

	r = LedgerRecord{Order: RefID[Order]("o1")}
	assert.True(t, r.EffectiveDate().IsZero())
}
