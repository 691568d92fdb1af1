package impl

import (
	"testing"
	"time"

	"ketalog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOrder_ReplyScalarsWin(t *testing.T) {
	cached := &entity.Order{
		ID:          "o1",
		OrderStatus: entity.StatusPlaced,
		TotalAmount: 100,
	}
	reply := &entity.Order{
		ID:          "o1",
		OrderStatus: entity.StatusShipped,
		TotalAmount: 120,
	}

	merged := mergeOrder(cached, reply)
	assert.Equal(t, entity.StatusShipped, merged.OrderStatus)
	assert.InDelta(t, 120, merged.TotalAmount, 1e-9)
}

func TestMergeOrder_CachedFillsReplyGaps(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cached := &entity.Order{
		ID:             "o1",
		OrderStatus:    entity.StatusPlaced,
		TotalAmount:    100,
		ShippingCharge: 40,
		CreatedAt:      created,
		Buyer:          &entity.Buyer{ID: "b1", FullName: "Asha"},
		Address:        &entity.Address{Pincode: "560001"},
	}
	reply := &entity.Order{ID: "o1"}

	merged := mergeOrder(cached, reply)
	assert.Equal(t, entity.StatusPlaced, merged.OrderStatus)
	assert.InDelta(t, 100, merged.TotalAmount, 1e-9)
	assert.InDelta(t, 40, merged.ShippingCharge, 1e-9)
	assert.Equal(t, created, merged.CreatedAt)
	require.NotNil(t, merged.Buyer)
	assert.Equal(t, "Asha", merged.Buyer.FullName)
	require.NotNil(t, merged.Address)
	assert.Equal(t, "560001", merged.Address.Pincode)
}

func TestMergeOrder_KeepsResolvedSellerOverBareID(t *testing.T) {
	cached := &entity.Order{
		ID:     "o1",
		Seller: entity.RefOf(&entity.Seller{ID: "s1", ShopName: "Fresh Mart"}),
	}
	reply := &entity.Order{
		ID:     "o1",
		Seller: entity.RefID[entity.Seller]("s1"),
	}

	merged := mergeOrder(cached, reply)
	require.True(t, merged.Seller.Resolved())
	assert.Equal(t, "Fresh Mart", merged.Seller.Record().ShopName)
}

func TestMergeOrder_DifferentSellerIDWins(t *testing.T) {
	cached := &entity.Order{
		ID:     "o1",
		Seller: entity.RefOf(&entity.Seller{ID: "s1", ShopName: "Fresh Mart"}),
	}
	reply := &entity.Order{
		ID:     "o1",
		Seller: entity.RefID[entity.Seller]("s2"),
	}

	merged := mergeOrder(cached, reply)
	assert.False(t, merged.Seller.Resolved())
	assert.Equal(t, "s2", merged.Seller.ID())
}

func TestMergeOrder_ResolvedReplyWins(t *testing.T) {
	cached := &entity.Order{
		ID:     "o1",
		Seller: entity.RefOf(&entity.Seller{ID: "s1", ShopName: "Old Name"}),
	}
	reply := &entity.Order{
		ID:     "o1",
		Seller: entity.RefOf(&entity.Seller{ID: "s1", ShopName: "New Name"}),
	}

	merged := mergeOrder(cached, reply)
	assert.Equal(t, "New Name", merged.Seller.Record().ShopName)
}

func TestMergeOrder_EmptyReplyRefKeepsCached(t *testing.T) {
	cached := &entity.Order{
		ID:              "o1",
		DeliveryPartner: entity.RefOf(&entity.DeliveryPartner{ID: "p1", FullName: "Ravi"}),
	}
	reply := &entity.Order{ID: "o1"}

	merged := mergeOrder(cached, reply)
	require.True(t, merged.DeliveryPartner.Resolved())
	assert.Equal(t, "Ravi", merged.DeliveryPartner.Record().FullName)
}

func TestMergeOrder_ItemProducts(t *testing.T) {
	product := &entity.Product{ID: "pr1", Title: "Basmati Rice 5kg"}
	cached := &entity.Order{
		ID: "o1",
		Items: []entity.OrderItem{
			{Product: entity.RefOf(product), Quantity: 2, Price: 450},
		},
	}

	t.Run("reply without items keeps cached lines", func(t *testing.T) {
		merged := mergeOrder(cached, &entity.Order{ID: "o1"})
		require.Len(t, merged.Items, 1)
		assert.Equal(t, "Basmati Rice 5kg", merged.Items[0].Product.Record().Title)
	})

	t.Run("same length merges product refs per line", func(t *testing.T) {
		reply := &entity.Order{
			ID: "o1",
			Items: []entity.OrderItem{
				{Product: entity.RefID[entity.Product]("pr1"), Quantity: 3, Price: 450},
			},
		}

		merged := mergeOrder(cached, reply)
		require.Len(t, merged.Items, 1)
		assert.Equal(t, 3, merged.Items[0].Quantity)
		require.True(t, merged.Items[0].Product.Resolved())
		assert.Equal(t, "Basmati Rice 5kg", merged.Items[0].Product.Record().Title)
	})
}
