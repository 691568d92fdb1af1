package impl

import (
	"context"
	"testing"
	"time"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/upstream"
	mockUpstream "ketalog/internal/mocks/upstream"
	"ketalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsFixtures struct {
	service   usecase.AnalyticsUsecase
	analytics *mockUpstream.MockAnalyticsAPI
}

func createTestAnalyticsService(t *testing.T) analyticsFixtures {
	analytics := mockUpstream.NewMockAnalyticsAPI(t)

	return analyticsFixtures{
		service:   NewAnalyticsService(analytics),
		analytics: analytics,
	}
}

func ledgerRow(id string, date time.Time, platform float64) entity.LedgerRecord {
	return entity.LedgerRecord{
		ID:                 id,
		Order:              entity.RefOf(&entity.Order{ID: "order-" + id, TotalAmount: 200, ShippingCharge: 40}),
		Seller:             entity.RefOf(&entity.Seller{ID: "s1", ShopName: "Fresh Mart"}),
		PlatformCommission: platform,
		SellerEarning:      150,
		DeliveryPartnerFee: 25,
		CreatedAt:          date,
	}
}

func TestRangeBounds(t *testing.T) {
	// Wednesday, 2026-03-04.
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	t.Run("today", func(t *testing.T) {
		from, to, bounded, err := rangeBounds(&usecase.LedgerQuery{Range: usecase.RangeToday}, now)
		require.NoError(t, err)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("week starts on sunday", func(t *testing.T) {
		from, to, bounded, err := rangeBounds(&usecase.LedgerQuery{Range: usecase.RangeWeek}, now)
		require.NoError(t, err)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("month", func(t *testing.T) {
		from, to, bounded, err := rangeBounds(&usecase.LedgerQuery{Range: usecase.RangeMonth}, now)
		require.NoError(t, err)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("custom range is end inclusive", func(t *testing.T) {
		fromDay := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		toDay := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
		from, to, bounded, err := rangeBounds(&usecase.LedgerQuery{Range: usecase.RangeCustom, From: &fromDay, To: &toDay}, now)
		require.NoError(t, err)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("custom range missing bounds", func(t *testing.T) {
		_, _, _, err := rangeBounds(&usecase.LedgerQuery{Range: usecase.RangeCustom}, now)
		assert.Error(t, err)
	})

	t.Run("custom range reversed", func(t *testing.T) {
		fromDay := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		toDay := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		_, _, _, err := rangeBounds(&usecase.LedgerQuery{Range: usecase.RangeCustom, From: &fromDay, To: &toDay}, now)
		assert.Error(t, err)
	})

	t.Run("all time and empty are unbounded", func(t *testing.T) {
		for _, r := range []string{usecase.RangeAllTime, ""} {
			_, _, bounded, err := rangeBounds(&usecase.LedgerQuery{Range: r}, now)
			require.NoError(t, err)
			assert.False(t, bounded)
		}
	})

	t.Run("unknown range rejected", func(t *testing.T) {
		_, _, _, err := rangeBounds(&usecase.LedgerQuery{Range: "fortnight"}, now)
		assert.Error(t, err)
	})
}

func TestAnalyticsService_Ledger_AllTime(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	undated := ledgerRow("r3", time.Time{}, 5)
	undated.Order = entity.RefID[entity.Order]("order-r3")

	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
		ledgerRow("r1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 20),
		ledgerRow("r2", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 10),
		undated,
	}, nil)

	view, err := fx.service.Ledger(ctx, &usecase.LedgerQuery{Range: usecase.RangeAllTime})
	require.NoError(t, err)

	// Undated rows stay visible in the all-time view.
	assert.Len(t, view.Records, 3)
	assert.Equal(t, 3, view.Totals.Orders)
	// Revenue counts only rows with a resolved order.
	assert.InDelta(t, 400, view.Totals.Revenue, 1e-9)
	// Delivery commission is shipping minus partner fee (40-25) per dated row.
	assert.InDelta(t, 30, view.Totals.DeliveryCommission, 1e-9)
	assert.InDelta(t, 35, view.Totals.PlatformCommission, 1e-9)
	assert.InDelta(t, 65, view.Totals.TotalCommission, 1e-9)
	assert.InDelta(t, 450, view.Totals.SellerPayout, 1e-9)
}

func TestAnalyticsService_Ledger_BoundedRangeDropsUndated(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	today := time.Now()
	undated := ledgerRow("r2", time.Time{}, 10)
	undated.Order = entity.RefID[entity.Order]("order-r2")

	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
		ledgerRow("r1", today, 20),
		undated,
		ledgerRow("r3", today.AddDate(0, 0, -40), 15),
	}, nil)

	view, err := fx.service.Ledger(ctx, &usecase.LedgerQuery{Range: usecase.RangeToday})
	require.NoError(t, err)
	require.Len(t, view.Records, 1)
	assert.Equal(t, "r1", view.Records[0].ID)
}

func TestAnalyticsService_Ledger_FoldsStatusStrings(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	row := ledgerRow("r1", time.Now(), 20)
	row.PlatformCommissionStatus = entity.PaymentCompleted
	row.PlatformCommissionPaid = false // legacy flag out of step
	row.DeliveryPartnerFeeStatus = entity.PaymentPending
	row.DeliveryCommissionPaid = true

	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{row}, nil)

	view, err := fx.service.Ledger(ctx, &usecase.LedgerQuery{Range: usecase.RangeAllTime})
	require.NoError(t, err)
	require.Len(t, view.Records, 1)

	// The status string wins over the stale boolean in both directions.
	assert.True(t, view.Records[0].PlatformCommissionPaid)
	assert.False(t, view.Records[0].DeliveryCommissionPaid)
}

func TestAnalyticsService_Ledger_Search(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	other := ledgerRow("r2", time.Now(), 10)
	other.Seller = entity.RefOf(&entity.Seller{ID: "s2", ShopName: "Spice Corner"})

	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
		ledgerRow("r1", time.Now(), 20),
		other,
	}, nil)

	view, err := fx.service.Ledger(ctx, &usecase.LedgerQuery{Range: usecase.RangeAllTime, Search: "spice"})
	require.NoError(t, err)
	require.Len(t, view.Records, 1)
	assert.Equal(t, "r2", view.Records[0].ID)
}

func TestAnalyticsService_TogglePayment_Success(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	row := ledgerRow("r1", time.Now(), 20)
	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{row}, nil)

	updated := row
	updated.PlatformCommissionStatus = entity.PaymentCompleted
	fx.analytics.EXPECT().
		UpdatePaymentStatus(ctx, "r1", upstream.PaymentFieldPlatform, true).
		Return(&updated, nil)

	record, err := fx.service.TogglePayment(ctx, "r1", upstream.PaymentFieldPlatform)
	require.NoError(t, err)
	assert.True(t, record.PlatformCommissionPaid)
}

func TestAnalyticsService_TogglePayment_RollsBackOnFailure(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	row := ledgerRow("r1", time.Now(), 20)
	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{row}, nil).Once()

	fx.analytics.EXPECT().
		UpdatePaymentStatus(ctx, "r1", upstream.PaymentFieldDelivery, true).
		Return(nil, errors.New("backend exploded")).
		Once()

	_, err := fx.service.TogglePayment(ctx, "r1", upstream.PaymentFieldDelivery)
	assert.Error(t, err)

	// A second toggle still targets true: the optimistic flip was rolled back.
	fx.analytics.EXPECT().
		UpdatePaymentStatus(ctx, "r1", upstream.PaymentFieldDelivery, true).
		Return(&row, nil)

	_, err = fx.service.TogglePayment(ctx, "r1", upstream.PaymentFieldDelivery)
	require.NoError(t, err)
}

func TestAnalyticsService_TogglePayment_RollbackSurvivesConcurrentRefresh(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
		ledgerRow("r0", day, 5),
		ledgerRow("r1", day, 20),
	}, nil).Once()

	fx.analytics.EXPECT().
		UpdatePaymentStatus(ctx, "r1", upstream.PaymentFieldPlatform, true).
		RunAndReturn(func(_ context.Context, _, _ string, _ bool) (*entity.LedgerRecord, error) {
			// A refresh lands mid-flight and reorders the cache, so the row
			// being toggled no longer sits at the position it started at.
			fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
				ledgerRow("r1", day, 20),
				ledgerRow("r0", day, 5),
			}, nil).Once()
			_, err := fx.service.Ledger(ctx, &usecase.LedgerQuery{Range: usecase.RangeAllTime})
			require.NoError(t, err)

			return nil, errors.New("backend exploded")
		}).
		Once()

	_, err := fx.service.TogglePayment(ctx, "r1", upstream.PaymentFieldPlatform)
	assert.Error(t, err)

	// The rollback must land on r1 by ID. A positional rollback would have
	// clobbered r0, which now occupies r1's old slot.
	row := ledgerRow("r0", day, 5)
	fx.analytics.EXPECT().
		UpdatePaymentStatus(ctx, "r0", upstream.PaymentFieldPlatform, true).
		Return(&row, nil).
		Once()
	_, err = fx.service.TogglePayment(ctx, "r0", upstream.PaymentFieldPlatform)
	require.NoError(t, err)
}

func TestAnalyticsService_TogglePayment_UnknownField(t *testing.T) {
	fx := createTestAnalyticsService(t)

	_, err := fx.service.TogglePayment(context.Background(), "r1", "bribeStatus")
	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAnalyticsService_TogglePayment_RecordNotFound(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{}, nil)

	_, err := fx.service.TogglePayment(ctx, "ghost", upstream.PaymentFieldPlatform)
	assert.ErrorIs(t, err, domainerrors.ErrLedgerRecordNotFound)
}

func TestAnalyticsService_DeleteRecord_DropsCachedRow(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
		ledgerRow("r1", day, 20),
		ledgerRow("r2", day, 15),
	}, nil).Once()

	// Seed the cache through a toggle so the delete has rows to drop.
	fx.analytics.EXPECT().
		UpdatePaymentStatus(ctx, "r1", upstream.PaymentFieldPlatform, true).
		RunAndReturn(func(_ context.Context, id, field string, _ bool) (*entity.LedgerRecord, error) {
			row := ledgerRow(id, day, 20)
			row.PlatformCommissionStatus = entity.PaymentCompleted
			return &row, nil
		})
	_, err := fx.service.TogglePayment(ctx, "r1", upstream.PaymentFieldPlatform)
	require.NoError(t, err)

	fx.analytics.EXPECT().DeleteRecord(ctx, "r2").Return(nil)
	require.NoError(t, fx.service.DeleteRecord(ctx, "r2"))

	// The dropped row is gone from the cache mutations work against.
	_, err = fx.service.TogglePayment(ctx, "r2", upstream.PaymentFieldPlatform)
	assert.ErrorIs(t, err, domainerrors.ErrLedgerRecordNotFound)
}

func TestAnalyticsService_DeleteRecord_KeepsRowOnFailure(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	fx.analytics.EXPECT().DeleteRecord(ctx, "r1").Return(errors.New("backend down"))
	assert.Error(t, fx.service.DeleteRecord(ctx, "r1"))

	// The ledger view still shows the row.
	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{ledgerRow("r1", day, 20)}, nil)
	view, err := fx.service.Ledger(ctx, &usecase.LedgerQuery{Range: usecase.RangeAllTime})
	require.NoError(t, err)
	assert.Len(t, view.Records, 1)
}

func TestAnalyticsService_ExportCSV(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	csv := []byte("order,commission\nAAA001,20\n")

	t.Run("range and search forwarded", func(t *testing.T) {
		fx.analytics.EXPECT().
			ExportLedgerCSV(ctx, usecase.RangeToday, "", "fresh").
			Return(csv, nil).
			Once()

		data, err := fx.service.ExportCSV(ctx, &usecase.LedgerQuery{Range: usecase.RangeToday, Search: "fresh"})
		require.NoError(t, err)
		assert.Equal(t, csv, data)
	})

	t.Run("empty range defaults to all time", func(t *testing.T) {
		fx.analytics.EXPECT().
			ExportLedgerCSV(ctx, usecase.RangeAllTime, "", "").
			Return(csv, nil).
			Once()

		_, err := fx.service.ExportCSV(ctx, &usecase.LedgerQuery{})
		require.NoError(t, err)
	})

	t.Run("custom range sends the start date", func(t *testing.T) {
		from := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

		fx.analytics.EXPECT().
			ExportLedgerCSV(ctx, usecase.RangeCustom, "2026-02-01", "").
			Return(csv, nil).
			Once()

		_, err := fx.service.ExportCSV(ctx, &usecase.LedgerQuery{Range: usecase.RangeCustom, From: &from, To: &to})
		require.NoError(t, err)
	})

	t.Run("invalid range rejected before the call", func(t *testing.T) {
		_, err := fx.service.ExportCSV(ctx, &usecase.LedgerQuery{Range: "fortnight"})
		assert.Error(t, err)
	})
}

func TestAnalyticsService_Stats_RecomputesCommission(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analytics.EXPECT().Stats(ctx).Return(&entity.DashboardStats{
		TotalRevenue:    1000,
		TotalOrders:     12,
		TotalCommission: 999, // backend figure disagrees with its own ledger
	}, nil)
	fx.analytics.EXPECT().ListLedger(ctx).Return([]entity.LedgerRecord{
		ledgerRow("r1", time.Now(), 20), // platform 20 + delivery (40-25)
		ledgerRow("r2", time.Now(), 10), // platform 10 + delivery (40-25)
	}, nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 60, stats.TotalCommission, 1e-9)
	assert.Equal(t, 12, stats.TotalOrders)
}

func TestAnalyticsService_Stats_KeepsBackendFigureWhenLedgerFails(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analytics.EXPECT().Stats(ctx).Return(&entity.DashboardStats{TotalCommission: 999}, nil)
	fx.analytics.EXPECT().ListLedger(ctx).Return(nil, errors.New("backend exploded"))

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 999, stats.TotalCommission, 1e-9)
}
