package impl

import (
	"context"
	"sync"
	"time"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/upstream"
	"ketalog/internal/errors"
	"ketalog/internal/usecase"
)

type analyticsService struct {
	analytics upstream.AnalyticsAPI

	mu     sync.RWMutex
	ledger []entity.LedgerRecord
	loaded bool
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analytics upstream.AnalyticsAPI) usecase.AnalyticsUsecase {
	return &analyticsService{analytics: analytics}
}

// Ledger returns the commission ledger filtered to the query's date range.
// Rows with no usable date only appear in the all-time view.
func (s *analyticsService) Ledger(ctx context.Context, query *usecase.LedgerQuery) (*usecase.LedgerView, error) {
	records, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}

	from, to, bounded, err := rangeBounds(query, time.Now())
	if err != nil {
		return nil, err
	}

	var filtered []entity.LedgerRecord
	for _, r := range records {
		if bounded {
			date := r.EffectiveDate()
			if date.IsZero() || date.Before(from) || !date.Before(to) {
				continue
			}
		}
		if q := normalizeSearch(query.Search); q != "" && !ledgerMatches(&r, q) {
			continue
		}
		filtered = append(filtered, fold(r))
	}

	return &usecase.LedgerView{
		Records: filtered,
		Totals:  ledgerTotals(filtered),
	}, nil
}

// TogglePayment flips one payment flag. The cached row flips before the
// backend call and rolls back if the backend rejects.
func (s *analyticsService) TogglePayment(ctx context.Context, recordID, field string) (*entity.LedgerRecord, error) {
	if field != upstream.PaymentFieldPlatform && field != upstream.PaymentFieldDelivery {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment field")
	}

	if _, err := s.load(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	record := s.recordLocked(recordID)
	if record == nil {
		s.mu.Unlock()
		return nil, domainerrors.ErrLedgerRecordNotFound
	}

	before := *record
	target := !paymentFlag(&before, field)
	setPaymentFlag(record, field, target)
	s.mu.Unlock()

	reply, err := s.analytics.UpdatePaymentStatus(ctx, recordID, field, target)
	if err != nil {
		// A concurrent refresh may have replaced the slice; the rollback
		// has to find the row again rather than trust a stale index.
		s.mu.Lock()
		if r := s.recordLocked(recordID); r != nil {
			*r = before
		}
		s.mu.Unlock()
		return nil, errors.Wrap(err, "toggle payment status")
	}

	folded := fold(*reply)

	s.mu.Lock()
	if r := s.recordLocked(recordID); r != nil {
		*r = folded
	}
	s.mu.Unlock()

	return &folded, nil
}

// recordLocked returns the cached row for an ID. Callers hold s.mu.
func (s *analyticsService) recordLocked(recordID string) *entity.LedgerRecord {
	for i := range s.ledger {
		if s.ledger[i].ID == recordID {
			return &s.ledger[i]
		}
	}

	return nil
}

// DeleteRecord removes a ledger record, dropping the cached row only after
// the backend acknowledges.
func (s *analyticsService) DeleteRecord(ctx context.Context, recordID string) error {
	if err := s.analytics.DeleteRecord(ctx, recordID); err != nil {
		return errors.Wrap(err, "delete ledger record")
	}

	s.mu.Lock()
	for i := range s.ledger {
		if s.ledger[i].ID == recordID {
			s.ledger = append(s.ledger[:i], s.ledger[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}

// ExportCSV lets the backend render the filtered ledger as CSV. The range
// is validated here but resolved by the backend's download endpoint.
func (s *analyticsService) ExportCSV(ctx context.Context, query *usecase.LedgerQuery) ([]byte, error) {
	if _, _, _, err := rangeBounds(query, time.Now()); err != nil {
		return nil, err
	}

	filter := query.Range
	if filter == "" {
		filter = usecase.RangeAllTime
	}

	var date string
	if query.Range == usecase.RangeCustom && query.From != nil {
		date = query.From.Format("2006-01-02")
	}

	data, err := s.analytics.ExportLedgerCSV(ctx, filter, date, query.Search)
	if err != nil {
		return nil, errors.Wrap(err, "export ledger")
	}

	return data, nil
}

// Stats returns the backend's aggregate counters, with the commission total
// recomputed from the ledger so the headline number and the table agree.
func (s *analyticsService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := s.analytics.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard stats")
	}

	if records, lerr := s.load(ctx); lerr == nil {
		var total float64
		for i := range records {
			total += records[i].PlatformCommission + records[i].DeliveryCommission()
		}
		stats.TotalCommission = total
	}

	return stats, nil
}

// --- internals ---

// load returns the cached ledger, fetching it once when empty. Ledger views
// bypass it and refresh every time; mutations only need a seeded cache.
func (s *analyticsService) load(ctx context.Context) ([]entity.LedgerRecord, error) {
	s.mu.RLock()
	if s.loaded {
		cached := make([]entity.LedgerRecord, len(s.ledger))
		copy(cached, s.ledger)
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	return s.refresh(ctx)
}

// refresh refetches the ledger and replaces the cache.
func (s *analyticsService) refresh(ctx context.Context) ([]entity.LedgerRecord, error) {
	records, err := s.analytics.ListLedger(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list ledger")
	}

	s.mu.Lock()
	s.ledger = records
	s.loaded = true
	cached := make([]entity.LedgerRecord, len(records))
	copy(cached, records)
	s.mu.Unlock()

	return cached, nil
}

// rangeBounds resolves a query to a half-open [from, to) window in local
// time. bounded is false for the all-time view.
func rangeBounds(query *usecase.LedgerQuery, now time.Time) (from, to time.Time, bounded bool, err error) {
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	switch query.Range {
	case usecase.RangeToday:
		from = dayStart(now)
		return from, from.AddDate(0, 0, 1), true, nil

	case usecase.RangeWeek:
		// Weeks run Sunday through Saturday.
		from = dayStart(now).AddDate(0, 0, -int(now.Weekday()))
		return from, from.AddDate(0, 0, 7), true, nil

	case usecase.RangeMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return from, from.AddDate(0, 1, 0), true, nil

	case usecase.RangeCustom:
		if query.From == nil || query.To == nil {
			return from, to, false, domainerrors.ErrValidationFailed.WithDetails("custom range needs from and to")
		}
		from = dayStart(*query.From)
		to = dayStart(*query.To).AddDate(0, 0, 1)
		if to.Before(from) {
			return from, to, false, domainerrors.ErrValidationFailed.WithDetails("range end precedes start")
		}
		return from, to, true, nil

	case usecase.RangeAllTime, "":
		return from, to, false, nil
	}

	return from, to, false, domainerrors.ErrValidationFailed.WithDetails("unknown range")
}

// fold reconciles the legacy boolean payment flags with the newer status
// strings. A status string, when present, wins.
func fold(r entity.LedgerRecord) entity.LedgerRecord {
	if r.PlatformCommissionStatus != "" {
		r.PlatformCommissionPaid = r.PlatformCommissionStatus == entity.PaymentCompleted
	}
	if r.DeliveryPartnerFeeStatus != "" {
		r.DeliveryCommissionPaid = r.DeliveryPartnerFeeStatus == entity.PaymentCompleted
	}

	return r
}

func paymentFlag(r *entity.LedgerRecord, field string) bool {
	if field == upstream.PaymentFieldPlatform {
		return fold(*r).PlatformCommissionPaid
	}

	return fold(*r).DeliveryCommissionPaid
}

func setPaymentFlag(r *entity.LedgerRecord, field string, paid bool) {
	status := entity.PaymentPending
	if paid {
		status = entity.PaymentCompleted
	}

	if field == upstream.PaymentFieldPlatform {
		r.PlatformCommissionPaid = paid
		r.PlatformCommissionStatus = status
		return
	}
	r.DeliveryCommissionPaid = paid
	r.DeliveryPartnerFeeStatus = status
}

func ledgerMatches(r *entity.LedgerRecord, q string) bool {
	if seller := r.Seller.Record(); seller != nil && containsFold(seller.ShopName, q) {
		return true
	}
	if order := r.Order.Record(); order != nil && containsFold(order.Reference(), q) {
		return true
	}

	return false
}

func ledgerTotals(records []entity.LedgerRecord) usecase.LedgerTotals {
	totals := usecase.LedgerTotals{Orders: len(records)}
	for i := range records {
		r := &records[i]
		if order := r.Order.Record(); order != nil {
			totals.Revenue += order.TotalAmount
		}
		delivery := r.DeliveryCommission()
		totals.PlatformCommission += r.PlatformCommission
		totals.DeliveryCommission += delivery
		totals.TotalCommission += r.PlatformCommission + delivery
		totals.SellerPayout += r.SellerEarning
	}

	return totals
}
