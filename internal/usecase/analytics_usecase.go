// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"ketalog/internal/domain/entity"
)

// Ledger range keys.
const (
	RangeToday   = "today"
	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeAllTime = "all_time"
	RangeCustom  = "custom"
)

// AnalyticsUsecase defines the interface for the earnings ledger and the
// dashboard statistics.
type AnalyticsUsecase interface {
	// Ledger returns the commission ledger filtered to the query's date
	// range, with totals computed over the filtered rows.
	Ledger(ctx context.Context, query *LedgerQuery) (*LedgerView, error)

	// TogglePayment flips one payment flag of a ledger record. The cached
	// row flips immediately and rolls back if the backend rejects.
	TogglePayment(ctx context.Context, recordID, field string) (*entity.LedgerRecord, error)

	// DeleteRecord removes a ledger record. The cached row disappears only
	// after the backend acknowledges.
	DeleteRecord(ctx context.Context, recordID string) error

	// ExportCSV renders the filtered ledger as a CSV document.
	ExportCSV(ctx context.Context, query *LedgerQuery) ([]byte, error)

	// Stats returns the aggregate dashboard counters.
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

// --- Input DTOs ---

// LedgerQuery selects a slice of the ledger.
type LedgerQuery struct {
	// Range is one of the Range constants. Empty means all time.
	Range string `json:"range"`

	// From and To bound a custom range. Only read when Range is "custom".
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`

	// Search matches seller shop name or order reference.
	Search string `json:"search,omitempty"`
}

// --- Output DTOs ---

// LedgerTotals aggregates the filtered ledger rows.
type LedgerTotals struct {
	Orders             int     `json:"orders"`
	Revenue            float64 `json:"revenue"`
	PlatformCommission float64 `json:"platform_commission"`
	DeliveryCommission float64 `json:"delivery_commission"`
	TotalCommission    float64 `json:"total_commission"`
	SellerPayout       float64 `json:"seller_payout"`
}

// LedgerView is the filtered ledger plus its totals.
type LedgerView struct {
	Records []entity.LedgerRecord `json:"records"`
	Totals  LedgerTotals          `json:"totals"`
}
