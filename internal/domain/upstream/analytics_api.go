package upstream

import (
	"context"

	"ketalog/internal/domain/entity"
)

// Payment field names accepted by UpdatePaymentStatus.
const (
	PaymentFieldPlatform = "platformCommissionStatus"
	PaymentFieldDelivery = "deliveryPartnerFeeStatus"
)

// AnalyticsAPI defines the earnings-ledger and dashboard-statistics
// operations of the marketplace backend.
type AnalyticsAPI interface {
	// ListLedger retrieves every commission ledger record.
	ListLedger(ctx context.Context) ([]entity.LedgerRecord, error)

	// UpdatePaymentStatus flips one payment flag of a ledger record and
	// returns the record as the backend now sees it. field is one of the
	// PaymentField constants.
	UpdatePaymentStatus(ctx context.Context, recordID, field string, paid bool) (*entity.LedgerRecord, error)

	// DeleteRecord removes a ledger record.
	DeleteRecord(ctx context.Context, recordID string) error

	// Stats retrieves the aggregate dashboard counters.
	Stats(ctx context.Context) (*entity.DashboardStats, error)

	// ExportLedgerCSV retrieves the ledger rendered as CSV by the backend's
	// download endpoint. filter names the date window, date pins it for the
	// custom window, search narrows the rows. Empty values are omitted.
	ExportLedgerCSV(ctx context.Context, filter, date, search string) ([]byte, error)
}
