package upstream

import (
	"context"
	"net/http"
	"net/url"

	"ketalog/internal/domain/entity"
)

// ListLedger retrieves every commission ledger record.
func (c *Client) ListLedger(ctx context.Context) ([]entity.LedgerRecord, error) {
	var records []entity.LedgerRecord
	if err := c.do(ctx, http.MethodGet, "/admin/analytics", nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdatePaymentStatus flips one payment flag of a ledger record. The body
// names the status field directly, e.g. {"platformCommissionStatus": "COMPLETED"}.
func (c *Client) UpdatePaymentStatus(ctx context.Context, recordID, field string, paid bool) (*entity.LedgerRecord, error) {
	status := entity.PaymentPending
	if paid {
		status = entity.PaymentCompleted
	}
	body := map[string]string{field: status}

	var record entity.LedgerRecord
	if err := c.do(ctx, http.MethodPut, "/admin/analytics/"+recordID, body, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// DeleteRecord removes a ledger record.
func (c *Client) DeleteRecord(ctx context.Context, recordID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/analytics/"+recordID, nil, nil)
}

// Stats retrieves the aggregate dashboard counters.
func (c *Client) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// ExportLedgerCSV retrieves the ledger rendered as CSV by the backend's
// download endpoint. Empty query values are omitted.
func (c *Client) ExportLedgerCSV(ctx context.Context, filter, date, search string) ([]byte, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}
	if date != "" {
		query.Set("date", date)
	}
	if search != "" {
		query.Set("search", search)
	}

	path := "/admin/analytics/download/csv"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return c.doRaw(ctx, http.MethodGet, path, nil)
}
