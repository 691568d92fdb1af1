package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ketalog/internal/delivery/http/response"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for the ledger and stats handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Ledger returns the commission ledger for the requested range.
func (h *AnalyticsHandler) Ledger(c echo.Context) error {
	query, err := ledgerQuery(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Ledger(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// paymentInput is the body of the payment toggle request.
type paymentInput struct {
	Field string `json:"field" validate:"required"`
}

// TogglePayment flips one payment flag of a ledger record.
func (h *AnalyticsHandler) TogglePayment(c echo.Context) error {
	var input paymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	record, err := h.uc.TogglePayment(c.Request().Context(), c.Param("id"), input.Field)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Payment status updated")
}

// DeleteRecord removes a ledger record.
func (h *AnalyticsHandler) DeleteRecord(c echo.Context) error {
	if err := h.uc.DeleteRecord(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ledger record deleted")
}

// Export serves the filtered ledger as a CSV download.
func (h *AnalyticsHandler) Export(c echo.Context) error {
	query, err := ledgerQuery(c)
	if err != nil {
		return err
	}

	data, err := h.uc.ExportCSV(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="ledger.csv"`)

	return c.Blob(http.StatusOK, "text/csv", data)
}

// Stats returns the aggregate dashboard counters.
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// ledgerQuery reads range, from, to and search query parameters.
func ledgerQuery(c echo.Context) (*usecase.LedgerQuery, error) {
	query := &usecase.LedgerQuery{
		Range:  c.QueryParam("range"),
		Search: c.QueryParam("search"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("from must be YYYY-MM-DD")
		}
		query.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("to must be YYYY-MM-DD")
		}
		query.To = &to
	}

	return query, nil
}
