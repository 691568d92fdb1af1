package handler

import (
	"log/slog"
	"net/http"

	"ketalog/internal/delivery/http/response"
	"ketalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order board handlers.
type OrderHandler struct {
	uc     usecase.OrderBoardUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderBoardUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the cached order board, filtered by query parameters.
func (h *OrderHandler) List(c echo.Context) error {
	query := usecase.ListOrdersQuery{
		Search: c.QueryParam("search"),
		Bucket: c.QueryParam("bucket"),
	}

	snap, err := h.uc.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// Refresh forces a fetch from the marketplace backend.
func (h *OrderHandler) Refresh(c echo.Context) error {
	snap, err := h.uc.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "Order board refreshed")
}

// Get returns one order.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Timeline returns the fulfillment progress of one order.
func (h *OrderHandler) Timeline(c echo.Context) error {
	steps, err := h.uc.Timeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, steps, "")
}

// assignInput is the body of the partner assignment request.
type assignInput struct {
	PartnerID       string `json:"partner_id" validate:"required"`
	OverridePincode bool   `json:"override_pincode"`
}

// Assign assigns a delivery partner to an order.
func (h *OrderHandler) Assign(c echo.Context) error {
	var input assignInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.AssignPartner(c.Request().Context(), &usecase.AssignPartnerInput{
		OrderID:         c.Param("id"),
		PartnerID:       input.PartnerID,
		OverridePincode: input.OverridePincode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Partner assigned")
}

// Unassign removes the delivery partner from an order.
func (h *OrderHandler) Unassign(c echo.Context) error {
	order, err := h.uc.UnassignPartner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Partner unassigned")
}

// Delivered marks an order as delivered.
func (h *OrderHandler) Delivered(c echo.Context) error {
	order, err := h.uc.MarkDelivered(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order delivered")
}

// Delete removes an order.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}

// NotifySeller builds the WhatsApp notice for the order's seller.
func (h *OrderHandler) NotifySeller(c echo.Context) error {
	notice, err := h.uc.NotifySeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notice, "")
}

// WhatsAppQR serves the click-to-chat link as a PNG QR code.
// audience query parameter selects "partner" (default) or "seller".
func (h *OrderHandler) WhatsAppQR(c echo.Context) error {
	audience := c.QueryParam("audience")
	if audience == "" {
		audience = "partner"
	}

	png, err := h.uc.WhatsAppQR(c.Request().Context(), c.Param("id"), audience)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
