package handler

import (
	"log/slog"
	"net/http"

	"ketalog/internal/delivery/http/response"
	"ketalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for buyer, seller and partner handlers.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBuyers returns every buyer account.
func (h *DirectoryHandler) ListBuyers(c echo.Context) error {
	buyers, err := h.uc.ListBuyers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buyers, "")
}

// CreateBuyer registers a new buyer account.
func (h *DirectoryHandler) CreateBuyer(c echo.Context) error {
	var input *usecase.BuyerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid buyer input")
	}

	buyer, err := h.uc.CreateBuyer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, buyer, "Buyer created")
}

// DeleteBuyer removes a buyer account.
func (h *DirectoryHandler) DeleteBuyer(c echo.Context) error {
	if err := h.uc.DeleteBuyer(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Buyer deleted")
}

// ListSellers returns every seller.
func (h *DirectoryHandler) ListSellers(c echo.Context) error {
	sellers, err := h.uc.ListSellers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sellers, "")
}

// GetSeller returns one seller with profile and order history.
func (h *DirectoryHandler) GetSeller(c echo.Context) error {
	detail, err := h.uc.GetSellerDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// CreateSeller registers a new seller.
func (h *DirectoryHandler) CreateSeller(c echo.Context) error {
	var input *usecase.SellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller input")
	}

	seller, err := h.uc.CreateSeller(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, seller, "Seller created")
}

// DeleteSeller removes a seller.
func (h *DirectoryHandler) DeleteSeller(c echo.Context) error {
	if err := h.uc.DeleteSeller(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Seller deleted")
}

// ListPartners returns every delivery partner.
func (h *DirectoryHandler) ListPartners(c echo.Context) error {
	partners, err := h.uc.ListPartners(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "")
}

// CreatePartner registers a new delivery partner.
func (h *DirectoryHandler) CreatePartner(c echo.Context) error {
	var input *usecase.PartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}

	partner, err := h.uc.CreatePartner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, partner, "Partner created")
}

// UpdatePartner modifies a delivery partner.
func (h *DirectoryHandler) UpdatePartner(c echo.Context) error {
	var input *usecase.PartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}

	partner, err := h.uc.UpdatePartner(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner updated")
}

// DeletePartner removes a delivery partner.
func (h *DirectoryHandler) DeletePartner(c echo.Context) error {
	if err := h.uc.DeletePartner(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Partner deleted")
}
