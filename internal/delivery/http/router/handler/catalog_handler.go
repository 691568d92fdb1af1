package handler

import (
	"log/slog"
	"net/http"

	"ketalog/internal/delivery/http/response"
	"ketalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for category, variant and offer handlers.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	offers  usecase.OfferUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, offers usecase.OfferUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		offers:  offers,
		logger:  logger,
	}
}

// ListCategories returns the category tree.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateCategory adds a category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var input *usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// CreateSubCategory adds a subcategory under an existing category.
func (h *CatalogHandler) CreateSubCategory(c echo.Context) error {
	var input *usecase.SubCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	sub, err := h.catalog.CreateSubCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sub, "Subcategory created")
}

// DeleteSubCategory removes a single subcategory.
func (h *CatalogHandler) DeleteSubCategory(c echo.Context) error {
	if err := h.catalog.DeleteSubCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subcategory deleted")
}

// DeleteCategory removes a category and its subcategories.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalog.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// ListVariants returns every product variant.
func (h *CatalogHandler) ListVariants(c echo.Context) error {
	variants, err := h.catalog.ListVariants(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variants, "")
}

// UpdateVariant modifies a product variant.
func (h *CatalogHandler) UpdateVariant(c echo.Context) error {
	var input *usecase.VariantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	variant, err := h.catalog.UpdateVariant(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variant, "Variant updated")
}

// DeleteVariant removes a product variant.
func (h *CatalogHandler) DeleteVariant(c echo.Context) error {
	if err := h.catalog.DeleteVariant(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Variant deleted")
}

// ListOffers returns every offer.
func (h *CatalogHandler) ListOffers(c echo.Context) error {
	offers, err := h.offers.ListOffers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// CreateOffer adds an offer.
func (h *CatalogHandler) CreateOffer(c echo.Context) error {
	var input *usecase.OfferInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	offer, err := h.offers.CreateOffer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer created")
}

// UpdateOffer modifies an offer.
func (h *CatalogHandler) UpdateOffer(c echo.Context) error {
	var input *usecase.OfferInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	offer, err := h.offers.UpdateOffer(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer updated")
}

// DeleteOffer removes an offer.
func (h *CatalogHandler) DeleteOffer(c echo.Context) error {
	if err := h.offers.DeleteOffer(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted")
}
