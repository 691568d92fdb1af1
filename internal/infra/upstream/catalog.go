package upstream

import (
	"context"
	"net/http"

	"ketalog/internal/domain/entity"
)

// ListCategories retrieves the category tree. The listing endpoint is the
// public one; only mutations live under the admin prefix.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateCategory adds a top-level category.
func (c *Client) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	body := map[string]string{"name": category.Name}

	var created entity.Category
	if err := c.do(ctx, http.MethodPost, "/admin/categories", body, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// CreateSubCategory adds a subcategory under an existing category.
func (c *Client) CreateSubCategory(ctx context.Context, categoryID, name string) (*entity.SubCategory, error) {
	body := map[string]string{
		"categoryId": categoryID,
		"name":       name,
	}

	var created entity.SubCategory
	if err := c.do(ctx, http.MethodPost, "/admin/categories/sub", body, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteCategory removes a category and its subcategories.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+id, nil, nil)
}

// DeleteSubCategory removes a single subcategory.
func (c *Client) DeleteSubCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/subcategories/"+id, nil, nil)
}

// ListVariants retrieves every product variant.
func (c *Client) ListVariants(ctx context.Context) ([]entity.Variant, error) {
	var variants []entity.Variant
	if err := c.do(ctx, http.MethodGet, "/admin/variants", nil, &variants); err != nil {
		return nil, err
	}

	return variants, nil
}

// UpdateVariant modifies a product variant.
func (c *Client) UpdateVariant(ctx context.Context, variant *entity.Variant) (*entity.Variant, error) {
	var updated entity.Variant
	if err := c.do(ctx, http.MethodPut, "/admin/variants/"+variant.ID, variant, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteVariant removes a product variant.
func (c *Client) DeleteVariant(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/variants/"+id, nil, nil)
}

// ListOffers retrieves every offer.
func (c *Client) ListOffers(ctx context.Context) ([]entity.Offer, error) {
	var offers []entity.Offer
	if err := c.do(ctx, http.MethodGet, "/admin/offers", nil, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

// CreateOffer adds an offer.
func (c *Client) CreateOffer(ctx context.Context, offer *entity.Offer) (*entity.Offer, error) {
	var created entity.Offer
	if err := c.do(ctx, http.MethodPost, "/admin/offer", offer, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateOffer modifies an offer.
func (c *Client) UpdateOffer(ctx context.Context, offer *entity.Offer) (*entity.Offer, error) {
	var updated entity.Offer
	if err := c.do(ctx, http.MethodPut, "/admin/offer/"+offer.ID, offer, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteOffer removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/offer/"+id, nil, nil)
}
