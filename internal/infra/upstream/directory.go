package upstream

import (
	"context"
	"net/http"

	"ketalog/internal/domain/entity"
)

// ListBuyers retrieves every buyer account.
func (c *Client) ListBuyers(ctx context.Context) ([]entity.Buyer, error) {
	var buyers []entity.Buyer
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &buyers); err != nil {
		return nil, err
	}

	return buyers, nil
}

// CreateBuyer registers a new buyer account. The users endpoint keys account
// kind off the role field.
func (c *Client) CreateBuyer(ctx context.Context, buyer *entity.Buyer) (*entity.Buyer, error) {
	body := map[string]string{
		"name":   buyer.FullName,
		"mobile": buyer.Mobile,
		"role":   "buyer",
	}

	var created entity.Buyer
	if err := c.do(ctx, http.MethodPost, "/admin/users", body, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteBuyer removes a buyer account.
func (c *Client) DeleteBuyer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

// ListSellers retrieves every seller.
func (c *Client) ListSellers(ctx context.Context) ([]entity.Seller, error) {
	var sellers []entity.Seller
	if err := c.do(ctx, http.MethodGet, "/admin/sellers", nil, &sellers); err != nil {
		return nil, err
	}

	return sellers, nil
}

// GetSellerDetail retrieves one seller with profile and orders.
func (c *Client) GetSellerDetail(ctx context.Context, id string) (*entity.SellerDetail, error) {
	var detail entity.SellerDetail
	if err := c.do(ctx, http.MethodGet, "/admin/sellers/"+id, nil, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

// CreateSeller registers a new seller.
func (c *Client) CreateSeller(ctx context.Context, seller *entity.Seller) (*entity.Seller, error) {
	var created entity.Seller
	if err := c.do(ctx, http.MethodPost, "/admin/sellers", seller, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteSeller removes a seller.
func (c *Client) DeleteSeller(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/sellers/"+id, nil, nil)
}

// ListPartners retrieves every delivery partner.
func (c *Client) ListPartners(ctx context.Context) ([]entity.DeliveryPartner, error) {
	var partners []entity.DeliveryPartner
	if err := c.do(ctx, http.MethodGet, "/admin/delivery-partners", nil, &partners); err != nil {
		return nil, err
	}

	return partners, nil
}

// CreatePartner registers a new delivery partner.
func (c *Client) CreatePartner(ctx context.Context, partner *entity.DeliveryPartner) (*entity.DeliveryPartner, error) {
	var created entity.DeliveryPartner
	if err := c.do(ctx, http.MethodPost, "/admin/delivery-partners", partner, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdatePartner modifies an existing delivery partner.
func (c *Client) UpdatePartner(ctx context.Context, partner *entity.DeliveryPartner) (*entity.DeliveryPartner, error) {
	var updated entity.DeliveryPartner
	if err := c.do(ctx, http.MethodPut, "/admin/delivery-partners/"+partner.ID, partner, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeletePartner removes a delivery partner.
func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/delivery-partners/"+id, nil, nil)
}
