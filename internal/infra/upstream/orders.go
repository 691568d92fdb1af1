package upstream

import (
	"context"
	"net/http"

	"ketalog/internal/domain/entity"
)

// ListOrders retrieves every order.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder retrieves one order.
func (c *Client) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders/"+id, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// AssignPartner assigns a delivery partner to an order.
func (c *Client) AssignPartner(ctx context.Context, orderID, partnerID string) (*entity.Order, error) {
	body := map[string]string{"partnerId": partnerID}

	var order entity.Order
	if err := c.do(ctx, http.MethodPost, "/admin/orders/"+orderID+"/assign", body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UnassignPartner removes the delivery partner from an order. The backend
// treats a null partnerId on the assign endpoint as an unassign.
func (c *Client) UnassignPartner(ctx context.Context, orderID string) (*entity.Order, error) {
	body := map[string]any{"partnerId": nil}

	var order entity.Order
	if err := c.do(ctx, http.MethodPost, "/admin/orders/"+orderID+"/assign", body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateStatus moves an order to the given status.
func (c *Client) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	body := map[string]string{"status": status}

	var order entity.Order
	if err := c.do(ctx, http.MethodPut, "/admin/orders/"+orderID+"/status", body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// PatchOrder updates arbitrary order fields.
func (c *Client) PatchOrder(ctx context.Context, orderID string, fields map[string]any) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodPut, "/admin/orders/"+orderID, fields, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/orders/"+orderID, nil, nil)
}
