package upstream

import (
	"context"

	"ketalog/internal/domain/entity"
)

// DirectoryAPI defines the people-facing operations of the marketplace backend:
// buyers, sellers and delivery partners.
type DirectoryAPI interface {
	// ListBuyers retrieves every registered buyer account.
	ListBuyers(ctx context.Context) ([]entity.Buyer, error)

	// CreateBuyer registers a new buyer account.
	CreateBuyer(ctx context.Context, buyer *entity.Buyer) (*entity.Buyer, error)

	// DeleteBuyer removes a buyer account.
	DeleteBuyer(ctx context.Context, id string) error

	// ListSellers retrieves every seller account.
	ListSellers(ctx context.Context) ([]entity.Seller, error)

	// GetSellerDetail retrieves one seller together with its shop profile
	// and recent orders.
	GetSellerDetail(ctx context.Context, id string) (*entity.SellerDetail, error)

	// CreateSeller registers a new seller account.
	CreateSeller(ctx context.Context, seller *entity.Seller) (*entity.Seller, error)

	// DeleteSeller removes a seller account.
	DeleteSeller(ctx context.Context, id string) error

	// ListPartners retrieves every delivery partner.
	ListPartners(ctx context.Context) ([]entity.DeliveryPartner, error)

	// CreatePartner registers a new delivery partner.
	CreatePartner(ctx context.Context, partner *entity.DeliveryPartner) (*entity.DeliveryPartner, error)

	// UpdatePartner modifies an existing delivery partner.
	UpdatePartner(ctx context.Context, partner *entity.DeliveryPartner) (*entity.DeliveryPartner, error)

	// DeletePartner removes a delivery partner.
	DeletePartner(ctx context.Context, id string) error
}
