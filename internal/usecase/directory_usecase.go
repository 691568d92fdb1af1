// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ketalog/internal/domain/entity"
)

// DirectoryUsecase defines the interface for buyer, seller and delivery
// partner management.
type DirectoryUsecase interface {
	ListBuyers(ctx context.Context, search string) ([]entity.Buyer, error)
	CreateBuyer(ctx context.Context, input *BuyerInput) (*entity.Buyer, error)
	DeleteBuyer(ctx context.Context, id string) error

	ListSellers(ctx context.Context, search string) ([]entity.Seller, error)
	GetSellerDetail(ctx context.Context, id string) (*entity.SellerDetail, error)
	CreateSeller(ctx context.Context, input *SellerInput) (*entity.Seller, error)
	DeleteSeller(ctx context.Context, id string) error

	ListPartners(ctx context.Context, search string) ([]entity.DeliveryPartner, error)
	CreatePartner(ctx context.Context, input *PartnerInput) (*entity.DeliveryPartner, error)
	UpdatePartner(ctx context.Context, id string, input *PartnerInput) (*entity.DeliveryPartner, error)
	DeletePartner(ctx context.Context, id string) error
}

// --- Input DTOs ---

// BuyerInput defines the data required to create a buyer account.
type BuyerInput struct {
	FullName string `json:"full_name" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
}

// SellerInput defines the data required to create a seller.
type SellerInput struct {
	ShopName  string   `json:"shop_name" validate:"required"`
	OwnerName string   `json:"owner_name" validate:"required"`
	Mobile    string   `json:"mobile" validate:"required"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Address   string   `json:"address,omitempty"`
	Pincode   string   `json:"pincode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PartnerInput defines the data required to create or update a delivery partner.
type PartnerInput struct {
	FullName string `json:"full_name" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Pincode  string `json:"pincode,omitempty"`
}
