// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"ketalog/internal/domain/entity"
)

// CatalogUsecase defines the interface for category and variant management.
type CatalogUsecase interface {
	ListCategories(ctx context.Context, search string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	CreateSubCategory(ctx context.Context, input *SubCategoryInput) (*entity.SubCategory, error)
	DeleteCategory(ctx context.Context, id string) error
	DeleteSubCategory(ctx context.Context, id string) error

	ListVariants(ctx context.Context, search string) ([]entity.Variant, error)
	UpdateVariant(ctx context.Context, id string, input *VariantInput) (*entity.Variant, error)
	DeleteVariant(ctx context.Context, id string) error
}

// OfferUsecase defines the interface for promotional offer management.
type OfferUsecase interface {
	ListOffers(ctx context.Context, search string) ([]entity.Offer, error)
	CreateOffer(ctx context.Context, input *OfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, id string, input *OfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}

// --- Input DTOs ---

// CategoryInput defines the data required to create a category. Seed
// subcategories, when given, are created one by one after the category.
type CategoryInput struct {
	Name          string   `json:"name" validate:"required"`
	SubCategories []string `json:"sub_categories,omitempty"`
}

// SubCategoryInput defines the data required to add a subcategory.
type SubCategoryInput struct {
	CategoryID string `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
}

// VariantInput defines the data required to update a variant.
type VariantInput struct {
	Name string `json:"name" validate:"required"`
}

// OfferInput defines the data required to create or update an offer.
type OfferInput struct {
	Provider       string     `json:"provider" validate:"required"`
	Code           string     `json:"code" validate:"required"`
	Tagline        string     `json:"tagline,omitempty"`
	DiscountAmount float64    `json:"discount_amount" validate:"gt=0"`
	MinCartAmount  float64    `json:"min_cart_amount" validate:"gte=0"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
	Active         bool       `json:"active"`
}
