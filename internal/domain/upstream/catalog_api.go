package upstream

import (
	"context"

	"ketalog/internal/domain/entity"
)

// CatalogAPI defines the catalog operations of the marketplace backend:
// categories with their subcategories, and product variants.
type CatalogAPI interface {
	// ListCategories retrieves the full category tree.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// CreateCategory adds a new top-level category.
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)

	// CreateSubCategory adds a subcategory under an existing category.
	CreateSubCategory(ctx context.Context, categoryID, name string) (*entity.SubCategory, error)

	// DeleteCategory removes a category and its subcategories.
	DeleteCategory(ctx context.Context, id string) error

	// DeleteSubCategory removes a single subcategory.
	DeleteSubCategory(ctx context.Context, id string) error

	// ListVariants retrieves every product variant.
	ListVariants(ctx context.Context) ([]entity.Variant, error)

	// UpdateVariant modifies an existing product variant.
	UpdateVariant(ctx context.Context, variant *entity.Variant) (*entity.Variant, error)

	// DeleteVariant removes a product variant.
	DeleteVariant(ctx context.Context, id string) error
}

// OfferAPI defines the promotional offer operations of the marketplace backend.
type OfferAPI interface {
	// ListOffers retrieves every offer, active or not.
	ListOffers(ctx context.Context) ([]entity.Offer, error)

	// CreateOffer adds a new offer.
	CreateOffer(ctx context.Context, offer *entity.Offer) (*entity.Offer, error)

	// UpdateOffer modifies an existing offer.
	UpdateOffer(ctx context.Context, offer *entity.Offer) (*entity.Offer, error)

	// DeleteOffer removes an offer.
	DeleteOffer(ctx context.Context, id string) error
}
