package impl

import (
	"context"
	"strings"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/upstream"
	"ketalog/internal/errors"
	"ketalog/internal/usecase"
)

type catalogService struct {
	catalog upstream.CatalogAPI
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog upstream.CatalogAPI) usecase.CatalogUsecase {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListCategories(ctx context.Context, search string) ([]entity.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	if q := normalizeSearch(search); q != "" {
		filtered := categories[:0:0]
		for _, c := range categories {
			if containsFold(c.Name, q) {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := categoryFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.catalog.CreateCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "create category")
	}

	// Seed subcategories ride on the dedicated endpoint one by one.
	for _, sub := range category.SubCategories {
		createdSub, err := s.catalog.CreateSubCategory(ctx, created.ID, sub.Name)
		if err != nil {
			return nil, errors.Wrap(err, "create subcategory")
		}
		created.SubCategories = append(created.SubCategories, *createdSub)
	}

	return created, nil
}

func (s *catalogService) CreateSubCategory(ctx context.Context, input *usecase.SubCategoryInput) (*entity.SubCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.CategoryID) == "" {
		return nil, domainerrors.ErrMissingFields
	}

	created, err := s.catalog.CreateSubCategory(ctx, strings.TrimSpace(input.CategoryID), name)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "create subcategory")
	}

	return created, nil
}

func (s *catalogService) DeleteSubCategory(ctx context.Context, id string) error {
	if err := s.catalog.DeleteSubCategory(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "delete subcategory")
	}

	return nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.catalog.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "delete category")
	}

	return nil
}

func (s *catalogService) ListVariants(ctx context.Context, search string) ([]entity.Variant, error) {
	variants, err := s.catalog.ListVariants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list variants")
	}

	if q := normalizeSearch(search); q != "" {
		filtered := variants[:0:0]
		for _, v := range variants {
			if containsFold(v.DisplayName(), q) {
				filtered = append(filtered, v)
			}
		}
		variants = filtered
	}

	return variants, nil
}

func (s *catalogService) UpdateVariant(ctx context.Context, id string, input *usecase.VariantInput) (*entity.Variant, error) {
	variant, err := variantFromInput(input)
	if err != nil {
		return nil, err
	}
	variant.ID = id

	updated, err := s.catalog.UpdateVariant(ctx, variant)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "update variant")
	}

	return updated, nil
}

func (s *catalogService) DeleteVariant(ctx context.Context, id string) error {
	if err := s.catalog.DeleteVariant(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "delete variant")
	}

	return nil
}

// --- helpers ---

func categoryFromInput(input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	category := &entity.Category{Name: name}

	for _, sub := range input.SubCategories {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			continue
		}
		category.SubCategories = append(category.SubCategories, entity.SubCategory{Name: sub})
	}

	return category, nil
}

func variantFromInput(input *usecase.VariantInput) (*entity.Variant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	return &entity.Variant{Name: name}, nil
}
