package impl

import (
	"context"
	"strings"

	"github.com/paulmach/orb"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/upstream"
	"ketalog/internal/errors"
	"ketalog/internal/usecase"
)

type directoryService struct {
	directory upstream.DirectoryAPI
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(directory upstream.DirectoryAPI) usecase.DirectoryUsecase {
	return &directoryService{directory: directory}
}

func (s *directoryService) ListBuyers(ctx context.Context, search string) ([]entity.Buyer, error) {
	buyers, err := s.directory.ListBuyers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list buyers")
	}

	if q := normalizeSearch(search); q != "" {
		filtered := buyers[:0:0]
		for _, b := range buyers {
			if containsFold(b.FullName, q) || strings.Contains(b.Mobile, q) {
				filtered = append(filtered, b)
			}
		}
		buyers = filtered
	}

	return buyers, nil
}

func (s *directoryService) CreateBuyer(ctx context.Context, input *usecase.BuyerInput) (*entity.Buyer, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if !validMobile(input.Mobile) {
		return nil, domainerrors.ErrInvalidMobile
	}

	buyer := &entity.Buyer{
		FullName: strings.TrimSpace(input.FullName),
		Mobile:   strings.TrimSpace(input.Mobile),
	}

	created, err := s.directory.CreateBuyer(ctx, buyer)
	if err != nil {
		return nil, errors.Wrap(err, "create buyer")
	}

	return created, nil
}

func (s *directoryService) DeleteBuyer(ctx context.Context, id string) error {
	if err := s.directory.DeleteBuyer(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "delete buyer")
	}

	return nil
}

func (s *directoryService) ListSellers(ctx context.Context, search string) ([]entity.Seller, error) {
	sellers, err := s.directory.ListSellers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sellers")
	}

	if q := normalizeSearch(search); q != "" {
		filtered := sellers[:0:0]
		for _, sl := range sellers {
			if containsFold(sl.ShopName, q) || containsFold(sl.OwnerName, q) || strings.Contains(sl.Mobile, q) {
				filtered = append(filtered, sl)
			}
		}
		sellers = filtered
	}

	return sellers, nil
}

func (s *directoryService) GetSellerDetail(ctx context.Context, id string) (*entity.SellerDetail, error) {
	detail, err := s.directory.GetSellerDetail(ctx, id)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "get seller detail")
	}

	return detail, nil
}

func (s *directoryService) CreateSeller(ctx context.Context, input *usecase.SellerInput) (*entity.Seller, error) {
	seller, err := sellerFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.directory.CreateSeller(ctx, seller)
	if err != nil {
		return nil, errors.Wrap(err, "create seller")
	}

	return created, nil
}

func (s *directoryService) DeleteSeller(ctx context.Context, id string) error {
	if err := s.directory.DeleteSeller(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "delete seller")
	}

	return nil
}

func (s *directoryService) ListPartners(ctx context.Context, search string) ([]entity.DeliveryPartner, error) {
	partners, err := s.directory.ListPartners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list delivery partners")
	}

	if q := normalizeSearch(search); q != "" {
		filtered := partners[:0:0]
		for _, p := range partners {
			if containsFold(p.FullName, q) || strings.Contains(p.Mobile, q) || strings.Contains(p.Pincode, q) {
				filtered = append(filtered, p)
			}
		}
		partners = filtered
	}

	return partners, nil
}

func (s *directoryService) CreatePartner(ctx context.Context, input *usecase.PartnerInput) (*entity.DeliveryPartner, error) {
	partner, err := partnerFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.directory.CreatePartner(ctx, partner)
	if err != nil {
		return nil, errors.Wrap(err, "create delivery partner")
	}

	return created, nil
}

func (s *directoryService) UpdatePartner(ctx context.Context, id string, input *usecase.PartnerInput) (*entity.DeliveryPartner, error) {
	partner, err := partnerFromInput(input)
	if err != nil {
		return nil, err
	}
	partner.ID = id

	updated, err := s.directory.UpdatePartner(ctx, partner)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}
		return nil, errors.Wrap(err, "update delivery partner")
	}

	return updated, nil
}

func (s *directoryService) DeletePartner(ctx context.Context, id string) error {
	if err := s.directory.DeletePartner(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrPartnerNotFound
		}
		return errors.Wrap(err, "delete delivery partner")
	}

	return nil
}

// --- helpers ---

func sellerFromInput(input *usecase.SellerInput) (*entity.Seller, error) {
	if strings.TrimSpace(input.ShopName) == "" || strings.TrimSpace(input.OwnerName) == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if !validMobile(input.Mobile) {
		return nil, domainerrors.ErrInvalidMobile
	}

	seller := &entity.Seller{
		ShopName:  strings.TrimSpace(input.ShopName),
		OwnerName: strings.TrimSpace(input.OwnerName),
		Mobile:    strings.TrimSpace(input.Mobile),
		Address:   strings.TrimSpace(input.Address),
		Pincode:   strings.TrimSpace(input.Pincode),
	}

	if input.Latitude != nil && input.Longitude != nil {
		point := orb.Point{*input.Longitude, *input.Latitude}
		seller.Location = &point
	}

	return seller, nil
}

func partnerFromInput(input *usecase.PartnerInput) (*entity.DeliveryPartner, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if !validMobile(input.Mobile) {
		return nil, domainerrors.ErrInvalidMobile
	}

	return &entity.DeliveryPartner{
		FullName: strings.TrimSpace(input.FullName),
		Mobile:   strings.TrimSpace(input.Mobile),
		Pincode:  strings.TrimSpace(input.Pincode),
	}, nil
}

// validMobile accepts exactly ten digits.
func validMobile(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	if len(mobile) != 10 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func normalizeSearch(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
