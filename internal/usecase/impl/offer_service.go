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

// minCartMargin is the minimum gap between an offer's discount and the cart
// value that has to be reached before the offer applies.
const minCartMargin = 10

type offerService struct {
	offers upstream.OfferAPI
}

// NewOfferService creates a new offer service instance
func NewOfferService(offers upstream.OfferAPI) usecase.OfferUsecase {
	return &offerService{offers: offers}
}

func (s *offerService) ListOffers(ctx context.Context, search string) ([]entity.Offer, error) {
	offers, err := s.offers.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list offers")
	}

	if q := normalizeSearch(search); q != "" {
		filtered := offers[:0:0]
		for _, o := range offers {
			if containsFold(o.Code, q) || containsFold(o.Provider, q) || containsFold(o.Tagline, q) {
				filtered = append(filtered, o)
			}
		}
		offers = filtered
	}

	return offers, nil
}

func (s *offerService) CreateOffer(ctx context.Context, input *usecase.OfferInput) (*entity.Offer, error) {
	offer, err := offerFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.offers.CreateOffer(ctx, offer)
	if err != nil {
		return nil, errors.Wrap(err, "create offer")
	}

	return created, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, id string, input *usecase.OfferInput) (*entity.Offer, error) {
	offer, err := offerFromInput(input)
	if err != nil {
		return nil, err
	}
	offer.ID = id

	updated, err := s.offers.UpdateOffer(ctx, offer)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "update offer")
	}

	return updated, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, id string) error {
	if err := s.offers.DeleteOffer(ctx, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "delete offer")
	}

	return nil
}

// offerFromInput validates and normalizes an offer form. Codes are stored
// uppercase with all whitespace stripped, and the minimum cart value must
// leave a margin above the discount so an offer can never make a cart free.
func offerFromInput(input *usecase.OfferInput) (*entity.Offer, error) {
	code := normalizeOfferCode(input.Code)
	provider := strings.TrimSpace(input.Provider)
	if code == "" || provider == "" {
		return nil, domainerrors.ErrMissingFields
	}

	if input.DiscountAmount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discount must be positive")
	}
	if input.MinCartAmount < input.DiscountAmount+minCartMargin {
		return nil, domainerrors.ErrMinCartTooLow
	}

	offer := &entity.Offer{
		Provider:       provider,
		Code:           code,
		Tagline:        strings.TrimSpace(input.Tagline),
		DiscountAmount: input.DiscountAmount,
		MinCartAmount:  input.MinCartAmount,
		ExpiryDate:     input.ExpiryDate,
		Active:         input.Active,
	}

	for _, c := range input.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		offer.Categories = append(offer.Categories, c)
	}

	return offer, nil
}

// normalizeOfferCode uppercases the code and strips every whitespace rune,
// inner ones included.
func normalizeOfferCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
