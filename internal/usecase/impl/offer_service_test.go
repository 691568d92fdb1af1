package impl

import (
	"context"
	"testing"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/upstream"
	mockUpstream "ketalog/internal/mocks/upstream"
	"ketalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerFixtures struct {
	service usecase.OfferUsecase
	offers  *mockUpstream.MockOfferAPI
}

func createTestOfferService(t *testing.T) offerFixtures {
	offers := mockUpstream.NewMockOfferAPI(t)

	return offerFixtures{
		service: NewOfferService(offers),
		offers:  offers,
	}
}

func validOfferInput() *usecase.OfferInput {
	return &usecase.OfferInput{
		Provider:       "HDFC Bank",
		Code:           "save 50",
		Tagline:        "Flat 50 off",
		DiscountAmount: 50,
		MinCartAmount:  60,
		Active:         true,
	}
}

func TestOfferService_CreateOffer_NormalizesCode(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offers.EXPECT().
		CreateOffer(ctx, mock.MatchedBy(func(o *entity.Offer) bool {
			return o.Code == "SAVE50"
		})).
		RunAndReturn(func(_ context.Context, o *entity.Offer) (*entity.Offer, error) {
			created := *o
			created.ID = "of1"
			return &created, nil
		})

	created, err := fx.service.CreateOffer(ctx, validOfferInput())
	require.NoError(t, err)
	assert.Equal(t, "SAVE50", created.Code)
	assert.Equal(t, "HDFC Bank", created.Provider)
}

func TestOfferService_CreateOffer_StripsInnerWhitespace(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	input := validOfferInput()
	input.Code = "  fresh\t 100 \n"
	input.DiscountAmount = 100
	input.MinCartAmount = 110

	fx.offers.EXPECT().
		CreateOffer(ctx, mock.MatchedBy(func(o *entity.Offer) bool {
			return o.Code == "FRESH100"
		})).
		Return(&entity.Offer{ID: "of1", Code: "FRESH100"}, nil)

	_, err := fx.service.CreateOffer(ctx, input)
	require.NoError(t, err)
}

func TestOfferService_CreateOffer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.OfferInput)
		wantErr error
	}{
		{
			name:    "missing code",
			mutate:  func(in *usecase.OfferInput) { in.Code = "   " },
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "missing provider",
			mutate:  func(in *usecase.OfferInput) { in.Provider = "" },
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "zero discount",
			mutate:  func(in *usecase.OfferInput) { in.DiscountAmount = 0 },
			wantErr: nil, // validation error, asserted by code below
		},
		{
			name:    "min cart below discount plus margin",
			mutate:  func(in *usecase.OfferInput) { in.MinCartAmount = 59 },
			wantErr: domainerrors.ErrMinCartTooLow,
		},
		{
			name:    "min cart equal to discount",
			mutate:  func(in *usecase.OfferInput) { in.MinCartAmount = 50 },
			wantErr: domainerrors.ErrMinCartTooLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)

			input := validOfferInput()
			tt.mutate(input)

			_, err := fx.service.CreateOffer(context.Background(), input)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
			}
		})
	}
}

func TestOfferService_CreateOffer_MinCartAtMargin(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	// Exactly discount + margin is the lowest accepted cart value.
	input := validOfferInput()
	input.MinCartAmount = 60

	fx.offers.EXPECT().CreateOffer(ctx, mock.Anything).Return(&entity.Offer{ID: "of1"}, nil)

	_, err := fx.service.CreateOffer(ctx, input)
	require.NoError(t, err)
}

func TestOfferService_ListOffers_Search(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offers.EXPECT().ListOffers(ctx).Return([]entity.Offer{
		{ID: "of1", Provider: "HDFC Bank", Code: "SAVE50"},
		{ID: "of2", Provider: "Paytm", Code: "FRESH100", Tagline: "Monsoon special"},
	}, nil)

	offers, err := fx.service.ListOffers(ctx, "monsoon")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "of2", offers[0].ID)
}

func TestOfferService_UpdateOffer_NotFound(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offers.EXPECT().UpdateOffer(ctx, mock.Anything).Return(nil, upstream.ErrNotFound)

	_, err := fx.service.UpdateOffer(ctx, "ghost", validOfferInput())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOfferService_DeleteOffer(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offers.EXPECT().DeleteOffer(ctx, "of1").Return(nil)
	assert.NoError(t, fx.service.DeleteOffer(ctx, "of1"))

	fx.offers.EXPECT().DeleteOffer(ctx, "ghost").Return(upstream.ErrNotFound)
	assert.ErrorIs(t, fx.service.DeleteOffer(ctx, "ghost"), domainerrors.ErrNotFound)
}
