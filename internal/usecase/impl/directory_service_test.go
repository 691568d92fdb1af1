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

type directoryFixtures struct {
	service   usecase.DirectoryUsecase
	directory *mockUpstream.MockDirectoryAPI
}

func createTestDirectoryService(t *testing.T) directoryFixtures {
	directory := mockUpstream.NewMockDirectoryAPI(t)

	return directoryFixtures{
		service:   NewDirectoryService(directory),
		directory: directory,
	}
}

func validSellerInput() *usecase.SellerInput {
	return &usecase.SellerInput{
		ShopName:  "Fresh Mart",
		OwnerName: "Meena Iyer",
		Mobile:    "9876543210",
		Address:   "12 MG Road",
		Pincode:   "560001",
	}
}

func TestDirectoryService_CreateSeller_Success(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().
		CreateSeller(ctx, mock.MatchedBy(func(s *entity.Seller) bool {
			return s.ShopName == "Fresh Mart" && s.Mobile == "9876543210"
		})).
		Return(&entity.Seller{ID: "s1", ShopName: "Fresh Mart"}, nil)

	created, err := fx.service.CreateSeller(ctx, validSellerInput())
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)
}

func TestDirectoryService_CreateSeller_WithLocation(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	lat, lng := 12.9716, 77.5946
	input := validSellerInput()
	input.Latitude = &lat
	input.Longitude = &lng

	fx.directory.EXPECT().
		CreateSeller(ctx, mock.MatchedBy(func(s *entity.Seller) bool {
			// orb points are [longitude, latitude]
			return s.Location != nil && s.Location.Lon() == lng && s.Location.Lat() == lat
		})).
		Return(&entity.Seller{ID: "s1"}, nil)

	_, err := fx.service.CreateSeller(ctx, input)
	require.NoError(t, err)
}

func TestDirectoryService_CreateSeller_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SellerInput)
		wantErr error
	}{
		{"blank shop name", func(in *usecase.SellerInput) { in.ShopName = "  " }, domainerrors.ErrMissingFields},
		{"blank owner name", func(in *usecase.SellerInput) { in.OwnerName = "" }, domainerrors.ErrMissingFields},
		{"short mobile", func(in *usecase.SellerInput) { in.Mobile = "98765" }, domainerrors.ErrInvalidMobile},
		{"mobile with letters", func(in *usecase.SellerInput) { in.Mobile = "98765MNOPQ" }, domainerrors.ErrInvalidMobile},
		{"eleven digits", func(in *usecase.SellerInput) { in.Mobile = "98765432100" }, domainerrors.ErrInvalidMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDirectoryService(t)

			input := validSellerInput()
			tt.mutate(input)

			_, err := fx.service.CreateSeller(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDirectoryService_CreateBuyer_Success(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().
		CreateBuyer(ctx, mock.MatchedBy(func(b *entity.Buyer) bool {
			return b.FullName == "Asha Nair" && b.Mobile == "9812345678"
		})).
		Return(&entity.Buyer{ID: "b1", FullName: "Asha Nair"}, nil)

	created, err := fx.service.CreateBuyer(ctx, &usecase.BuyerInput{FullName: " Asha Nair ", Mobile: "9812345678"})
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
}

func TestDirectoryService_CreateBuyer_Validation(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	_, err := fx.service.CreateBuyer(ctx, &usecase.BuyerInput{FullName: "  ", Mobile: "9812345678"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)

	_, err = fx.service.CreateBuyer(ctx, &usecase.BuyerInput{FullName: "Asha Nair", Mobile: "12345"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMobile)
}

func TestDirectoryService_CreatePartner_Validation(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	_, err := fx.service.CreatePartner(ctx, &usecase.PartnerInput{FullName: "", Mobile: "9900112233"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)

	_, err = fx.service.CreatePartner(ctx, &usecase.PartnerInput{FullName: "Ravi Kumar", Mobile: "12345"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMobile)
}

func TestDirectoryService_UpdatePartner_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().UpdatePartner(ctx, mock.Anything).Return(nil, upstream.ErrNotFound)

	_, err := fx.service.UpdatePartner(ctx, "ghost", &usecase.PartnerInput{FullName: "Ravi Kumar", Mobile: "9900112233"})
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}

func TestDirectoryService_ListBuyers_Search(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().ListBuyers(ctx).Return([]entity.Buyer{
		{ID: "b1", FullName: "Asha Nair", Mobile: "9812345678"},
		{ID: "b2", FullName: "Vikram Rao", Mobile: "9900112233"},
	}, nil).Twice()

	byName, err := fx.service.ListBuyers(ctx, "  ASHA ")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "b1", byName[0].ID)

	byMobile, err := fx.service.ListBuyers(ctx, "990011")
	require.NoError(t, err)
	require.Len(t, byMobile, 1)
	assert.Equal(t, "b2", byMobile[0].ID)
}

func TestDirectoryService_ListPartners_SearchByPincode(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().ListPartners(ctx).Return([]entity.DeliveryPartner{
		{ID: "p1", FullName: "Ravi Kumar", Mobile: "9900112233", Pincode: "560001"},
		{ID: "p2", FullName: "Suresh Babu", Mobile: "9811122233", Pincode: "110001"},
	}, nil)

	partners, err := fx.service.ListPartners(ctx, "5600")
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, "p1", partners[0].ID)
}

func TestDirectoryService_GetSellerDetail_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().GetSellerDetail(ctx, "ghost").Return(nil, upstream.ErrNotFound)

	_, err := fx.service.GetSellerDetail(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDirectoryService_DeleteBuyer(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.directory.EXPECT().DeleteBuyer(ctx, "b1").Return(nil)
	assert.NoError(t, fx.service.DeleteBuyer(ctx, "b1"))
}
