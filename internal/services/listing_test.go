package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev21/retro-market/internal/models"
	"github.com/avdeev21/retro-market/internal/services"
)

func newListingService(ctrl *gomock.Controller) (*services.ListingService, *services.MockListingReader, *services.MockListingWriter, *services.MockConsoleReader, *services.MockSellerReader) {
	reader := services.NewMockListingReader(ctrl)
	writer := services.NewMockListingWriter(ctrl)
	consoles := services.NewMockConsoleReader(ctrl)
	sellers := services.NewMockSellerReader(ctrl)
	return services.NewListingService(reader, writer, consoles, sellers), reader, writer, consoles, sellers
}

func TestListingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newListingService(ctrl)

	t.Run("returns listings", func(t *testing.T) {
		want := []models.Listing{
			{GameDB: models.GameDB{Title: "Chrono Trigger"}},
			{GameDB: models.GameDB{Title: "Earthbound"}},
		}
		reader.EXPECT().ListAll(gomock.Any()).Return(want, nil)
		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty marketplace yields empty slice, not nil", func(t *testing.T) {
		reader.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("storage failure yields empty slice and error", func(t *testing.T) {
		reader.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))
		got, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestListingService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newListingService(ctrl)

	filter := models.ListingFilter{Condition: "Mint", Rarity: "Rare"}

	t.Run("passes filter through", func(t *testing.T) {
		want := []models.Listing{{GameDB: models.GameDB{Title: "Panzer Dragoon Saga"}}}
		reader.EXPECT().Search(gomock.Any(), filter).Return(want, nil)
		got, err := svc.Search(context.Background(), filter)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no matches yields empty slice, not nil", func(t *testing.T) {
		reader.EXPECT().Search(gomock.Any(), filter).Return(nil, nil)
		got, err := svc.Search(context.Background(), filter)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("storage failure yields empty slice and error", func(t *testing.T) {
		reader.EXPECT().Search(gomock.Any(), filter).Return(nil, errors.New("db down"))
		got, err := svc.Search(context.Background(), filter)
		assert.Error(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestListingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newListingService(ctrl)

	gameID := uuid.New()

	t.Run("found", func(t *testing.T) {
		want := &models.Listing{GameDB: models.GameDB{GameID: gameID, Title: "Secret of Mana"}}
		reader.EXPECT().GetByID(gomock.Any(), gameID).Return(want, nil)
		got, err := svc.Get(context.Background(), gameID)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), gameID).Return(nil, nil)
		got, err := svc.Get(context.Background(), gameID)
		assert.ErrorIs(t, err, services.ErrListingNotFound)
		assert.Nil(t, got)
	})

	t.Run("storage failure is not not-found", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), gameID).Return(nil, errors.New("db down"))
		got, err := svc.Get(context.Background(), gameID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrListingNotFound)
		assert.Nil(t, got)
	})
}

func TestListingService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, consoles, sellers := newListingService(ctrl)

	consoleID := uuid.New()
	sellerID := uuid.New()
	gameID := uuid.New()

	valid := models.GameDB{
		Title:     "Super Metroid",
		ConsoleID: consoleID,
		SellerID:  sellerID,
		Condition: "Good",
		Rarity:    "Uncommon",
		Price:     89.99,
	}

	tests := []struct {
		name    string
		mutate  func(g *models.GameDB)
		setup   func()
		wantErr error
	}{
		{
			name: "successful add",
			setup: func() {
				consoles.EXPECT().GetByID(gomock.Any(), consoleID).Return(&models.Console{ConsoleID: consoleID, Name: "SNES"}, nil)
				sellers.EXPECT().GetByID(gomock.Any(), sellerID).Return(&models.SellerDB{SellerID: sellerID}, nil)
				writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g models.GameDB) (uuid.UUID, error) {
						assert.False(t, g.DateListed.IsZero())
						return gameID, nil
					})
			},
		},
		{
			name:    "invalid condition",
			mutate:  func(g *models.GameDB) { g.Condition = "Shiny" },
			wantErr: services.ErrInvalidCondition,
		},
		{
			name:    "invalid rarity",
			mutate:  func(g *models.GameDB) { g.Rarity = "Mythic" },
			wantErr: services.ErrInvalidRarity,
		},
		{
			name:    "zero price",
			mutate:  func(g *models.GameDB) { g.Price = 0 },
			wantErr: services.ErrInvalidPrice,
		},
		{
			name:    "negative price",
			mutate:  func(g *models.GameDB) { g.Price = -5 },
			wantErr: services.ErrInvalidPrice,
		},
		{
			name: "unknown console",
			setup: func() {
				consoles.EXPECT().GetByID(gomock.Any(), consoleID).Return(nil, nil)
			},
			wantErr: services.ErrUnknownConsole,
		},
		{
			name: "unknown seller",
			setup: func() {
				consoles.EXPECT().GetByID(gomock.Any(), consoleID).Return(&models.Console{ConsoleID: consoleID, Name: "SNES"}, nil)
				sellers.EXPECT().GetByID(gomock.Any(), sellerID).Return(nil, nil)
			},
			wantErr: services.ErrUnknownSeller,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := valid
			if tt.mutate != nil {
				tt.mutate(&game)
			}
			if tt.setup != nil {
				tt.setup()
			}

			id, err := svc.Add(context.Background(), game)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, gameID, id)
			}
		})
	}
}

func TestListingService_AppendImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _, _ := newListingService(ctrl)

	gameID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner appends", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(true, nil)
		writer.EXPECT().AppendImage(gomock.Any(), gameID, "cart.jpg").Return(true, nil)
		assert.NoError(t, svc.AppendImage(context.Background(), gameID, owner, "cart.jpg"))
	})

	t.Run("non-owner rejected before write", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, stranger).Return(false, nil)
		err := svc.AppendImage(context.Background(), gameID, stranger, "cart.jpg")
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})

	t.Run("listing vanished between check and write", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(true, nil)
		writer.EXPECT().AppendImage(gomock.Any(), gameID, "cart.jpg").Return(false, nil)
		err := svc.AppendImage(context.Background(), gameID, owner, "cart.jpg")
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})

	t.Run("ownership check failure propagates", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(false, errors.New("db down"))
		err := svc.AppendImage(context.Background(), gameID, owner, "cart.jpg")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrNotOwner)
	})
}

func TestListingService_RemoveImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _, _ := newListingService(ctrl)

	gameID := uuid.New()
	owner := uuid.New()

	t.Run("removed", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(true, nil)
		writer.EXPECT().RemoveImage(gomock.Any(), gameID, "cart.jpg").Return(true, nil)
		removed, err := svc.RemoveImage(context.Background(), gameID, owner, "cart.jpg")
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("filename absent", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(true, nil)
		writer.EXPECT().RemoveImage(gomock.Any(), gameID, "missing.jpg").Return(false, nil)
		removed, err := svc.RemoveImage(context.Background(), gameID, owner, "missing.jpg")
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		stranger := uuid.New()
		reader.EXPECT().IsOwner(gomock.Any(), gameID, stranger).Return(false, nil)
		removed, err := svc.RemoveImage(context.Background(), gameID, stranger, "cart.jpg")
		assert.ErrorIs(t, err, services.ErrNotOwner)
		assert.False(t, removed)
	})
}

func TestListingService_SetPrimaryImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer, _, _ := newListingService(ctrl)

	gameID := uuid.New()
	owner := uuid.New()

	t.Run("set", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(true, nil)
		writer.EXPECT().SetPrimaryImage(gomock.Any(), gameID, "box.png").Return(true, nil)
		assert.NoError(t, svc.SetPrimaryImage(context.Background(), gameID, owner, "box.png"))
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		stranger := uuid.New()
		reader.EXPECT().IsOwner(gomock.Any(), gameID, stranger).Return(false, nil)
		err := svc.SetPrimaryImage(context.Background(), gameID, stranger, "box.png")
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})

	t.Run("listing gone", func(t *testing.T) {
		reader.EXPECT().IsOwner(gomock.Any(), gameID, owner).Return(true, nil)
		writer.EXPECT().SetPrimaryImage(gomock.Any(), gameID, "box.png").Return(false, nil)
		err := svc.SetPrimaryImage(context.Background(), gameID, owner, "box.png")
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})
}
