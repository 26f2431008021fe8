package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev21/retro-market/internal/middlewares"
	"github.com/avdeev21/retro-market/internal/models"
)

func TestMyListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerID := uuid.New()

	t.Run("returns own listings without seller join", func(t *testing.T) {
		mockSvc := NewMockOwnListingsReader(ctrl)
		mockSvc.EXPECT().Listings(gomock.Any(), sellerID).Return([]models.Listing{
			{GameDB: models.GameDB{Title: "F-Zero"}, Console: models.Console{Name: "SNES"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me/listings", nil)
		req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
		rr := httptest.NewRecorder()

		NewMyListingsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		var resp ListingsResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Listings, 1)
		assert.Nil(t, resp.Listings[0].Seller)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMyListingsHandler(NewMockOwnListingsReader(ctrl)).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/me/listings", nil))
		assert.Equal(t, 401, rr.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := NewMockOwnListingsReader(ctrl)
		mockSvc.EXPECT().Listings(gomock.Any(), sellerID).Return([]models.Listing{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/me/listings", nil)
		req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
		rr := httptest.NewRecorder()

		NewMyListingsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, 500, rr.Code)
	})
}
