package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev21/retro-market/internal/models"
	"github.com/avdeev21/retro-market/internal/services"
)

func TestListSellersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns sellers", func(t *testing.T) {
		mockSvc := NewMockSellerLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.SellerDB{
			{Username: "topseller", Rating: 4.9},
			{Username: "newbie", Rating: 4.1},
		}, nil)

		rr := httptest.NewRecorder()
		NewListSellersHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sellers", nil))

		assert.Equal(t, 200, rr.Code)
		var resp SellersResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Sellers, 2)
		assert.Equal(t, "topseller", resp.Sellers[0].Username)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := NewMockSellerLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewListSellersHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sellers", nil))

		assert.Equal(t, 500, rr.Code)
	})
}

func TestGetSellerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerID := uuid.New()

	tests := []struct {
		name         string
		pathID       string
		mockSetup    func(m *MockSellerLister)
		expectedCode int
	}{
		{
			name:   "found",
			pathID: sellerID.String(),
			mockSetup: func(m *MockSellerLister) {
				m.EXPECT().Get(gomock.Any(), sellerID).Return(&models.SellerDB{SellerID: sellerID, Username: "alice"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "not found",
			pathID: sellerID.String(),
			mockSetup: func(m *MockSellerLister) {
				m.EXPECT().Get(gomock.Any(), sellerID).Return(nil, services.ErrSellerNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "malformed id",
			pathID:       "not-a-uuid",
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSellerLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/sellers/{id}", NewGetSellerHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/sellers/"+tt.pathID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
