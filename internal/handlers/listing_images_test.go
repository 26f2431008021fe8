package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev21/retro-market/internal/middlewares"
	"github.com/avdeev21/retro-market/internal/services"
)

const testMaxUpload = 16 << 20

func multipartBody(t *testing.T, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for _, name := range filenames {
		part, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("imagedata"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadImagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameID := uuid.New()
	sellerID := uuid.New()

	t.Run("partial success continues past rejected files", func(t *testing.T) {
		mockSvc := NewMockListingImageWriter(ctrl)
		mockStore := NewMockImageSaver(ctrl)

		mockStore.EXPECT().Save("good.png", gomock.Any()).Return("aaaabbbbccccdddd.png", nil)
		mockStore.EXPECT().Save("bad.pdf", gomock.Any()).Return("", errors.New("unsupported image type"))
		mockStore.EXPECT().Save("also.jpg", gomock.Any()).Return("1111222233334444.jpg", nil)

		mockSvc.EXPECT().AppendImage(gomock.Any(), gameID, sellerID, "aaaabbbbccccdddd.png").Return(nil)
		mockSvc.EXPECT().AppendImage(gomock.Any(), gameID, sellerID, "1111222233334444.jpg").Return(nil)

		r := chi.NewRouter()
		r.Post("/listings/{id}/images", NewUploadImagesHandler(mockSvc, mockStore, testMaxUpload))

		body, contentType := multipartBody(t, "good.png", "bad.pdf", "also.jpg")
		req := httptest.NewRequest(http.MethodPost, "/listings/"+gameID.String()+"/images", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		var resp UploadImagesResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []string{"aaaabbbbccccdddd.png", "1111222233334444.jpg"}, resp.Uploaded)
		assert.Equal(t, 1, resp.Rejected)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		mockSvc := NewMockListingImageWriter(ctrl)
		mockStore := NewMockImageSaver(ctrl)

		mockStore.EXPECT().Save("good.png", gomock.Any()).Return("aaaabbbbccccdddd.png", nil)
		mockSvc.EXPECT().
			AppendImage(gomock.Any(), gameID, sellerID, "aaaabbbbccccdddd.png").
			Return(services.ErrNotOwner)

		r := chi.NewRouter()
		r.Post("/listings/{id}/images", NewUploadImagesHandler(mockSvc, mockStore, testMaxUpload))

		body, contentType := multipartBody(t, "good.png")
		req := httptest.NewRequest(http.MethodPost, "/listings/"+gameID.String()+"/images", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, 403, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r := chi.NewRouter()
		r.Post("/listings/{id}/images", NewUploadImagesHandler(NewMockListingImageWriter(ctrl), NewMockImageSaver(ctrl), testMaxUpload))

		body, contentType := multipartBody(t, "good.png")
		req := httptest.NewRequest(http.MethodPost, "/listings/"+gameID.String()+"/images", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
	})

	t.Run("no files", func(t *testing.T) {
		r := chi.NewRouter()
		r.Post("/listings/{id}/images", NewUploadImagesHandler(NewMockListingImageWriter(ctrl), NewMockImageSaver(ctrl), testMaxUpload))

		body, contentType := multipartBody(t)
		req := httptest.NewRequest(http.MethodPost, "/listings/"+gameID.String()+"/images", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, 400, rr.Code)
	})
}

func TestRemoveImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameID := uuid.New()
	sellerID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockListingImageWriter)
		expectedCode int
	}{
		{
			name: "removed",
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().RemoveImage(gomock.Any(), gameID, sellerID, "cart.jpg").Return(true, nil)
			},
			expectedCode: 200,
		},
		{
			name: "filename absent",
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().RemoveImage(gomock.Any(), gameID, sellerID, "cart.jpg").Return(false, nil)
			},
			expectedCode: 404,
		},
		{
			name: "not owner",
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().RemoveImage(gomock.Any(), gameID, sellerID, "cart.jpg").Return(false, services.ErrNotOwner)
			},
			expectedCode: 403,
		},
		{
			name: "storage failure",
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().RemoveImage(gomock.Any(), gameID, sellerID, "cart.jpg").Return(false, errors.New("db down"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingImageWriter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/listings/{id}/images/{filename}", NewRemoveImageHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/listings/"+gameID.String()+"/images/cart.jpg", nil)
			req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSetPrimaryImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameID := uuid.New()
	sellerID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockListingImageWriter)
		expectedCode int
	}{
		{
			name: "set",
			body: `{"filename":"box.png"}`,
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().SetPrimaryImage(gomock.Any(), gameID, sellerID, "box.png").Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:         "missing filename",
			body:         `{}`,
			expectedCode: 400,
		},
		{
			name: "not owner",
			body: `{"filename":"box.png"}`,
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().SetPrimaryImage(gomock.Any(), gameID, sellerID, "box.png").Return(services.ErrNotOwner)
			},
			expectedCode: 403,
		},
		{
			name: "listing gone",
			body: `{"filename":"box.png"}`,
			mockSetup: func(m *MockListingImageWriter) {
				m.EXPECT().SetPrimaryImage(gomock.Any(), gameID, sellerID, "box.png").Return(services.ErrListingNotFound)
			},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingImageWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Put("/listings/{id}/primary-image", NewSetPrimaryImageHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/listings/"+gameID.String()+"/primary-image", strings.NewReader(tt.body))
			req = req.WithContext(middlewares.WithSellerID(req.Context(), sellerID))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
