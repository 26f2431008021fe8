package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/middlewares"
	"github.com/avdeev21/retro-market/internal/services"
)

// ImageSaver stores an uploaded image and returns its generated filename.
type ImageSaver interface {
	Save(originalName string, r io.Reader) (string, error)
}

// ListingImageWriter defines the listing image mutations. Every call is
// authorized against the acting seller.
type ListingImageWriter interface {
	AppendImage(ctx context.Context, gameID, sellerID uuid.UUID, filename string) error
	RemoveImage(ctx context.Context, gameID, sellerID uuid.UUID, filename string) (bool, error)
	SetPrimaryImage(ctx context.Context, gameID, sellerID uuid.UUID, filename string) error
}

// UploadImagesResponse reports a multi-file upload outcome
// swagger:model UploadImagesResponse
type UploadImagesResponse struct {
	// Stored filenames, in upload order
	Uploaded []string `json:"uploaded"`

	// Number of rejected files
	// default: 0
	Rejected int `json:"rejected"`
}

// SetPrimaryImageRequest represents the JSON body for choosing the primary
// image
// swagger:model SetPrimaryImageRequest
type SetPrimaryImageRequest struct {
	// Stored filename
	// required: true
	Filename string `json:"filename"`
}

// ImageMessageResponse represents a simple image mutation outcome
// swagger:model ImageMessageResponse
type ImageMessageResponse struct {
	// Outcome message
	Message string `json:"message"`
}

// NewUploadImagesHandler returns an HTTP handler for multi-file listing
// image upload. Rejected files do not abort the batch.
// @Summary Upload listing images
// @Description Stores each accepted image and appends it to the listing's image sequence. Files with unsupported extensions are counted as rejected and the rest still succeed.
// @Tags listings
// @Accept mpfd
// @Produce json
// @Param id path string true "Listing id"
// @Param images formData file true "Image files"
// @Success 200 {object} handlers.UploadImagesResponse "Upload outcome"
// @Failure 400 {object} handlers.ListingsErrorResponse "Malformed request"
// @Failure 401 {object} handlers.ListingsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ListingsErrorResponse "Not the listing owner"
// @Failure 404 {object} handlers.ListingsErrorResponse "Listing not found"
// @Router /listings/{id}/images [post]
// @Security BearerAuth
func NewUploadImagesHandler(svc ListingImageWriter, store ImageSaver, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := middlewares.SellerIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Unauthorized"})
			return
		}

		gameID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Listing not found"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "invalid multipart form"})
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "no files provided"})
			return
		}

		uploaded := []string{}
		rejected := 0

		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				logger.Log.Warnw("failed to open uploaded file", "filename", fh.Filename, "error", err)
				rejected++
				continue
			}

			filename, err := store.Save(fh.Filename, f)
			f.Close()
			if err != nil {
				logger.Log.Warnw("upload rejected", "filename", fh.Filename, "error", err)
				rejected++
				continue
			}

			if err := svc.AppendImage(r.Context(), gameID, sellerID, filename); err != nil {
				switch {
				case errors.Is(err, services.ErrNotOwner):
					w.WriteHeader(http.StatusForbidden)
					json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Only the listing owner may modify it"})
				case errors.Is(err, services.ErrListingNotFound):
					w.WriteHeader(http.StatusNotFound)
					json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Listing not found"})
				default:
					logger.Log.Errorw("internal server error", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Internal server error"})
				}
				return
			}

			uploaded = append(uploaded, filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadImagesResponse{
			Uploaded: uploaded,
			Rejected: rejected,
		})
	}
}

// NewRemoveImageHandler returns an HTTP handler that removes every
// occurrence of a filename from the listing's image sequence.
// @Summary Remove a listing image
// @Description Removes all occurrences of the filename from the listing's image sequence.
// @Tags listings
// @Produce json
// @Param id path string true "Listing id"
// @Param filename path string true "Stored filename"
// @Success 200 {object} handlers.ImageMessageResponse "Image removed"
// @Failure 401 {object} handlers.ListingsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ListingsErrorResponse "Not the listing owner"
// @Failure 404 {object} handlers.ListingsErrorResponse "Listing or image not found"
// @Router /listings/{id}/images/{filename} [delete]
// @Security BearerAuth
func NewRemoveImageHandler(svc ListingImageWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := middlewares.SellerIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Unauthorized"})
			return
		}

		gameID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Listing not found"})
			return
		}
		filename := chi.URLParam(r, "filename")

		removed, err := svc.RemoveImage(r.Context(), gameID, sellerID, filename)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Only the listing owner may modify it"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Internal server error"})
			}
			return
		}
		if !removed {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Image not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ImageMessageResponse{
			Message: "Image removed",
		})
	}
}

// NewSetPrimaryImageHandler returns an HTTP handler that records the
// listing's primary image.
// @Summary Set the primary listing image
// @Description Records which stored filename is the listing's primary image.
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing id"
// @Param setPrimaryImageRequest body handlers.SetPrimaryImageRequest true "Primary image request"
// @Success 200 {object} handlers.ImageMessageResponse "Primary image set"
// @Failure 400 {object} handlers.ListingsErrorResponse "Malformed request"
// @Failure 401 {object} handlers.ListingsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ListingsErrorResponse "Not the listing owner"
// @Failure 404 {object} handlers.ListingsErrorResponse "Listing not found"
// @Router /listings/{id}/primary-image [put]
// @Security BearerAuth
func NewSetPrimaryImageHandler(svc ListingImageWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := middlewares.SellerIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Unauthorized"})
			return
		}

		gameID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Listing not found"})
			return
		}

		var req SetPrimaryImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.SetPrimaryImage(r.Context(), gameID, sellerID, req.Filename); err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Only the listing owner may modify it"})
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Listing not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListingsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ImageMessageResponse{
			Message: "Primary image set",
		})
	}
}
