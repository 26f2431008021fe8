package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
	"github.com/avdeev21/retro-market/internal/services"
)

// ListingGetter defines the interface for a single listing lookup.
type ListingGetter interface {
	Get(ctx context.Context, gameID uuid.UUID) (*models.Listing, error)
}

// ListingResponse represents a single fully joined listing
// swagger:model ListingResponse
type ListingResponse struct {
	// The listing
	Listing *models.Listing `json:"listing"`
}

// NewGetListingHandler returns an HTTP handler for a single listing.
// A malformed id behaves like an unknown one.
// @Summary Get a listing
// @Description Returns one listing joined with its console and seller.
// @Tags listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.ListingResponse "Listing"
// @Failure 404 {object} handlers.ListingsErrorResponse "Listing not found"
// @Failure 500 {object} handlers.ListingsErrorResponse "Internal server error"
// @Router /listings/{id} [get]
func NewGetListingHandler(svc ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingsErrorResponse{
				Error: "Listing not found",
			})
			return
		}

		listing, err := svc.Get(r.Context(), gameID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListingsErrorResponse{
					Error: "Listing not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListingsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListingResponse{
			Listing: listing,
		})
	}
}
