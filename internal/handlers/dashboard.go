package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/middlewares"
	"github.com/avdeev21/retro-market/internal/models"
)

// OwnListingsReader returns the authenticated seller's own listings.
type OwnListingsReader interface {
	Listings(ctx context.Context, sellerID uuid.UUID) ([]models.Listing, error)
}

// NewMyListingsHandler returns an HTTP handler for the seller dashboard.
// The seller join is omitted since the caller is the seller.
// @Summary Own listings
// @Description Returns the authenticated seller's listings joined with consoles only, newest first.
// @Tags sellers
// @Produce json
// @Success 200 {object} handlers.ListingsResponse "Listings"
// @Failure 401 {object} handlers.ListingsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ListingsErrorResponse "Internal server error"
// @Router /me/listings [get]
// @Security BearerAuth
func NewMyListingsHandler(svc OwnListingsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := middlewares.SellerIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingsErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		listings, err := svc.Listings(r.Context(), sellerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListingsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListingsResponse{
			Listings: listings,
		})
	}
}
