package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

// ListingLister defines the interface that the listing browse service must
// implement.
type ListingLister interface {
	List(ctx context.Context) ([]models.Listing, error)
	Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
}

// ListingsResponse represents the listing collection response
// swagger:model ListingsResponse
type ListingsResponse struct {
	// Listings, newest first
	Listings []models.Listing `json:"listings"`
}

// ListingsErrorResponse represents an error response for listing browsing
// swagger:model ListingsErrorResponse
type ListingsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListListingsHandler returns an HTTP handler for browsing listings.
// @Summary Browse listings
// @Description Returns all listings joined with console and seller, newest first. Optional console, condition, and rarity query filters combine with AND.
// @Tags listings
// @Produce json
// @Param console query string false "Console id filter"
// @Param condition query string false "Condition filter"
// @Param rarity query string false "Rarity filter"
// @Success 200 {object} handlers.ListingsResponse "Listings"
// @Failure 500 {object} handlers.ListingsErrorResponse "Internal server error"
// @Router /listings [get]
func NewListListingsHandler(svc ListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.ListingFilter{
			Console:   q.Get("console"),
			Condition: q.Get("condition"),
			Rarity:    q.Get("rarity"),
		}

		var (
			listings []models.Listing
			err      error
		)
		if filter.IsZero() {
			listings, err = svc.List(r.Context())
		} else {
			listings, err = svc.Search(r.Context(), filter)
		}
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
