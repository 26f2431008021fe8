package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/middlewares"
	"github.com/avdeev21/retro-market/internal/models"
	"github.com/avdeev21/retro-market/internal/services"
)

// ListingAdder defines the interface that the listing creation service must
// implement.
type ListingAdder interface {
	Add(ctx context.Context, game models.GameDB) (uuid.UUID, error)
}

// CreateListingRequest represents the JSON body for listing creation
// swagger:model CreateListingRequest
type CreateListingRequest struct {
	// Game title
	// required: true
	// default: Chrono Trigger
	Title string `json:"title"`

	// Console id
	// required: true
	ConsoleID uuid.UUID `json:"console_id"`

	// Condition
	// required: true
	// default: Good
	Condition string `json:"condition"`

	// Rarity
	// required: true
	// default: Rare
	Rarity string `json:"rarity"`

	// Asking price, must be positive
	// required: true
	// default: 120.0
	Price float64 `json:"price"`

	// Description
	Description string `json:"description"`
}

// CreateListingResponse represents a successful listing creation response
// swagger:model CreateListingResponse
type CreateListingResponse struct {
	// New listing id
	GameID uuid.UUID `json:"game_id"`
}

// NewCreateListingHandler returns an HTTP handler for listing creation.
// The authenticated seller becomes the listing owner.
// @Summary Create a listing
// @Description Validates condition, rarity, and price, resolves the console reference, and creates the listing owned by the authenticated seller.
// @Tags listings
// @Accept json
// @Produce json
// @Param createListingRequest body handlers.CreateListingRequest true "Listing creation request"
// @Success 201 {object} handlers.CreateListingResponse "Listing created"
// @Failure 400 {object} handlers.ListingsErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ListingsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ListingsErrorResponse "Internal server error"
// @Router /listings [post]
// @Security BearerAuth
func NewCreateListingHandler(svc ListingAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := middlewares.SellerIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingsErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingsErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		gameID, err := svc.Add(r.Context(), models.GameDB{
			Title:       req.Title,
			ConsoleID:   req.ConsoleID,
			SellerID:    sellerID,
			Condition:   req.Condition,
			Rarity:      req.Rarity,
			Price:       req.Price,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCondition),
				errors.Is(err, services.ErrInvalidRarity),
				errors.Is(err, services.ErrInvalidPrice),
				errors.Is(err, services.ErrUnknownConsole),
				errors.Is(err, services.ErrUnknownSeller):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListingsErrorResponse{
					Error: err.Error(),
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateListingResponse{
			GameID: gameID,
		})
	}
}
