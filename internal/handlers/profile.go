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

// ProfileUpdater applies a seller's own profile edits.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, sellerID uuid.UUID, upd models.SellerProfileUpdate) (bool, error)
}

// UpdateProfileResponse reports whether the profile actually changed
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Whether any field changed
	// default: true
	Updated bool `json:"updated"`
}

// NewUpdateProfileHandler returns an HTTP handler for profile edits.
// Rating and sales counters are not editable through this route.
// @Summary Update own profile
// @Description Updates the authenticated seller's location, bio, shipping info, response time, and contact number.
// @Tags sellers
// @Accept json
// @Produce json
// @Param profileUpdate body models.SellerProfileUpdate true "Profile fields"
// @Success 200 {object} handlers.UpdateProfileResponse "Update outcome"
// @Failure 400 {object} handlers.SellersErrorResponse "Malformed request"
// @Failure 401 {object} handlers.SellersErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SellersErrorResponse "Internal server error"
// @Router /me/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := middlewares.SellerIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req models.SellerProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), sellerID, req)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProfileResponse{
			Updated: updated,
		})
	}
}
