package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/services"
)

// ContactSender delivers a buyer enquiry to a seller.
type ContactSender interface {
	Send(ctx context.Context, sellerID uuid.UUID, buyerName, buyerEmail, gameTitle, message string) error
}

// ContactRequest represents the JSON body for contacting a seller
// swagger:model ContactRequest
type ContactRequest struct {
	// Buyer name
	// required: true
	// default: Bob
	BuyerName string `json:"buyer_name"`

	// Buyer email
	// required: true
	// default: bob@example.com
	BuyerEmail string `json:"buyer_email"`

	// Game the enquiry is about
	// default: Chrono Trigger
	GameTitle string `json:"game_title"`

	// Message text
	// required: true
	Message string `json:"message"`
}

// ContactResponse represents an accepted enquiry
// swagger:model ContactResponse
type ContactResponse struct {
	// Outcome message
	// default: Message sent
	Message string `json:"message"`
}

// NewContactSellerHandler returns an HTTP handler for buyer enquiries.
// Delivery is asynchronous; acceptance does not guarantee receipt.
// @Summary Contact a seller
// @Description Accepts a buyer enquiry and queues it for delivery to the seller.
// @Tags sellers
// @Accept json
// @Produce json
// @Param id path string true "Seller id"
// @Param contactRequest body handlers.ContactRequest true "Enquiry"
// @Success 202 {object} handlers.ContactResponse "Enquiry accepted"
// @Failure 400 {object} handlers.SellersErrorResponse "Malformed request"
// @Failure 404 {object} handlers.SellersErrorResponse "Seller not found"
// @Failure 500 {object} handlers.SellersErrorResponse "Internal server error"
// @Router /sellers/{id}/contact [post]
func NewContactSellerHandler(svc ContactSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "Seller not found",
			})
			return
		}

		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "invalid request body",
			})
			return
		}
		if req.BuyerName == "" || req.BuyerEmail == "" || req.Message == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "buyer_name, buyer_email, and message are required",
			})
			return
		}

		err = svc.Send(r.Context(), sellerID, req.BuyerName, req.BuyerEmail, req.GameTitle, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSellerNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SellersErrorResponse{
					Error: "Seller not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SellersErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(ContactResponse{
			Message: "Message sent",
		})
	}
}
