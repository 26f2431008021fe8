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

// SellerLister defines the seller directory reads.
type SellerLister interface {
	List(ctx context.Context) ([]models.SellerDB, error)
	Get(ctx context.Context, sellerID uuid.UUID) (*models.SellerDB, error)
}

// SellersResponse represents the seller directory response
// swagger:model SellersResponse
type SellersResponse struct {
	// Sellers sorted by rating descending
	Sellers []models.SellerDB `json:"sellers"`
}

// SellerResponse represents a single seller response
// swagger:model SellerResponse
type SellerResponse struct {
	// The seller
	Seller *models.SellerDB `json:"seller"`
}

// SellersErrorResponse represents an error response for the seller directory
// swagger:model SellersErrorResponse
type SellersErrorResponse struct {
	// Error message
	// default: Seller not found
	Error string `json:"error"`
}

// NewListSellersHandler returns an HTTP handler for the seller directory.
// @Summary List sellers
// @Description Returns every seller sorted by rating descending.
// @Tags sellers
// @Produce json
// @Success 200 {object} handlers.SellersResponse "Sellers"
// @Failure 500 {object} handlers.SellersErrorResponse "Internal server error"
// @Router /sellers [get]
func NewListSellersHandler(svc SellerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellers, err := svc.List(r.Context())
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
		json.NewEncoder(w).Encode(SellersResponse{
			Sellers: sellers,
		})
	}
}

// NewGetSellerHandler returns an HTTP handler for a single seller profile.
// @Summary Get a seller
// @Description Returns one seller's public profile.
// @Tags sellers
// @Produce json
// @Param id path string true "Seller id"
// @Success 200 {object} handlers.SellerResponse "Seller"
// @Failure 404 {object} handlers.SellersErrorResponse "Seller not found"
// @Failure 500 {object} handlers.SellersErrorResponse "Internal server error"
// @Router /sellers/{id} [get]
func NewGetSellerHandler(svc SellerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SellersErrorResponse{
				Error: "Seller not found",
			})
			return
		}

		seller, err := svc.Get(r.Context(), sellerID)
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
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SellerResponse{
			Seller: seller,
		})
	}
}
