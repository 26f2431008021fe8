package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, location string) (uuid.UUID, string, error)
}

// RegisterRequest represents the JSON body for seller registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: retro99
	Username string `json:"username"`

	// Email
	// required: true
	// default: retro99@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret12
	Password string `json:"password"`

	// Password confirmation, must equal password
	// required: true
	// default: secret12
	ConfirmPassword string `json:"confirm_password"`

	// Location
	// default: Pune, India
	Location string `json:"location"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// New seller id
	SellerID uuid.UUID `json:"seller_id"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for seller registration.
// @Summary Register a new seller
// @Description Creates a seller account with a unique username. The password is salted and hashed before storing. Returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Seller registration request"
// @Success 201 {object} handlers.RegisterResponse "Seller successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failure"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Password != req.ConfirmPassword {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Passwords do not match",
			})
			return
		}

		sellerID, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Username already exists",
				})
			case errors.Is(err, services.ErrPasswordTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Password must be at least 6 characters",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			SellerID: sellerID,
			Token:    token,
		})
	}
}
