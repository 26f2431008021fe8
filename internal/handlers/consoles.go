package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

// ConsoleLister returns the console reference list.
type ConsoleLister interface {
	List(ctx context.Context) ([]models.Console, error)
}

// ConsolesResponse represents the console reference list
// swagger:model ConsolesResponse
type ConsolesResponse struct {
	// Consoles sorted by name
	Consoles []models.Console `json:"consoles"`
}

// ConsolesErrorResponse represents an error response for consoles
// swagger:model ConsolesErrorResponse
type ConsolesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListConsolesHandler returns an HTTP handler for the console list.
// @Summary List consoles
// @Description Returns the console reference list sorted by name.
// @Tags consoles
// @Produce json
// @Success 200 {object} handlers.ConsolesResponse "Consoles"
// @Failure 500 {object} handlers.ConsolesErrorResponse "Internal server error"
// @Router /consoles [get]
func NewListConsolesHandler(svc ConsoleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consoles, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConsolesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConsolesResponse{
			Consoles: consoles,
		})
	}
}
