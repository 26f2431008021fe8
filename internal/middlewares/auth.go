package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
	"github.com/avdeev21/retro-market/internal/services"
)

// TokenExtractor pulls the bearer token off the request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionResolver maps a session token to a live seller record. A token
// whose seller no longer exists yields services.ErrSessionInvalid.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenString string) (*models.SellerDB, error)
}

type sellerIDKey struct{}

// AuthMiddleware returns a middleware that validates the bearer token,
// resolves it to a live seller, and puts the seller id into the request
// context. An invalidated session (bad token or vanished seller) is 401;
// a storage failure during resolution is 500.
func AuthMiddleware(tokens TokenExtractor, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			seller, err := sessions.Resolve(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrSessionInvalid) {
					logger.Log.Errorw("authorization failed", "err", err)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				logger.Log.Errorw("session resolution failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx = context.WithValue(ctx, sellerIDKey{}, seller.SellerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSellerID returns a context carrying sellerID as if the request had
// passed AuthMiddleware.
func WithSellerID(ctx context.Context, sellerID uuid.UUID) context.Context {
	return context.WithValue(ctx, sellerIDKey{}, sellerID)
}

// SellerIDFromContext returns the authenticated seller id stored by
// AuthMiddleware. The second return is false outside an authenticated
// request.
func SellerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sellerID, ok := ctx.Value(sellerIDKey{}).(uuid.UUID)
	return sellerID, ok
}
