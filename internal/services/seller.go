package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

// ErrSellerNotFound is returned when a seller id or username does not resolve.
var ErrSellerNotFound = errors.New("seller not found")

// SellerDirectoryReader defines the reads the seller directory needs.
type SellerDirectoryReader interface {
	GetByID(ctx context.Context, sellerID uuid.UUID) (*models.SellerDB, error)
	GetByUsername(ctx context.Context, username string) (*models.SellerDB, error)
	GetAll(ctx context.Context) ([]models.SellerDB, error)
}

// SellerProfileWriter applies profile edits.
type SellerProfileWriter interface {
	UpdateProfile(ctx context.Context, sellerID uuid.UUID, upd models.SellerProfileUpdate) (bool, error)
}

// SellerListingsReader returns a seller's own listings (console join only).
type SellerListingsReader interface {
	GetBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Listing, error)
}

// SellerService exposes the seller directory: lookups, rating-ordered
// listing, dashboard views, and profile edits.
type SellerService struct {
	reader   SellerDirectoryReader
	writer   SellerProfileWriter
	listings SellerListingsReader
}

// NewSellerService creates a new SellerService.
func NewSellerService(reader SellerDirectoryReader, writer SellerProfileWriter, listings SellerListingsReader) *SellerService {
	return &SellerService{
		reader:   reader,
		writer:   writer,
		listings: listings,
	}
}

// List returns every seller sorted by rating descending. The result is
// never nil, so an empty directory encodes as [] rather than null.
func (s *SellerService) List(ctx context.Context) ([]models.SellerDB, error) {
	sellers, err := s.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list sellers", "error", err)
		return nil, err
	}
	if sellers == nil {
		sellers = []models.SellerDB{}
	}
	return sellers, nil
}

// Get returns a seller by id.
func (s *SellerService) Get(ctx context.Context, sellerID uuid.UUID) (*models.SellerDB, error) {
	seller, err := s.reader.GetByID(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to get seller", "sellerID", sellerID, "error", err)
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}
	return seller, nil
}

// GetByUsername returns a seller by exact username.
func (s *SellerService) GetByUsername(ctx context.Context, username string) (*models.SellerDB, error) {
	seller, err := s.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get seller by username", "username", username, "error", err)
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}
	return seller, nil
}

// Listings returns the seller's own listings joined with consoles only,
// newest first. The result is never nil.
func (s *SellerService) Listings(ctx context.Context, sellerID uuid.UUID) ([]models.Listing, error) {
	listings, err := s.listings.GetBySeller(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to get seller listings", "sellerID", sellerID, "error", err)
		return []models.Listing{}, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

// UpdateProfile applies the editable profile fields and reports whether
// anything actually changed.
func (s *SellerService) UpdateProfile(ctx context.Context, sellerID uuid.UUID, upd models.SellerProfileUpdate) (bool, error) {
	changed, err := s.writer.UpdateProfile(ctx, sellerID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "sellerID", sellerID, "error", err)
		return false, err
	}
	return changed, nil
}
