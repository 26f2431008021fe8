package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

var (
	// ErrListingNotFound is returned when a listing id does not resolve to a
	// fully joined listing.
	ErrListingNotFound = errors.New("listing not found")
	// ErrInvalidPrice is returned when the asking price is not positive.
	ErrInvalidPrice = errors.New("price must be a positive number")
	// ErrInvalidCondition is returned for an unknown condition value.
	ErrInvalidCondition = errors.New("unknown condition value")
	// ErrInvalidRarity is returned for an unknown rarity value.
	ErrInvalidRarity = errors.New("unknown rarity value")
	// ErrUnknownConsole is returned when a new listing references a console
	// that does not exist.
	ErrUnknownConsole = errors.New("console does not exist")
	// ErrUnknownSeller is returned when a new listing references a seller
	// that does not exist.
	ErrUnknownSeller = errors.New("seller does not exist")
	// ErrNotOwner is returned when a seller other than the creator tries to
	// mutate a listing's images.
	ErrNotOwner = errors.New("only the listing owner may modify it")
)

// ListingReader defines the joined listing views.
type ListingReader interface {
	ListAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.Listing, error)
	Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	IsOwner(ctx context.Context, gameID, sellerID uuid.UUID) (bool, error)
}

// ListingWriter defines listing creation and image mutation.
type ListingWriter interface {
	Save(ctx context.Context, game models.GameDB) (uuid.UUID, error)
	AppendImage(ctx context.Context, gameID uuid.UUID, filename string) (bool, error)
	RemoveImage(ctx context.Context, gameID uuid.UUID, filename string) (bool, error)
	SetPrimaryImage(ctx context.Context, gameID uuid.UUID, filename string) (bool, error)
}

// ConsoleReader resolves console references.
type ConsoleReader interface {
	GetByID(ctx context.Context, consoleID uuid.UUID) (*models.Console, error)
}

// ListingService joins, filters, and mutates game listings.
type ListingService struct {
	reader   ListingReader
	writer   ListingWriter
	consoles ConsoleReader
	sellers  SellerReader
}

// NewListingService creates a new ListingService.
func NewListingService(reader ListingReader, writer ListingWriter, consoles ConsoleReader, sellers SellerReader) *ListingService {
	return &ListingService{
		reader:   reader,
		writer:   writer,
		consoles: consoles,
		sellers:  sellers,
	}
}

// List returns all listings newest first. The result is never nil, so an
// empty marketplace encodes as [] rather than null; a storage failure also
// comes back with an empty slice so callers can both render and log.
func (s *ListingService) List(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list games", "error", err)
		return []models.Listing{}, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

// Search returns listings matching every set filter key, newest first.
// An empty filter behaves exactly like List. The result is never nil.
func (s *ListingService) Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	listings, err := s.reader.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search games", "filter", filter, "error", err)
		return []models.Listing{}, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

// Get returns one fully joined listing. A listing whose console or seller no
// longer resolves is reported as not found rather than returned half-empty.
func (s *ListingService) Get(ctx context.Context, gameID uuid.UUID) (*models.Listing, error) {
	listing, err := s.reader.GetByID(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to get game", "gameID", gameID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Add validates and inserts a new listing, stamping date_listed with the
// current time. Console and seller references must resolve.
func (s *ListingService) Add(ctx context.Context, game models.GameDB) (uuid.UUID, error) {
	if !models.ValidCondition(game.Condition) {
		return uuid.Nil, ErrInvalidCondition
	}
	if !models.ValidRarity(game.Rarity) {
		return uuid.Nil, ErrInvalidRarity
	}
	if !(game.Price > 0) {
		return uuid.Nil, ErrInvalidPrice
	}

	console, err := s.consoles.GetByID(ctx, game.ConsoleID)
	if err != nil {
		logger.Log.Errorw("failed to resolve console", "consoleID", game.ConsoleID, "error", err)
		return uuid.Nil, err
	}
	if console == nil {
		return uuid.Nil, ErrUnknownConsole
	}

	seller, err := s.sellers.GetByID(ctx, game.SellerID)
	if err != nil {
		logger.Log.Errorw("failed to resolve seller", "sellerID", game.SellerID, "error", err)
		return uuid.Nil, err
	}
	if seller == nil {
		return uuid.Nil, ErrUnknownSeller
	}

	game.DateListed = time.Now()

	gameID, err := s.writer.Save(ctx, game)
	if err != nil {
		logger.Log.Errorw("failed to save game", "title", game.Title, "error", err)
		return uuid.Nil, err
	}
	return gameID, nil
}

// AppendImage adds a filename to the listing's image sequence after checking
// ownership. Duplicates are allowed.
func (s *ListingService) AppendImage(ctx context.Context, gameID, sellerID uuid.UUID, filename string) error {
	if err := s.requireOwner(ctx, gameID, sellerID); err != nil {
		return err
	}
	ok, err := s.writer.AppendImage(ctx, gameID, filename)
	if err != nil {
		logger.Log.Errorw("failed to append image", "gameID", gameID, "filename", filename, "error", err)
		return err
	}
	if !ok {
		return ErrListingNotFound
	}
	return nil
}

// RemoveImage deletes every occurrence of filename from the listing's image
// sequence after checking ownership. Returns whether anything was removed.
func (s *ListingService) RemoveImage(ctx context.Context, gameID, sellerID uuid.UUID, filename string) (bool, error) {
	if err := s.requireOwner(ctx, gameID, sellerID); err != nil {
		return false, err
	}
	removed, err := s.writer.RemoveImage(ctx, gameID, filename)
	if err != nil {
		logger.Log.Errorw("failed to remove image", "gameID", gameID, "filename", filename, "error", err)
		return false, err
	}
	return removed, nil
}

// SetPrimaryImage records the listing's primary image after checking ownership.
func (s *ListingService) SetPrimaryImage(ctx context.Context, gameID, sellerID uuid.UUID, filename string) error {
	if err := s.requireOwner(ctx, gameID, sellerID); err != nil {
		return err
	}
	ok, err := s.writer.SetPrimaryImage(ctx, gameID, filename)
	if err != nil {
		logger.Log.Errorw("failed to set primary image", "gameID", gameID, "filename", filename, "error", err)
		return err
	}
	if !ok {
		return ErrListingNotFound
	}
	return nil
}

// IsOwner reports whether sellerID created the listing. False for unknown
// listings.
func (s *ListingService) IsOwner(ctx context.Context, gameID, sellerID uuid.UUID) (bool, error) {
	return s.reader.IsOwner(ctx, gameID, sellerID)
}

// requireOwner is the single authorization gate for listing mutation.
func (s *ListingService) requireOwner(ctx context.Context, gameID, sellerID uuid.UUID) error {
	owner, err := s.reader.IsOwner(ctx, gameID, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to check ownership", "gameID", gameID, "sellerID", sellerID, "error", err)
		return err
	}
	if !owner {
		return ErrNotOwner
	}
	return nil
}
