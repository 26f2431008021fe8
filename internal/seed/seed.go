package seed

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
	"github.com/avdeev21/retro-market/internal/services"
)

// ConsoleStore is the console access the seeder needs.
type ConsoleStore interface {
	GetAll(ctx context.Context) ([]models.Console, error)
	Save(ctx context.Context, name string) (uuid.UUID, error)
}

// SellerStore is the seller access the seeder needs.
type SellerStore interface {
	GetAll(ctx context.Context) ([]models.SellerDB, error)
	Save(ctx context.Context, seller models.SellerDB) (uuid.UUID, error)
}

// GameStore is the game access the seeder needs.
type GameStore interface {
	ListAll(ctx context.Context) ([]models.Listing, error)
	Save(ctx context.Context, game models.GameDB) (uuid.UUID, error)
}

// seeded guards against concurrent and repeated seeding within a process.
var seeded atomic.Bool

// Reset clears the process-level seed latch. Test use only.
func Reset() {
	seeded.Store(false)
}

var consoleNames = []string{
	"NES", "SNES", "Nintendo 64", "Game Boy", "Sega Genesis",
	"Sega Saturn", "PlayStation", "Atari 2600",
}

type sampleSeller struct {
	username string
	email    string
	password string
	location string
	bio      string
}

var sampleSellers = []sampleSeller{
	{
		username: "retro99",
		email:    "retro99@example.com",
		password: "secret12",
		location: "Pune, India",
		bio:      "Boxed SNES collector, trades welcome.",
	},
	{
		username: "cartridgequeen",
		email:    "cq@example.com",
		password: "hunter22",
		location: "Osaka, Japan",
		bio:      "CIB or nothing.",
	},
	{
		username: "pixelpete",
		email:    "pete@example.com",
		password: "pixels99",
		location: "Austin, TX",
		bio:      "Clearing out a garage of Genesis carts.",
	},
}

type sampleGame struct {
	title       string
	console     string
	seller      string
	condition   string
	rarity      string
	price       float64
	description string
}

var sampleGames = []sampleGame{
	{"Chrono Trigger", "SNES", "retro99", "Excellent", "Rare", 189.99, "Complete in box with maps."},
	{"Earthbound", "SNES", "cartridgequeen", "Good", "Very Rare", 420.00, "Cart only, saves fine."},
	{"Panzer Dragoon Saga", "Sega Saturn", "cartridgequeen", "Mint", "Ultra Rare", 899.00, "Sealed. Serious offers only."},
	{"Sonic the Hedgehog 2", "Sega Genesis", "pixelpete", "Fair", "Common", 9.99, "Label wear, plays fine."},
	{"Super Mario 64", "Nintendo 64", "retro99", "Good", "Common", 34.50, "Cart only."},
	{"Pokemon Red", "Game Boy", "pixelpete", "Good", "Uncommon", 59.99, "New save battery installed."},
}

// Run populates sample consoles, sellers, and games. It is idempotent: a
// second call in the same process is a no-op, and tables that already hold
// rows are left untouched.
func Run(ctx context.Context, consoles ConsoleStore, sellers SellerStore, games GameStore) error {
	if !seeded.CompareAndSwap(false, true) {
		return nil
	}

	consoleIDs, err := seedConsoles(ctx, consoles)
	if err != nil {
		seeded.Store(false)
		return err
	}

	sellerIDs, err := seedSellers(ctx, sellers)
	if err != nil {
		seeded.Store(false)
		return err
	}

	if err := seedGames(ctx, games, consoleIDs, sellerIDs); err != nil {
		seeded.Store(false)
		return err
	}

	logger.Log.Infow("sample data seeded")
	return nil
}

func seedConsoles(ctx context.Context, store ConsoleStore) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(consoleNames))

	existing, err := store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		for _, c := range existing {
			ids[c.Name] = c.ConsoleID
		}
		return ids, nil
	}

	for _, name := range consoleNames {
		id, err := store.Save(ctx, name)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, nil
}

func seedSellers(ctx context.Context, store SellerStore) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(sampleSellers))

	existing, err := store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		for _, s := range existing {
			ids[s.Username] = s.SellerID
		}
		return ids, nil
	}

	for _, s := range sampleSellers {
		salt, err := services.GenerateSalt()
		if err != nil {
			return nil, err
		}
		id, err := store.Save(ctx, models.SellerDB{
			Username:     s.username,
			Email:        s.email,
			PasswordHash: services.HashPassword(s.password, salt),
			PasswordSalt: salt,
			Rating:       5.0,
			TotalSales:   0,
			MemberSince:  time.Now(),
			Location:     s.location,
			Bio:          s.bio,
		})
		if err != nil {
			return nil, err
		}
		ids[s.username] = id
	}
	return ids, nil
}

func seedGames(ctx context.Context, store GameStore, consoleIDs, sellerIDs map[string]uuid.UUID) error {
	existing, err := store.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, g := range sampleGames {
		consoleID, ok := consoleIDs[g.console]
		if !ok {
			logger.Log.Warnw("sample game skipped, console missing", "title", g.title, "console", g.console)
			continue
		}
		sellerID, ok := sellerIDs[g.seller]
		if !ok {
			logger.Log.Warnw("sample game skipped, seller missing", "title", g.title, "seller", g.seller)
			continue
		}
		if _, err := store.Save(ctx, models.GameDB{
			Title:       g.title,
			ConsoleID:   consoleID,
			SellerID:    sellerID,
			Condition:   g.condition,
			Rarity:      g.rarity,
			Price:       g.price,
			Description: g.description,
			DateListed:  time.Now(),
		}); err != nil {
			return err
		}
	}
	return nil
}
