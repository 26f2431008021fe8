package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

const listingColumns = `
	g.game_id, g.title, g.console_id, g.seller_id, g.condition, g.rarity,
	g.price, g.description, g.date_listed, g.primary_image,
	c.console_id AS "console.console_id", c.name AS "console.name"`

const listingSellerColumns = `,
	s.seller_id AS "seller.seller_id", s.username AS "seller.username",
	s.email AS "seller.email", s.password_hash AS "seller.password_hash",
	s.password_salt AS "seller.password_salt", s.rating AS "seller.rating",
	s.total_sales AS "seller.total_sales", s.member_since AS "seller.member_since",
	s.location AS "seller.location", s.bio AS "seller.bio",
	s.shipping_info AS "seller.shipping_info", s.response_time AS "seller.response_time",
	s.contact_number AS "seller.contact_number"`

// listingQuery builds the one join-and-sort statement every listing read goes
// through: games inner-joined with consoles (and optionally sellers, the
// seller dashboard does without), an optional conjunction of match
// predicates, newest first. The inner joins hide listings whose console or
// seller no longer resolves.
func listingQuery(joinSeller bool, conds []string) string {
	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(listingColumns)
	if joinSeller {
		b.WriteString(listingSellerColumns)
	}
	b.WriteString(" FROM games g")
	b.WriteString(" JOIN consoles c ON c.console_id = g.console_id")
	if joinSeller {
		b.WriteString(" JOIN sellers s ON s.seller_id = g.seller_id")
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY g.date_listed DESC")
	return b.String()
}

// GameReadRepository produces enriched listing views.
//
// Absent rows come back as (nil, nil); a non-nil error always means the
// storage layer itself failed.
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

func (r *GameReadRepository) selectListings(ctx context.Context, query string, args ...any) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.SelectContext(ctx, &listings, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(listings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if err := r.attachImages(ctx, listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// attachImages hydrates the ordered image sequences for a batch of listings.
func (r *GameReadRepository) attachImages(ctx context.Context, listings []models.Listing) error {
	for i := range listings {
		listings[i].Images = make([]string, 0)
	}
	if len(listings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(listings))
	byID := make(map[uuid.UUID]*models.Listing, len(listings))
	for i := range listings {
		ids = append(ids, listings[i].GameID)
		byID[listings[i].GameID] = &listings[i]
	}

	query, args, err := sqlx.In(
		`SELECT game_id, filename FROM game_images WHERE game_id IN (?) ORDER BY game_id, position`,
		ids,
	)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	var rows []struct {
		GameID   uuid.UUID `db:"game_id"`
		Filename string    `db:"filename"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return err
	}

	for _, row := range rows {
		if l, ok := byID[row.GameID]; ok {
			l.Images = append(l.Images, row.Filename)
		}
	}
	return nil
}

// ListAll returns every listing with console and seller resolved, newest first.
func (r *GameReadRepository) ListAll(ctx context.Context) ([]models.Listing, error) {
	return r.selectListings(ctx, listingQuery(true, nil))
}

// GetByID returns one fully joined listing, or (nil, nil) when the game is
// missing or its console or seller does not resolve.
func (r *GameReadRepository) GetByID(ctx context.Context, gameID uuid.UUID) (*models.Listing, error) {
	listings, err := r.selectListings(ctx, listingQuery(true, []string{"g.game_id = $1"}), gameID)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, nil
	}
	return &listings[0], nil
}

// Search returns listings matching every set filter key, newest first.
// The console value is compared as text, so a malformed id matches nothing
// rather than erroring.
func (r *GameReadRepository) Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	var conds []string
	var args []any

	if filter.Console != "" {
		args = append(args, filter.Console)
		conds = append(conds, fmt.Sprintf("g.console_id::text = $%d", len(args)))
	}
	if filter.Condition != "" {
		args = append(args, filter.Condition)
		conds = append(conds, fmt.Sprintf("g.condition = $%d", len(args)))
	}
	if filter.Rarity != "" {
		args = append(args, filter.Rarity)
		conds = append(conds, fmt.Sprintf("g.rarity = $%d", len(args)))
	}

	return r.selectListings(ctx, listingQuery(true, conds), args...)
}

// GetBySeller returns one seller's listings joined with consoles only,
// newest first. The seller record is not re-embedded.
func (r *GameReadRepository) GetBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Listing, error) {
	return r.selectListings(ctx, listingQuery(false, []string{"g.seller_id = $1"}), sellerID)
}

// IsOwner reports whether the given seller created the given game. Both
// predicates sit in one EXISTS query; a missing game is simply not owned.
func (r *GameReadRepository) IsOwner(ctx context.Context, gameID, sellerID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM games WHERE game_id = $1 AND seller_id = $2
		)
	`

	var owner bool
	err := r.db.GetContext(ctx, &owner, query, gameID, sellerID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, sellerID},
		"result", owner,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return owner, nil
}

// GameWriteRepository creates listings and mutates their image sequences.
type GameWriteRepository struct {
	db *sqlx.DB
}

func NewGameWriteRepository(db *sqlx.DB) *GameWriteRepository {
	return &GameWriteRepository{db: db}
}

// Save inserts a new game with its initial image sequence and returns the
// generated id.
func (r *GameWriteRepository) Save(ctx context.Context, game models.GameDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO games (
			game_id, title, console_id, seller_id, condition, rarity,
			price, description, date_listed, primary_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING game_id
	`

	var gameID uuid.UUID
	err := r.db.GetContext(ctx, &gameID, query,
		uuid.New(), game.Title, game.ConsoleID, game.SellerID, game.Condition, game.Rarity,
		game.Price, game.Description, game.DateListed, game.PrimaryImage,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{game.Title, game.ConsoleID, game.SellerID},
		"result", gameID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	for _, filename := range game.Images {
		if _, err := r.AppendImage(ctx, gameID, filename); err != nil {
			return gameID, err
		}
	}
	return gameID, nil
}

// AppendImage appends a filename to the game's image sequence. Duplicates are
// allowed. Returns false when the game does not exist.
func (r *GameWriteRepository) AppendImage(ctx context.Context, gameID uuid.UUID, filename string) (bool, error) {
	const query = `
		INSERT INTO game_images (game_id, filename, position)
		SELECT g.game_id, $2,
			COALESCE((SELECT MAX(i.position) + 1 FROM game_images i WHERE i.game_id = g.game_id), 0)
		FROM games g
		WHERE g.game_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, gameID, filename)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, filename},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// RemoveImage deletes every occurrence of filename from the game's image
// sequence. Returns false when nothing matched.
func (r *GameWriteRepository) RemoveImage(ctx context.Context, gameID uuid.UUID, filename string) (bool, error) {
	const query = `
		DELETE FROM game_images WHERE game_id = $1 AND filename = $2
	`

	res, err := r.db.ExecContext(ctx, query, gameID, filename)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, filename},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// SetPrimaryImage records the game's primary image filename.
func (r *GameWriteRepository) SetPrimaryImage(ctx context.Context, gameID uuid.UUID, filename string) (bool, error) {
	const query = `
		UPDATE games SET primary_image = $2 WHERE game_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, gameID, filename)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, filename},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
