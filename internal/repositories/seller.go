package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

const sellerColumns = `
	seller_id, username, email, password_hash, password_salt,
	rating, total_sales, member_since, location, bio,
	shipping_info, response_time, contact_number`

// SellerReadRepository reads seller records.
//
// Absent rows come back as (nil, nil); a non-nil error always means the
// storage layer itself failed.
type SellerReadRepository struct {
	db *sqlx.DB
}

func NewSellerReadRepository(db *sqlx.DB) *SellerReadRepository {
	return &SellerReadRepository{db: db}
}

func (r *SellerReadRepository) GetByID(ctx context.Context, sellerID uuid.UUID) (*models.SellerDB, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE seller_id = $1`

	var seller models.SellerDB
	err := r.db.GetContext(ctx, &seller, query, sellerID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{sellerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// GetByUsername looks a seller up by exact, case-sensitive username.
func (r *SellerReadRepository) GetByUsername(ctx context.Context, username string) (*models.SellerDB, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE username = $1`

	var seller models.SellerDB
	err := r.db.GetContext(ctx, &seller, query, username)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// GetAll returns every seller sorted by rating descending.
func (r *SellerReadRepository) GetAll(ctx context.Context) ([]models.SellerDB, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers ORDER BY rating DESC`

	var sellers []models.SellerDB
	err := r.db.SelectContext(ctx, &sellers, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", len(sellers),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return sellers, nil
}

// SellerWriteRepository creates and updates seller records.
type SellerWriteRepository struct {
	db *sqlx.DB
}

func NewSellerWriteRepository(db *sqlx.DB) *SellerWriteRepository {
	return &SellerWriteRepository{db: db}
}

// Save inserts a new seller and returns the generated id.
func (r *SellerWriteRepository) Save(ctx context.Context, seller models.SellerDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO sellers (
			seller_id, username, email, password_hash, password_salt,
			rating, total_sales, member_since, location, bio,
			shipping_info, response_time, contact_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING seller_id
	`

	args := []any{
		uuid.New(), seller.Username, seller.Email, seller.PasswordHash, seller.PasswordSalt,
		seller.Rating, seller.TotalSales, seller.MemberSince, seller.Location, seller.Bio,
		seller.ShippingInfo, seller.ResponseTime, seller.ContactNumber,
	}

	var sellerID uuid.UUID
	err := r.db.GetContext(ctx, &sellerID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{seller.Username, seller.Email},
		"result", sellerID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return sellerID, nil
}

// UpdateProfile applies the editable profile fields and reports whether any
// stored value actually changed. Rating and total sales are not reachable
// from this statement.
func (r *SellerWriteRepository) UpdateProfile(ctx context.Context, sellerID uuid.UUID, upd models.SellerProfileUpdate) (bool, error) {
	const query = `
		UPDATE sellers
		SET location = $2, bio = $3, shipping_info = $4, response_time = $5, contact_number = $6
		WHERE seller_id = $1
		  AND (location IS DISTINCT FROM $2
		    OR bio IS DISTINCT FROM $3
		    OR shipping_info IS DISTINCT FROM $4
		    OR response_time IS DISTINCT FROM $5
		    OR contact_number IS DISTINCT FROM $6)
	`

	args := []any{sellerID, upd.Location, upd.Bio, upd.ShippingInfo, upd.ResponseTime, upd.ContactNumber}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
