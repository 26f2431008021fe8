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

// ConsoleReadRepository reads console reference data.
type ConsoleReadRepository struct {
	db *sqlx.DB
}

func NewConsoleReadRepository(db *sqlx.DB) *ConsoleReadRepository {
	return &ConsoleReadRepository{db: db}
}

// GetAll returns every console sorted by name.
func (r *ConsoleReadRepository) GetAll(ctx context.Context) ([]models.Console, error) {
	const query = `
		SELECT console_id, name
		FROM consoles
		ORDER BY name
	`

	var consoles []models.Console
	err := r.db.SelectContext(ctx, &consoles, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", len(consoles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return consoles, nil
}

// GetByID returns the console with the given id, or (nil, nil) when absent.
func (r *ConsoleReadRepository) GetByID(ctx context.Context, consoleID uuid.UUID) (*models.Console, error) {
	const query = `
		SELECT console_id, name
		FROM consoles
		WHERE console_id = $1
	`

	var console models.Console
	err := r.db.GetContext(ctx, &console, query, consoleID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{consoleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &console, nil
}

// ConsoleWriteRepository creates console reference data (seeding and admin add).
type ConsoleWriteRepository struct {
	db *sqlx.DB
}

func NewConsoleWriteRepository(db *sqlx.DB) *ConsoleWriteRepository {
	return &ConsoleWriteRepository{db: db}
}

// Save inserts a console and returns its id. Existing names are left untouched
// and their id returned, so seeding stays idempotent.
func (r *ConsoleWriteRepository) Save(ctx context.Context, name string) (uuid.UUID, error) {
	const query = `
		INSERT INTO consoles (console_id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING console_id
	`

	var consoleID uuid.UUID
	err := r.db.GetContext(ctx, &consoleID, query, uuid.New(), name)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", consoleID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return consoleID, nil
}
