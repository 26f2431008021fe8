package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS consoles (
	console_id UUID PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS sellers (
	seller_id UUID PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL,
	password_hash VARCHAR(64) NOT NULL,
	password_salt VARCHAR(64) NOT NULL,
	rating DOUBLE PRECISION NOT NULL DEFAULT 5.0,
	total_sales INTEGER NOT NULL DEFAULT 0,
	member_since TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	location TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	shipping_info TEXT NOT NULL DEFAULT '',
	response_time TEXT NOT NULL DEFAULT '',
	contact_number TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS games (
	game_id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	console_id UUID NOT NULL REFERENCES consoles(console_id),
	seller_id UUID NOT NULL REFERENCES sellers(seller_id),
	condition VARCHAR(20) NOT NULL,
	rarity VARCHAR(20) NOT NULL,
	price DOUBLE PRECISION NOT NULL CHECK (price > 0),
	description TEXT NOT NULL DEFAULT '',
	date_listed TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	primary_image TEXT
);

CREATE TABLE IF NOT EXISTS game_images (
	game_id UUID NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
	filename TEXT NOT NULL,
	position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_date_listed ON games (date_listed DESC);
CREATE INDEX IF NOT EXISTS idx_game_images_game_id ON game_images (game_id, position);
`

// EnsureSchema creates the marketplace tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
