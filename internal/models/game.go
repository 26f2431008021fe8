package models

import (
	"time"

	"github.com/google/uuid"
)

// Game condition values, best to worst.
var Conditions = []string{"Mint", "Excellent", "Good", "Fair", "Poor"}

// Game rarity values, most to least common.
var Rarities = []string{"Common", "Uncommon", "Rare", "Very Rare", "Ultra Rare"}

// ValidCondition reports whether c is a known condition value.
func ValidCondition(c string) bool {
	for _, v := range Conditions {
		if v == c {
			return true
		}
	}
	return false
}

// ValidRarity reports whether r is a known rarity value.
func ValidRarity(r string) bool {
	for _, v := range Rarities {
		if v == r {
			return true
		}
	}
	return false
}

// GameDB represents a game listing record in the database
type GameDB struct {
	GameID       uuid.UUID `json:"id" db:"game_id"`                  // Primary key
	Title        string    `json:"title" db:"title"`                 // Game title
	ConsoleID    uuid.UUID `json:"console_id" db:"console_id"`       // References consoles
	SellerID     uuid.UUID `json:"seller_id" db:"seller_id"`         // References sellers; immutable owner
	Condition    string    `json:"condition" db:"condition"`         // One of Conditions
	Rarity       string    `json:"rarity" db:"rarity"`               // One of Rarities
	Price        float64   `json:"price" db:"price"`                 // Positive asking price
	Description  string    `json:"description" db:"description"`     // Free-form description
	DateListed   time.Time `json:"date_listed" db:"date_listed"`     // Listing timestamp
	PrimaryImage *string   `json:"primary_image" db:"primary_image"` // Optional primary image filename
	Images       []string  `json:"images" db:"-"`                    // Ordered image filenames, duplicates allowed
}

// Listing is a game joined with its console and, optionally, its seller.
// Seller is nil for the narrower seller-dashboard join.
type Listing struct {
	GameDB
	Console Console   `json:"console" db:"console"`
	Seller  *SellerDB `json:"seller,omitempty" db:"seller"`
}

// ListingFilter restricts a listing search. Zero-value fields impose no
// constraint; filters combine with AND. Console holds a raw console id and a
// malformed value simply matches nothing.
type ListingFilter struct {
	Console   string
	Condition string
	Rarity    string
}

// IsZero reports whether no filter key is set.
func (f ListingFilter) IsZero() bool {
	return f.Console == "" && f.Condition == "" && f.Rarity == ""
}
