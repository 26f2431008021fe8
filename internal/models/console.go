package models

import "github.com/google/uuid"

// Console is a reference entity naming a gaming platform.
type Console struct {
	ConsoleID uuid.UUID `json:"id" db:"console_id"` // Primary key
	Name      string    `json:"name" db:"name"`     // Unique platform name
}
