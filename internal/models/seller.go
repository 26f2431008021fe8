package models

import (
	"time"

	"github.com/google/uuid"
)

// SellerDB represents a seller record in the database
type SellerDB struct {
	SellerID      uuid.UUID `json:"id" db:"seller_id"`                 // Primary key
	Username      string    `json:"username" db:"username"`            // Unique username, case-sensitive
	Email         string    `json:"email" db:"email"`                  // Seller email
	PasswordHash  string    `json:"-" db:"password_hash"`              // Hex SHA-256 of password+salt
	PasswordSalt  string    `json:"-" db:"password_salt"`              // Hex-encoded random salt
	Rating        float64   `json:"rating" db:"rating"`                // System-set rating, 5.0 at registration
	TotalSales    int       `json:"total_sales" db:"total_sales"`      // System-set sales counter
	MemberSince   time.Time `json:"member_since" db:"member_since"`    // Registration timestamp
	Location      string    `json:"location" db:"location"`            // Free-form location
	Bio           string    `json:"bio" db:"bio"`                      // Profile text
	ShippingInfo  string    `json:"shipping_info" db:"shipping_info"`  // Shipping terms
	ResponseTime  string    `json:"response_time" db:"response_time"`  // Typical reply time
	ContactNumber string    `json:"contact_number" db:"contact_number"` // Phone number
}

// SellerProfileUpdate holds the profile fields a seller may edit.
// Rating and total sales are system-computed and never updatable here.
type SellerProfileUpdate struct {
	Location      string `json:"location"`
	Bio           string `json:"bio"`
	ShippingInfo  string `json:"shipping_info"`
	ResponseTime  string `json:"response_time"`
	ContactNumber string `json:"contact_number"`
}
