package models

// ContactMessage is a buyer-to-seller enquiry, delivered as a fire-and-forget
// notification.
type ContactMessage struct {
	MessageID   string `json:"message_id"`   // Unique identifier for the notification
	SellerID    string `json:"seller_id"`    // Target seller
	SellerEmail string `json:"seller_email"` // Resolved at send time
	BuyerName   string `json:"buyer_name"`
	BuyerEmail  string `json:"buyer_email"`
	GameTitle   string `json:"game_title"` // Listing the enquiry refers to, if any
	Message     string `json:"message"`
	SentAt      int64  `json:"sent_at"` // Unix timestamp
}
