package models

import "time"

// AdminUsername is the only identity permitted to perform administrative operations.
const AdminUsername = "admin"

// User represents a registered participant in the auction
type User struct {
	Username string `json:"username"`
	Secret   string `json:"-"`
}

// Item represents an auction item and its bidding state
type Item struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	StartingPrice float64 `json:"starting_price"`
	Image         string  `json:"image"`
	HighestBid    float64 `json:"highest_bid"`
}

// Bid represents an accepted bid on an item
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    int       `json:"item_id"`
	User      string    `json:"user"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemEdit carries the optional fields of an admin item edit.
// Nil fields are left untouched; empty strings are treated as "not provided".
type ItemEdit struct {
	Name          *string  `json:"name,omitempty"`
	StartingPrice *float64 `json:"starting_price,omitempty"`
	Image         *string  `json:"image,omitempty"`
}

// IsAdmin reports whether the given identity may perform admin operations.
func IsAdmin(identity string) bool {
	return identity == AdminUsername
}
