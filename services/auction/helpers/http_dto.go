package helpers

import model "auction-house/internal/models"

// Request/Response DTOs
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"` // "admin" requests the administrative role
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type PlaceBidRequest struct {
	ItemID int     `json:"item_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type AddItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
	Image         string  `json:"image"`
}

// EditItemRequest carries optional fields; absent fields stay untouched.
type EditItemRequest struct {
	Name          *string  `json:"name"`
	StartingPrice *float64 `json:"starting_price"`
	Image         *string  `json:"image"`
}

// ToEdit converts the request into the engine's edit object.
func (r EditItemRequest) ToEdit() model.ItemEdit {
	return model.ItemEdit{
		Name:          r.Name,
		StartingPrice: r.StartingPrice,
		Image:         r.Image,
	}
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemID    int     `json:"item_id"`
	User      string  `json:"user"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// PlaceBidResponse returns the accepted bid together with the updated item so
// the caller can redraw without a second round trip.
type PlaceBidResponse struct {
	Item model.Item  `json:"item"`
	Bid  BidResponse `json:"bid"`
}
