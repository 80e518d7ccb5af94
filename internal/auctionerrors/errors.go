package auctionerrors

import (
	"errors"
	"fmt"
)

// Store-level errors
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrBidOutOfRange = errors.New("bid position out of range")
	ErrUsernameTaken = errors.New("username already taken")
)

// business logic errors
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
	ErrInvalidInput       = errors.New("invalid item details")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ErrBidTooLow wraps ErrInvalidBid: a bid must strictly exceed the current
// highest bid, so errors.Is(err, ErrInvalidBid) also holds for too-low bids.
var ErrBidTooLow = fmt.Errorf("bid amount too low: %w", ErrInvalidBid)
