package ledger

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// Ledger is the append-only log of accepted bids, in insertion order
// (oldest first). Entries are immutable once recorded; only the admin may
// remove one, by canonical position.
//
// The Ledger performs no validation: acceptance rules live in the auction
// engine, which also serializes all access.
type Ledger struct {
	bids []model.Bid
}

// New creates a Ledger seeded with the given bids.
func New(bids []model.Bid) *Ledger {
	return &Ledger{bids: append([]model.Bid(nil), bids...)}
}

// List returns all bids in canonical order (oldest first).
func (l *Ledger) List() []model.Bid {
	return append([]model.Bid(nil), l.bids...)
}

// Len returns the number of recorded bids.
func (l *Ledger) Len() int {
	return len(l.bids)
}

// Record appends a bid to the ledger.
func (l *Ledger) Record(bid model.Bid) {
	l.bids = append(l.bids, bid)
}

// DeleteAt removes the bid at the given canonical position (0 = oldest).
// Positions must be computed against the insertion-order sequence, never a
// reversed display order.
func (l *Ledger) DeleteAt(position int) error {
	if position < 0 || position >= len(l.bids) {
		return fmt.Errorf("delete bid at %d: %w", position, auctionerrors.ErrBidOutOfRange)
	}
	l.bids = append(l.bids[:position], l.bids[position+1:]...)
	return nil
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.bids = nil
}

// Snapshot returns a copy of the current bids.
func (l *Ledger) Snapshot() []model.Bid {
	return append([]model.Bid(nil), l.bids...)
}

// Restore replaces the ledger contents with the given bids.
func (l *Ledger) Restore(bids []model.Bid) {
	l.bids = append([]model.Bid(nil), bids...)
}
