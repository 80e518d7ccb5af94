package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a Bid
func newBid(bidID string, itemID int, user string, amount float64) model.Bid {
	return model.Bid{
		BidID:     bidID,
		ItemID:    itemID,
		User:      user,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// Test Record and List
func TestLedger_RecordAndList(t *testing.T) {
	t.Parallel()

	l := New(nil)
	require.Equal(t, 0, l.Len())

	bid1 := newBid("bid1", 1, "alice", 1300)
	bid2 := newBid("bid2", 2, "bob", 1000)
	bid3 := newBid("bid3", 1, "charlie", 1400)
	l.Record(bid1)
	l.Record(bid2)
	l.Record(bid3)

	t.Run("list_is_oldest_first", func(t *testing.T) {
		bids := l.List()
		require.Equal(t, []model.Bid{bid1, bid2, bid3}, bids)
	})

	t.Run("list_returns_a_copy", func(t *testing.T) {
		bids := l.List()
		bids[0].Amount = 99999
		require.Equal(t, 1300.0, l.List()[0].Amount)
	})
}

// Test DeleteAt
func TestLedger_DeleteAt(t *testing.T) {
	t.Parallel()

	seedLedger := func() *Ledger {
		l := New(nil)
		for i := 0; i < 5; i++ {
			l.Record(newBid(fmt.Sprintf("bid%d", i), 1, "alice", float64(100+i)))
		}
		return l
	}

	tests := []struct {
		name      string
		position  int
		wantError bool
		wantLeft  int
	}{
		{name: "delete_oldest", position: 0, wantLeft: 4},
		{name: "delete_middle", position: 2, wantLeft: 4},
		{name: "delete_newest", position: 4, wantLeft: 4},
		{name: "negative_position", position: -1, wantError: true, wantLeft: 5},
		{name: "position_past_end", position: 5, wantError: true, wantLeft: 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := seedLedger()
			err := l.DeleteAt(tc.position)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrBidOutOfRange))
			} else {
				require.NoError(t, err)
				for _, bid := range l.List() {
					require.NotEqual(t, fmt.Sprintf("bid%d", tc.position), bid.BidID)
				}
			}
			require.Equal(t, tc.wantLeft, l.Len())
		})
	}

	// Positions index the canonical order even when the caller displays
	// the ledger newest-first.
	t.Run("canonical_position_removes_exact_entry", func(t *testing.T) {
		t.Parallel()

		l := seedLedger()
		require.NoError(t, l.DeleteAt(1))
		ids := make([]string, 0, l.Len())
		for _, bid := range l.List() {
			ids = append(ids, bid.BidID)
		}
		require.Equal(t, []string{"bid0", "bid2", "bid3", "bid4"}, ids)
	})
}

// Test Clear and Snapshot/Restore
func TestLedger_ClearAndRestore(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.Record(newBid("bid1", 1, "alice", 1300))
	l.Record(newBid("bid2", 2, "bob", 1000))

	snap := l.Snapshot()
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.List())

	l.Restore(snap)
	require.Equal(t, 2, l.Len())
	require.Equal(t, "bid1", l.List()[0].BidID)
}
