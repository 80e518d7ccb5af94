package auction

import (
	"context"
	"fmt"
	"math"
	"sync"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/catalog"
	"auction-house/internal/clock"
	"auction-house/internal/credentials"
	"auction-house/internal/ledger"
	"auction-house/internal/models"
	"auction-house/internal/store"
	"auction-house/utils"
)

// Seed is the initial auction state used when no valid snapshot is persisted.
type Seed struct {
	Items []models.Item
	Users map[string]string
}

// Engine enforces the bidding and administrative rules of the auction. It
// exclusively owns the catalog, the bid ledger, and writes to the credential
// store; every mutating operation runs as one atomic transaction under a
// single global lock and is persisted in full before it returns. A failed
// persist rolls the in-memory state back, so readers never observe a partial
// result.
type Engine struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	creds   credentials.Store
	store   store.Store
	clock   clock.Clock
}

// New loads the persisted auction state and builds an Engine around it. If no
// catalog has been persisted, or its length mismatches the seed catalog, all
// three records are reset to seed values and saved back.
func New(ctx context.Context, st store.Store, clk clock.Clock, seed Seed) (*Engine, error) {
	snap, found, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load auction state: %w", err)
	}

	if !found || len(snap.Items) != len(seed.Items) {
		snap = store.Snapshot{
			Items: append([]models.Item(nil), seed.Items...),
			Bids:  []models.Bid{},
			Users: copyUsers(seed.Users),
		}
		if err := st.SaveAll(ctx, snap); err != nil {
			return nil, fmt.Errorf("engine: failed to persist seed state: %w", err)
		}
	}

	return &Engine{
		catalog: catalog.New(snap.Items),
		ledger:  ledger.New(snap.Bids),
		creds:   credentials.NewMemoryStore(snap.Users),
		store:   st,
		clock:   clk,
	}, nil
}

// ListItems returns a snapshot of the catalog in insertion order.
func (e *Engine) ListItems() []models.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.List()
}

// GetItem returns the item with the given id.
func (e *Engine) GetItem(itemID int) (models.Item, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Get(itemID)
}

// ListBids returns a snapshot of the bid ledger in canonical order
// (oldest first). Display order is the caller's choice.
func (e *Engine) ListBids() []models.Bid {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.List()
}

// PlaceBid validates and records a bid on an item. The bid must strictly
// exceed the item's current highest bid; equal amounts are rejected, so no
// tie-break is ever needed. On success the highest-bid update and the ledger
// append are applied and persisted together.
func (e *Engine) PlaceBid(ctx context.Context, identity string, itemID int, amount float64) (models.Item, models.Bid, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if identity == "" {
		return models.Item{}, models.Bid{}, fmt.Errorf("engine: place bid: %w", auctionerrors.ErrUnauthenticated)
	}

	item, err := e.catalog.Get(itemID)
	if err != nil {
		return models.Item{}, models.Bid{}, fmt.Errorf("engine: place bid: %w", err)
	}

	if !(amount > 0) || math.IsInf(amount, 0) {
		return models.Item{}, models.Bid{}, fmt.Errorf("engine: %w - bid amount must be a positive number", auctionerrors.ErrInvalidBid)
	}
	if amount <= item.HighestBid {
		return models.Item{}, models.Bid{}, fmt.Errorf("engine: %w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, item.HighestBid)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ItemID:    itemID,
		User:      identity,
		Amount:    amount,
		CreatedAt: e.clock.Now(),
	}

	rollback := e.begin()
	if err := e.catalog.SetHighestBid(itemID, amount); err != nil {
		return models.Item{}, models.Bid{}, fmt.Errorf("engine: place bid: %w", err)
	}
	e.ledger.Record(bid)
	if err := e.persist(ctx); err != nil {
		rollback()
		return models.Item{}, models.Bid{}, err
	}

	updated, err := e.catalog.Get(itemID)
	if err != nil {
		return models.Item{}, models.Bid{}, fmt.Errorf("engine: place bid: %w", err)
	}
	return updated, bid, nil
}

// Authenticate checks a username/secret pair against the credential store and
// returns the identity. When asAdmin is set, only the reserved admin account
// may log in.
func (e *Engine) Authenticate(username, secret string, asAdmin bool) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stored, ok := e.creds.Lookup(username)
	if !ok || stored != secret {
		return "", fmt.Errorf("engine: authenticate %s: %w", username, auctionerrors.ErrInvalidCredentials)
	}
	if asAdmin && !models.IsAdmin(username) {
		return "", fmt.Errorf("engine: authenticate %s: %w - only the admin account may use admin login", username, auctionerrors.ErrForbidden)
	}
	return username, nil
}

// Signup registers a new user and immediately authenticates it as a normal
// identity.
func (e *Engine) Signup(ctx context.Context, username, secret string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if username == "" || secret == "" {
		return "", fmt.Errorf("engine: signup: %w - missing username or password", auctionerrors.ErrInvalidCredentials)
	}

	rollback := e.begin()
	if err := e.creds.Insert(username, secret); err != nil {
		return "", fmt.Errorf("engine: signup: %w", err)
	}
	if err := e.persist(ctx); err != nil {
		rollback()
		return "", err
	}
	return username, nil
}

// AdminAddItem appends a new item to the catalog. Admin only.
func (e *Engine) AdminAddItem(ctx context.Context, identity, name string, startingPrice float64, image string) (models.Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := requireAdmin(identity); err != nil {
		return models.Item{}, fmt.Errorf("engine: add item: %w", err)
	}

	rollback := e.begin()
	item, err := e.catalog.Add(name, startingPrice, image)
	if err != nil {
		return models.Item{}, fmt.Errorf("engine: add item: %w", err)
	}
	if err := e.persist(ctx); err != nil {
		rollback()
		return models.Item{}, err
	}
	return item, nil
}

// AdminEditItem applies the provided fields of the edit request to an item.
// Admin only.
func (e *Engine) AdminEditItem(ctx context.Context, identity string, itemID int, edit models.ItemEdit) (models.Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := requireAdmin(identity); err != nil {
		return models.Item{}, fmt.Errorf("engine: edit item %d: %w", itemID, err)
	}

	rollback := e.begin()
	item, err := e.catalog.Edit(itemID, edit)
	if err != nil {
		return models.Item{}, fmt.Errorf("engine: %w", err)
	}
	if err := e.persist(ctx); err != nil {
		rollback()
		return models.Item{}, err
	}
	return item, nil
}

// AdminDeleteItem removes an item from the catalog. Ledger entries for the
// item are retained for historical display; new bids on the id fail with
// not-found. Admin only.
func (e *Engine) AdminDeleteItem(ctx context.Context, identity string, itemID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := requireAdmin(identity); err != nil {
		return fmt.Errorf("engine: delete item %d: %w", itemID, err)
	}

	rollback := e.begin()
	if err := e.catalog.Delete(itemID); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := e.persist(ctx); err != nil {
		rollback()
		return err
	}
	return nil
}

// AdminDeleteBid removes the ledger entry at the given canonical position.
// The item's highest bid is a forward-only watermark: it is not recomputed
// from the remaining history. Admin only.
func (e *Engine) AdminDeleteBid(ctx context.Context, identity string, position int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := requireAdmin(identity); err != nil {
		return fmt.Errorf("engine: delete bid %d: %w", position, err)
	}

	rollback := e.begin()
	if err := e.ledger.DeleteAt(position); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := e.persist(ctx); err != nil {
		rollback()
		return err
	}
	return nil
}

// AdminResetAuction clears the ledger and resets every item's highest bid to
// its starting price as one atomic step. Admin only.
func (e *Engine) AdminResetAuction(ctx context.Context, identity string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := requireAdmin(identity); err != nil {
		return fmt.Errorf("engine: reset auction: %w", err)
	}

	rollback := e.begin()
	e.ledger.Clear()
	e.catalog.ResetAll()
	if err := e.persist(ctx); err != nil {
		rollback()
		return err
	}
	return nil
}

// begin captures the current state and returns a rollback function that
// restores it, making mutate-then-persist sequences all-or-nothing.
func (e *Engine) begin() func() {
	items := e.catalog.Snapshot()
	bids := e.ledger.Snapshot()
	users := e.creds.All()
	return func() {
		e.catalog.Restore(items)
		e.ledger.Restore(bids)
		e.creds.Restore(users)
	}
}

// persist overwrites the persisted snapshot with the current state.
func (e *Engine) persist(ctx context.Context) error {
	snap := store.Snapshot{
		Items: e.catalog.Snapshot(),
		Bids:  e.ledger.Snapshot(),
		Users: e.creds.All(),
	}
	if err := e.store.SaveAll(ctx, snap); err != nil {
		return fmt.Errorf("engine: failed to persist auction state: %w", err)
	}
	return nil
}

func requireAdmin(identity string) error {
	if identity == "" {
		return auctionerrors.ErrUnauthenticated
	}
	if !models.IsAdmin(identity) {
		return auctionerrors.ErrForbidden
	}
	return nil
}

func copyUsers(users map[string]string) map[string]string {
	out := make(map[string]string, len(users))
	for name, secret := range users {
		out[name] = secret
	}
	return out
}
