package integrationtests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// Full bidding flow against the seeded catalog
func TestBiddingFlow(t *testing.T) {
	router := SetupTestRouter(t)

	// Catalog is seeded with three items
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 3)

	// Bidding without a session is rejected by the engine
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "", map[string]any{"item_id": 1, "amount": 1300})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	alice := Login(t, router, "alice", "pass123", "")

	// A bid equal to the current highest is rejected
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", alice, map[string]any{"item_id": 1, "amount": 1200})
	require.Equal(t, http.StatusConflict, w.Code)

	// A strictly higher bid is accepted and raises the highest bid
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", alice, map[string]any{"item_id": 1, "amount": 1300})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, 1300.0, data["item"].(map[string]any)["highest_bid"])
	require.Equal(t, "alice", data["bid"].(map[string]any)["user"])

	// The updated item is visible to everyone
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1300.0, resp["data"].(map[string]any)["highest_bid"])

	// Bob must outbid alice, not the starting price
	bob := Login(t, router, "bob", "secret", "")
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", bob, map[string]any{"item_id": 1, "amount": 1250})
	require.Equal(t, http.StatusConflict, w.Code)

	// The ledger holds exactly the accepted bid
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 1)
	require.Equal(t, "alice", bids[0].(map[string]any)["user"])

	// Unknown item
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", alice, map[string]any{"item_id": 42, "amount": 100})
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Signup creates a user, logs it in, and rejects duplicates
func TestSignupFlow(t *testing.T) {
	router := SetupTestRouter(t)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/signup", "", map[string]any{"username": "dave", "password": "hunter2"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := resp["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	// The fresh identity can bid straight away
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", token, map[string]any{"item_id": 2, "amount": 1000})
	require.Equal(t, http.StatusCreated, w.Code)

	// Signing the same name up again conflicts, and the first secret survives
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/signup", "", map[string]any{"username": "dave", "password": "other"})
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", map[string]any{"username": "dave", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", map[string]any{"username": "dave", "password": "other"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Admin login restrictions
func TestAdminLogin(t *testing.T) {
	router := SetupTestRouter(t)

	// Only the admin account may use admin login
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", map[string]any{"username": "alice", "password": "pass123", "role": "admin"})
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", map[string]any{"username": "admin", "password": "wrongpass", "role": "admin"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	Login(t, router, "admin", "adminpass", "admin")
}

// Admin catalog management and auction reset
func TestAdminFlow(t *testing.T) {
	router := SetupTestRouter(t)

	alice := Login(t, router, "alice", "pass123", "")
	admin := Login(t, router, "admin", "adminpass", "admin")

	// Non-admin identities cannot touch admin operations
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/admin/reset", alice, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/admin/items", alice, map[string]any{"name": "Old Radio", "starting_price": 300})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Admin adds an item; it gets the next id and is immediately biddable
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/admin/items", admin, map[string]any{"name": "Old Radio", "starting_price": 300, "image": "images/radio.jpg"})
	require.Equal(t, http.StatusCreated, w.Code)
	newID := int(resp["data"].(map[string]any)["id"].(float64))
	require.Equal(t, 4, newID)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", alice, map[string]any{"item_id": newID, "amount": 350})
	require.Equal(t, http.StatusCreated, w.Code)

	// Admin edits: lowering the starting price keeps the highest bid
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPut, fmt.Sprintf("/admin/items/%d", newID), admin, map[string]any{"starting_price": 200})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 350.0, resp["data"].(map[string]any)["highest_bid"])

	// Admin deletes the bid by canonical position; the watermark stays
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/admin/bids/0", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, fmt.Sprintf("/items/%d", newID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 350.0, resp["data"].(map[string]any)["highest_bid"])

	// Reset returns every item to its starting price and clears the ledger
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/admin/reset", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, raw := range resp["data"].([]any) {
		item := raw.(map[string]any)
		require.Equal(t, item["starting_price"], item["highest_bid"])
	}

	// Admin deletes an item; its id no longer accepts bids
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, fmt.Sprintf("/admin/items/%d", newID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", alice, map[string]any{"item_id": newID, "amount": 400})
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Requests with a garbage token are rejected at the middleware
func TestInvalidToken(t *testing.T) {
	router := SetupTestRouter(t)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "not-a-token", map[string]any{"item_id": 1, "amount": 1300})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
