package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the auth middleware stores the caller's
// identity under. Absent or empty means unauthenticated.
const IdentityKey = "identity"

type AuctionServiceInterface interface {
	ListItems() []model.Item
	GetItem(itemID int) (model.Item, error)
	ListBids() []model.Bid
	PlaceBid(ctx context.Context, identity string, itemID int, amount float64) (model.Item, model.Bid, error)
	Authenticate(username, secret string, asAdmin bool) (string, error)
	Signup(ctx context.Context, username, secret string) (string, error)
	AdminAddItem(ctx context.Context, identity, name string, startingPrice float64, image string) (model.Item, error)
	AdminEditItem(ctx context.Context, identity string, itemID int, edit model.ItemEdit) (model.Item, error)
	AdminDeleteItem(ctx context.Context, identity string, itemID int) error
	AdminDeleteBid(ctx context.Context, identity string, position int) error
	AdminResetAuction(ctx context.Context, identity string) error
}

type AuctionHandler struct {
	service   AuctionServiceInterface
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuctionHandler(service AuctionServiceInterface, jwtSecret string, tokenTTL time.Duration) *AuctionHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuctionHandler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// ListItemsHandler handles GET /items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	items := h.service.ListItems()
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		helpers.HandleBindError(c, "GetItemHandler", fmt.Errorf("item_id must be an integer: %w", err))
		return
	}

	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// ListBidsHandler handles GET /bids. The ledger is returned oldest first;
// ?order=newest returns a reversed copy for display.
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	bids := h.service.ListBids()
	if c.Query("order") == "newest" {
		for i, j := 0, len(bids)-1; i < j; i, j = i+1, j-1 {
			bids[i], bids[j] = bids[j], bids[i]
		}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"count": len(bids),
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	identity := c.GetString(IdentityKey)
	item, bid, err := h.service.PlaceBid(c.Request.Context(), identity, req.ItemID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"item_id": req.ItemID,
			"user":    identity,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Item: item,
		Bid: helpers.BidResponse{
			BidID:     bid.BidID,
			ItemID:    bid.ItemID,
			User:      bid.User,
			Amount:    bid.Amount,
			CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		},
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":      bid.BidID,
		"item_id":     bid.ItemID,
		"user":        identity,
		"amount":      bid.Amount,
		"highest_bid": item.HighestBid,
	})
}
