package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// AddItemHandler handles POST /admin/items
func (h *AuctionHandler) AddItemHandler(c *gin.Context) {
	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	identity := c.GetString(IdentityKey)
	item, err := h.service.AdminAddItem(c.Request.Context(), identity, req.Name, req.StartingPrice, req.Image)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddItemHandler: failed to add item", map[string]any{"user": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item added successfully")
	helpers.LogSuccess("AddItemHandler", "item added successfully", map[string]any{
		"item_id": item.ID,
		"name":    item.Name,
		"user":    identity,
	})
}

// EditItemHandler handles PUT /admin/items/:item_id
func (h *AuctionHandler) EditItemHandler(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		helpers.HandleBindError(c, "EditItemHandler", fmt.Errorf("item_id must be an integer: %w", err))
		return
	}

	var req helpers.EditItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditItemHandler", err)
		return
	}

	identity := c.GetString(IdentityKey)
	item, err := h.service.AdminEditItem(c.Request.Context(), identity, itemID, req.ToEdit())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EditItemHandler: failed to edit item", map[string]any{"item_id": itemID, "user": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item updated successfully")
	helpers.LogSuccess("EditItemHandler", "item updated successfully", map[string]any{
		"item_id": item.ID,
		"user":    identity,
	})
}

// DeleteItemHandler handles DELETE /admin/items/:item_id
func (h *AuctionHandler) DeleteItemHandler(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		helpers.HandleBindError(c, "DeleteItemHandler", fmt.Errorf("item_id must be an integer: %w", err))
		return
	}

	identity := c.GetString(IdentityKey)
	if err := h.service.AdminDeleteItem(c.Request.Context(), identity, itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteItemHandler: failed to delete item", map[string]any{"item_id": itemID, "user": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{
		"item_id": itemID,
		"user":    identity,
	})
}

// DeleteBidHandler handles DELETE /admin/bids/:position. Positions index the
// canonical oldest-first ledger, not the newest-first display order.
func (h *AuctionHandler) DeleteBidHandler(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		helpers.HandleBindError(c, "DeleteBidHandler", fmt.Errorf("position must be an integer: %w", err))
		return
	}

	identity := c.GetString(IdentityKey)
	if err := h.service.AdminDeleteBid(c.Request.Context(), identity, position); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteBidHandler: failed to delete bid", map[string]any{"position": position, "user": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"position": position,
		"user":     identity,
	})
}

// ResetAuctionHandler handles POST /admin/reset
func (h *AuctionHandler) ResetAuctionHandler(c *gin.Context) {
	identity := c.GetString(IdentityKey)
	if err := h.service.AdminResetAuction(c.Request.Context(), identity); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResetAuctionHandler: failed to reset auction", map[string]any{"user": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction reset successfully")
	helpers.LogSuccess("ResetAuctionHandler", "auction reset successfully", map[string]any{
		"user": identity,
	})
}
