package server

import (
	"time"

	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. Admin routes are
// grouped for clarity, but authorization itself is enforced by the engine so
// the rules live in exactly one place.
func SetupRouter(service handler.AuctionServiceInterface, jwtSecret string, tokenTTL time.Duration) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware(jwtSecret))

	auctionHandler := handler.NewAuctionHandler(service, jwtSecret, tokenTTL)

	auth := router.Group("/auth")
	{
		auth.POST("/login", auctionHandler.LoginHandler)
		auth.POST("/signup", auctionHandler.SignupHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("", auctionHandler.ListBidsHandler)
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/items", auctionHandler.AddItemHandler)
		admin.PUT("/items/:item_id", auctionHandler.EditItemHandler)
		admin.DELETE("/items/:item_id", auctionHandler.DeleteItemHandler)
		admin.DELETE("/bids/:position", auctionHandler.DeleteBidHandler)
		admin.POST("/reset", auctionHandler.ResetAuctionHandler)
	}

	return router
}
