package handler

import (
	"fmt"
	"net/http"

	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler handles POST /auth/login
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	identity, err := h.service.Authenticate(req.Username, req.Password, req.Role == "admin")
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	token, err := helpers.GenerateToken(h.jwtSecret, identity, h.tokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("LoginHandler: failed to generate token", map[string]any{"username": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuthResponse{Token: token, Username: identity}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"username": identity})
}

// SignupHandler handles POST /auth/signup
func (h *AuctionHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}

	identity, err := h.service.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SignupHandler: signup failed", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	token, err := helpers.GenerateToken(h.jwtSecret, identity, h.tokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("SignupHandler: failed to generate token", map[string]any{"username": identity, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuthResponse{Token: token, Username: identity}, "signup successful")
	helpers.LogSuccess("SignupHandler", "signup successful", map[string]any{"username": identity})
}
