package handlers

import (
	"net/http"

	"canteen/internal/middleware"
	"canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := h.resolveUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid userId is required", "code": "INVALID_USER_ID"})
		return
	}

	items, err := h.cartService.ListCart(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// The session identity is the default owner of the cart row.
	if req.UserID == 0 {
		if sessionUser, ok := middleware.CurrentUserID(c); ok {
			req.UserID = sessionUser
		}
	}

	item, err := h.cartService.AddToCart(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid ID is required", "code": "INVALID_ID"})
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.cartService.UpdateQuantity(id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid ID is required", "code": "INVALID_ID"})
		return
	}

	if err := h.cartService.RemoveFromCart(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item removed successfully",
		"id":      id,
	})
}

// resolveUserID prefers the userId query parameter and falls back to the
// session identity.
func (h *CartHandler) resolveUserID(c *gin.Context) (uint, bool) {
	if raw := c.Query("userId"); raw != "" {
		return parseID(raw)
	}
	return middleware.CurrentUserID(c)
}
