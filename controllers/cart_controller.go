package controllers

import (
	"net/http"
	"strconv"

	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{cartService: services.NewCartService()}
}

// GetCart godoc
// @Summary List cart items
// @Description Get the authenticated user's cart items with nested product details
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    items,
	})
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds a product; adding the same product again accumulates quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.Response "existing row updated"
// @Success 201 {object} models.Response "new row created"
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	item, created, err := ctrl.cartService.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	message := "Cart item updated"
	if created {
		status = http.StatusCreated
		message = "Item added to cart"
	}

	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    item,
	})
}

// UpdateItem godoc
// @Summary Set a cart item's quantity
// @Description Replaces the quantity of one cart item (not additive)
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid cart item id")
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	item, err := ctrl.cartService.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item updated",
		Data:    item,
	})
}

// DeleteItem godoc
// @Summary Remove a cart item
// @Tags Cart
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id} [delete]
func (ctrl *CartController) DeleteItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid cart item id")
		return
	}

	if err := ctrl.cartService.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary godoc
// @Summary Cart summary
// @Description Item count and total price of the authenticated user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/summary [get]
func (ctrl *CartController) GetSummary(c *gin.Context) {
	userID := c.GetInt("user_id")

	summary, err := ctrl.cartService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart summary retrieved",
		Data:    summary,
	})
}

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes every item; succeeds even when the cart is already empty
// @Tags Cart
// @Security BearerAuth
// @Success 204
// @Router /cart/clear [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
