package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-api/pkg/cart"
	"gamestore-api/pkg/global"
	"gamestore-api/pkg/models"
	"gamestore-api/pkg/orders"
)

// GetCart returns the session's cart in insertion order with its running total.
func GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	items := cart.Use().Items(sessionID)

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"session_id": sessionID,
		"items":      items,
		"total":      models.CartTotal(items),
		"item_count": len(items),
	}))
}

// AddToCart appends the posted catalog item to the session's cart. The same
// item may be added repeatedly; every add grows the cart by one entry.
func AddToCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid cart item", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	container := cart.Use()
	container.Add(sessionID, req.ToCartEntry())
	items := container.Items(sessionID)

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"items":      items,
		"total":      models.CartTotal(items),
		"item_count": len(items),
	}))
}

// RemoveFromCart drops every cart entry with the given catalog id. A missing
// id is not an error; the cart is simply returned unchanged.
func RemoveFromCart(c *gin.Context) {
	sessionID := c.Param("sessionId")
	id := c.Param("id")

	container := cart.Use()
	container.Remove(sessionID, id)
	items := container.Items(sessionID)

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"items":      items,
		"total":      models.CartTotal(items),
		"item_count": len(items),
	}))
}

// ClearCart empties the session's cart unconditionally.
func ClearCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	cart.Use().Clear(sessionID)

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Cart cleared"}))
}

// Checkout turns the cart into a durable order and answers with the receipt.
// The receipt is the response body itself; the client blocks on it.
func Checkout(c *gin.Context) {
	sessionID := c.Param("sessionId")

	order, err := orders.Use().Checkout(cart.Use(), sessionID, identityFromContext(c))
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Your cart is empty", []global.ValidationError{
				{Field: "cart", Message: "Add at least one item before checking out", Code: "empty_cart"},
			}))
			return
		}
		log.Printf("Error persisting order history: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to place order", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"receipt": order,
		"message": "Order placed",
	}))
}

// GetOrderHistory lists completed orders, newest first.
func GetOrderHistory(c *gin.Context) {
	history := orders.Use().Orders()

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"orders": history,
		"count":  len(history),
	}))
}

// DeleteOrder removes a single order from the history.
func DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if err := orders.Use().Delete(id); err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Order not found", []global.ValidationError{
				{Field: "id", Message: "No order exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error rewriting order history: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete order", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Order deleted"}))
}
