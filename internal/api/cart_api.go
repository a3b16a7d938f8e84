package api

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"sneaker-shop/internal/service"
	"strconv"
)

type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new instance of CartHandler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Add --> POST /cart/:sneakerId
func (h *CartHandler) Add(c echo.Context) error {
	return h.mutate(c, "Sneaker added to cart", h.cartService.Add)
}

// Remove --> DELETE /cart/:sneakerId
func (h *CartHandler) Remove(c echo.Context) error {
	return h.mutate(c, "Sneaker removed from cart", h.cartService.Remove)
}

// RemoveAll --> DELETE /cart/remove-all/:sneakerId
func (h *CartHandler) RemoveAll(c echo.Context) error {
	return h.mutate(c, "All items of sneaker removed from cart", h.cartService.RemoveAll)
}

// View --> GET /cart
func (h *CartHandler) View(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	items, err := h.cartService.View(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateQuantity --> PUT /cart/update-quantity?productId=&quantity=
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, err := strconv.Atoi(c.QueryParam("productId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid product ID")
	}
	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil || quantity < 0 || quantity > service.MaxLineQuantity {
		return errorJSON(c, http.StatusBadRequest, "Invalid quantity")
	}
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	if err := h.cartService.UpdateQuantity(c.Request().Context(), userID, productID, quantity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Quantity updated"})
}

// Total --> GET /cart/total
func (h *CartHandler) Total(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	total, err := h.cartService.Total(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, total)
}

func (h *CartHandler) mutate(c echo.Context, message string, op func(ctx context.Context, userID, sneakerID int) error) error {
	sneakerID, err := strconv.Atoi(c.Param("sneakerId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid sneaker ID")
	}
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	if err := op(c.Request().Context(), userID, sneakerID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}
