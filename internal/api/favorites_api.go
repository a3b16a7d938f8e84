package api

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"sneaker-shop/internal/service"
	"strconv"
)

type FavoritesHandler struct {
	favoritesService *service.FavoritesService
}

// NewFavoritesHandler creates a new instance of FavoritesHandler
func NewFavoritesHandler(favoritesService *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService}
}

// List --> GET /favorites
func (h *FavoritesHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	favorites, err := h.favoritesService.List(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// Add --> POST /favorites/:sneakerId
func (h *FavoritesHandler) Add(c echo.Context) error {
	sneakerID, err := strconv.Atoi(c.Param("sneakerId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid sneaker ID")
	}
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	if err := h.favoritesService.Add(c.Request().Context(), userID, sneakerID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Sneaker added to favorites"})
}

// Remove --> DELETE /favorites/:sneakerId
func (h *FavoritesHandler) Remove(c echo.Context) error {
	sneakerID, err := strconv.Atoi(c.Param("sneakerId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid sneaker ID")
	}
	userID, ok := currentUserID(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	if err := h.favoritesService.Remove(c.Request().Context(), userID, sneakerID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Sneaker removed from favorites"})
}
