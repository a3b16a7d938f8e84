package api

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/service"
	"strconv"
)

type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login logs in a user --> /login
func (h *AuthHandler) Login(c echo.Context) error {
	req := entity.LoginRequest{}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Register creates a new user --> /registration
func (h *AuthHandler) Register(c echo.Context) error {
	req := entity.CreateUserRequest{}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}

	resp, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// GetProfile retrieves a user by ID --> /profile/:userId
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "User not found")
	}

	user, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
