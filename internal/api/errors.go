package api

import (
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"net/http"
	"os"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, entity.ErrorResponse{Message: message, ErrorCode: code})
}

// writeError maps service errors onto status codes. Anything unexpected is a 500.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return errorJSON(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrUserNotFound):
		return errorJSON(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrSneakerNotFound):
		return errorJSON(c, http.StatusNotFound, "Sneaker not found")
	case errors.Is(err, service.ErrEmailExists):
		return errorJSON(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, service.ErrAlreadyFavorite):
		return errorJSON(c, http.StatusConflict, "Sneaker already in favorites")
	default:
		logger.Error().Err(err).Msgf("Unhandled error on %s %s", c.Request().Method, c.Path())
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}

// HTTPErrorHandler renders errors that escape the handlers (unknown routes,
// wrong methods, panics) as ErrorResponse bodies.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		logger.Error().Err(err).Msg("Unhandled error")
	}

	if err := errorJSON(c, code, message); err != nil {
		logger.Error().Err(err).Msg("Error writing error response")
	}
}
