package api

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"net/http"
	"sneaker-shop/internal/service"
)

const claimsContextKey = "user"

// JWTMiddleware rejects requests without a valid bearer token and stores the
// verified claims on the echo context.
func JWTMiddleware(tokens *service.TokenManager) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Parse(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
		},
	})
}

// currentUserID returns the id from the verified token claims.
func currentUserID(c echo.Context) (int, bool) {
	claims, ok := c.Get(claimsContextKey).(*service.JwtCustomClaims)
	if !ok || claims == nil {
		return 0, false
	}
	return claims.UserID, true
}
