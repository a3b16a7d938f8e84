package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
	"sneaker-shop/internal/metrics"
	"sneaker-shop/internal/service"
	"time"
)

type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Favorites *FavoritesHandler
	Cart      *CartHandler
}

// NewHandlers builds every handler from its service.
func NewHandlers(auth *service.AuthService, catalog *service.CatalogService, favorites *service.FavoritesService, cart *service.CartService) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(auth),
		Catalog:   NewCatalogHandler(catalog),
		Favorites: NewFavoritesHandler(favorites),
		Cart:      NewCartHandler(cart),
	}
}

// NewRouter wires middleware and routes. m may be nil.
func NewRouter(h *Handlers, tokens *service.TokenManager, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", m.Handler())
	}

	auth := JWTMiddleware(tokens)

	// Routes
	e.POST("/login", h.Auth.Login)
	e.POST("/registration", h.Auth.Register)
	e.GET("/profile/:userId", h.Auth.GetProfile, auth)

	e.GET("/allSneakers", h.Catalog.ListAll)
	e.GET("/sneakers/popular", h.Catalog.ListPopular)
	e.GET("/sneakers/search", h.Catalog.Search)
	e.GET("/sneakers/:category", h.Catalog.ListByCategory)

	e.GET("/favorites", h.Favorites.List, auth)
	e.POST("/favorites/:sneakerId", h.Favorites.Add, auth)
	e.DELETE("/favorites/:sneakerId", h.Favorites.Remove, auth)

	e.GET("/cart", h.Cart.View, auth)
	e.GET("/cart/total", h.Cart.Total, auth)
	e.POST("/cart/:sneakerId", h.Cart.Add, auth)
	e.DELETE("/cart/:sneakerId", h.Cart.Remove, auth)
	e.DELETE("/cart/remove-all/:sneakerId", h.Cart.RemoveAll, auth)
	e.PUT("/cart/update-quantity", h.Cart.UpdateQuantity, auth)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "sneaker-shop",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return e
}
