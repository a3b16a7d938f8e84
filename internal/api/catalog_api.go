package api

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"sneaker-shop/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListAll --> /allSneakers
func (h *CatalogHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogService.ListAll(c.Request().Context()))
}

// ListPopular --> /sneakers/popular
func (h *CatalogHandler) ListPopular(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogService.ListPopular(c.Request().Context()))
}

// ListByCategory --> /sneakers/:category
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	sneakers, err := h.catalogService.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Category parameter is required")
	}
	return c.JSON(http.StatusOK, sneakers)
}

// Search --> /sneakers/search?query=
func (h *CatalogHandler) Search(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogService.Search(c.Request().Context(), c.QueryParam("query")))
}
