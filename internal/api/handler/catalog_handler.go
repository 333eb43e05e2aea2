package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velura/storefront-api/internal/core/ports"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts returns the catalog, optionally filtered by the category
// query parameter.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   domain.Product
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by id.
//
// @Summary      Get product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogService.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ListModels returns all fashion model profiles.
//
// @Summary      List models
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.ModelProfile
// @Router       /api/models [get]
func (h *CatalogHandler) ListModels(c echo.Context) error {
	models, err := h.catalogService.ListModels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models)
}

// GetModel returns a single model profile by id.
//
// @Summary      Get model
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Model id"
// @Success      200  {object}  domain.ModelProfile
// @Failure      404  {object}  errorResponse
// @Router       /api/models/{id} [get]
func (h *CatalogHandler) GetModel(c echo.Context) error {
	model, err := h.catalogService.GetModel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model)
}
