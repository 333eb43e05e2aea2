package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velura/storefront-api/internal/api/metrics"
	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the caller's cart, creating an empty one on first access.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartService.GetOrCreate(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Add merges one line into the cart. A line with the same product, size
// and color has its quantity incremented instead of being duplicated.
//
// @Summary      Add item to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cartItemRequest  true  "Item to add"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item := domain.CartItem{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Size:         req.Size,
		Color:        req.Color,
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		ProductImage: req.ProductImage,
	}

	cart, err := h.cartService.AddItem(c.Request().Context(), userID, item)
	if err != nil {
		return err
	}

	metrics.CartItemsAddedTotal.Add(float64(req.Quantity))
	return c.JSON(http.StatusOK, cart)
}

// Remove drops the line identified by product id plus the size and color
// query parameters.
//
// @Summary      Remove item from cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string  true  "Product id"
// @Param        size        query     string  true  "Size of the line to remove"
// @Param        color       query     string  true  "Color of the line to remove"
// @Success      200         {object}  messageResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/cart/items/{product_id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID := c.Param("product_id")
	size := c.QueryParam("size")
	color := c.QueryParam("color")

	if _, err := h.cartService.RemoveItem(c.Request().Context(), userID, productID, size, color); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Item removed"})
}

// Clear deletes the caller's cart document entirely.
//
// @Summary      Clear cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Cart cleared"})
}
