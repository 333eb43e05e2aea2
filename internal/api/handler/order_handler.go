package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velura/storefront-api/internal/api/metrics"
	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create persists a pending order from the caller's cart snapshot and
// clears the cart.
//
// @Summary      Create order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.CartItem{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			Size:         it.Size,
			Color:        it.Color,
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
			ProductImage: it.ProductImage,
		})
	}

	order, err := h.orderService.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:  userID,
		Items:   items,
		Total:   req.Total,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// List returns the caller's orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateIntent opens a payment intent with the external provider,
// tagged with the local order id.
//
// @Summary      Create payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentIntentRequest  true  "Amount and order reference"
// @Success      200   {object}  paymentIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/paypal/create-order [post]
func (h *OrderHandler) CreateIntent(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	intentID, err := h.orderService.CreatePaymentIntent(c.Request().Context(), req.Amount, req.OrderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentIntentResponse{ID: intentID})
}

// Capture finalizes the payment intent and marks the referenced order
// completed, scoped to the caller.
//
// @Summary      Capture payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Provider intent id"
// @Success      200       {object}  captureResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      502       {object}  errorResponse
// @Failure      503       {object}  errorResponse
// @Router       /api/paypal/capture-order/{order_id} [post]
func (h *OrderHandler) Capture(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	intentID := c.Param("order_id")
	orderID, err := h.orderService.CapturePayment(c.Request().Context(), intentID, userID)
	if err != nil {
		outcome := "failed"
		if errors.Is(err, domain.ErrPaymentUnavailable) {
			outcome = "unavailable"
		}
		metrics.PaymentCapturesTotal.WithLabelValues(outcome).Inc()
		return err
	}

	metrics.PaymentCapturesTotal.WithLabelValues("completed").Inc()
	return c.JSON(http.StatusOK, captureResponse{Status: "completed", OrderID: orderID})
}
