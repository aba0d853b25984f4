package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/api/metrics"
	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the per-user cart.
type CartHandler struct {
	carts    ports.CartService
	products ports.ProductService
}

func NewCartHandler(carts ports.CartService, products ports.ProductService) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// Get handles GET /v1/cart.
//
// @Summary      Current cart contents and total
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, cartResponse{
		Items: h.carts.Items(ctx, userID),
		Total: h.carts.Total(ctx, userID),
	})
}

// AddItem handles POST /v1/cart/items. The product is resolved against the
// catalog first so a stale id cannot put a phantom line in the cart.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product to add"
// @Success      201   {object}  cartResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()
	product, err := h.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	h.carts.Add(ctx, userID, *product)
	metrics.CartOpsTotal.WithLabelValues("add").Inc()

	return c.JSON(http.StatusCreated, cartResponse{
		Items: h.carts.Items(ctx, userID),
		Total: h.carts.Total(ctx, userID),
	})
}

// RemoveItem handles DELETE /v1/cart/items/:id. Removing an id that is not
// in the cart is a no-op, not an error.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	h.carts.Remove(c.Request().Context(), userID, id)
	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Checkout handles POST /v1/cart/checkout, the explicit action that clears
// the cart.
//
// @Summary      Check out and clear the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkoutResponse
// @Router       /v1/cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	total := h.carts.Total(ctx, userID)
	h.carts.Clear(ctx, userID)
	metrics.CartOpsTotal.WithLabelValues("checkout").Inc()

	return c.JSON(http.StatusOK, checkoutResponse{Status: "checked_out", Total: total})
}
