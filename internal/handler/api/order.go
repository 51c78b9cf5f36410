package api

import (
	"net/http"
	"strconv"
	"strings"

	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary Get order
// @Description Own order by number. Guests present the idempotency key the order was placed with.
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Param Idempotency-Key header string false "Guest access key"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{number} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	guestKey, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key", nil)
		return
	}
	view, err := h.q.GetByNumber(c.Request.Context(), middleware.GetIdentity(c), number, guestKey)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List orders
// @Description Order history of the signed-in identity, newest first, with keyset pagination
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Sign in required", nil)
		return
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByIdentity(c.Request.Context(), *identity, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromOrderList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
