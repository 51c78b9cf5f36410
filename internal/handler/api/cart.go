package api

import (
	"net/http"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart  commands.CartCommands
	stock commands.StockChecker
}

func NewCartHandler(cart commands.CartCommands, stock commands.StockChecker) *CartHandler {
	return &CartHandler{cart: cart, stock: stock}
}

// @Summary Get cart
// @Description Current device cart with item count and subtotal
// @Tags cart
// @Produce json
// @Param X-Device-ID header string false "Device session id"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(session.DeviceID(), session.Cart().Snapshot()))
}

// @Summary Add cart item
// @Description Add an item, snapshotting its current catalog price. Quantities merge into an existing line.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device session id"
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cart.AddItem(c.Request.Context(), session, req.ItemID, req.NormalizedSize(), req.Quantity); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(session.DeviceID(), session.Cart().Snapshot()))
}

// @Summary Update cart item quantity
// @Description Set a line's quantity; zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateCartItemRequest true "Line and quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session.Cart().UpdateQuantity(req.ItemID, req.NormalizedSize(), req.Quantity)
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(session.DeviceID(), session.Cart().Snapshot()))
}

// @Summary Remove cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.RemoveCartItemRequest true "Line to remove"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session.Cart().Remove(req.ItemID, req.NormalizedSize())
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(session.DeviceID(), session.Cart().Snapshot()))
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	session.Cart().Clear()
	c.Status(http.StatusNoContent)
}

// @Summary Remote cart
// @Description Server-side cart of the signed-in identity
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RemoteCartLineResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cart/remote [get]
func (h *CartHandler) Remote(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Sign in required", nil)
		return
	}
	lines, err := h.cart.RemoteCart(c.Request.Context(), *identity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRemoteLines(lines))
}

// @Summary Check stock
// @Description Advisory availability check of every cart line
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.StockCheckResponse
// @Failure 503 {object} httperr.Response
// @Router /api/cart/stock-check [post]
func (h *CartHandler) StockCheck(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	results, err := h.stock.Validate(c.Request.Context(), session.Cart().Lines())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockCheck(results))
}
