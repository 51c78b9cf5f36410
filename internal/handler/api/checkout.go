package api

import (
	"io"
	"net/http"
	"strings"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdempotencyKeyHeader = middleware.IdempotencyKeyHeader

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
	preview  commands.PreviewCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, preview commands.PreviewCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, preview: preview}
}

// @Summary Checkout preview
// @Description Advisory stock, coupon and loyalty checks over one cart snapshot
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewRequest false "Coupon and redemption to include"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.PreviewRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.preview.Preview(c.Request.Context(), session, req.ToInput(middleware.GetIdentity(c)))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreview(result, userMessage))
}

// @Summary Begin checkout attempt
// @Description Returns the open attempt and its idempotency key, creating one if needed
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.BeginAttemptRequest false "Client-chosen idempotency key"
// @Success 200 {object} resdto.AttemptResponse
// @Router /api/checkout/attempts [post]
func (h *CheckoutHandler) BeginAttempt(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.BeginAttemptRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttempt(session.BeginCheckout(req.IdempotencyKey)))
}

// @Summary Place order
// @Description Submit the cart as an order. Retries must reuse the same Idempotency-Key.
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Attempt key; omitted reuses the open attempt"
// @Param request body reqdto.PlaceOrderRequest true "Order details"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Success 200 {object} resdto.PlaceOrderResponse "Replayed attempt"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout/orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key", nil)
		return
	}
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(middleware.GetIdentity(c), key)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), session, in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.Header(IdempotencyKeyHeader, result.IdempotencyKey.String())
	c.JSON(status, resdto.FromPlaceOrder(result))
}

// @Summary Payment return
// @Description Report the outcome of the external payment page for a pending order
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentReturnRequest true "Payment outcome"
// @Success 200 {object} resdto.PaymentReturnResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/payment-return [post]
func (h *CheckoutHandler) PaymentReturn(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.PaymentReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.checkout.CompletePayment(c.Request.Context(), session, strings.TrimSpace(req.OrderNumber), *req.Success)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

// idempotencyKey returns nil when the header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// bindOptionalJSON treats a missing body as an empty request.
func bindOptionalJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errs.Is(err, io.EOF) {
		return err
	}
	return nil
}
