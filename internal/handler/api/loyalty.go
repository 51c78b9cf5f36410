package api

import (
	"net/http"
	"strconv"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 20

type LoyaltyHandler struct {
	ledger commands.LoyaltyCommands
}

func NewLoyaltyHandler(ledger commands.LoyaltyCommands) *LoyaltyHandler {
	return &LoyaltyHandler{ledger: ledger}
}

// @Summary Loyalty summary
// @Description Point balance and most recent transactions
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Param limit query int false "History rows (default 20)"
// @Success 200 {object} resdto.LoyaltySummaryResponse
// @Failure 401 {object} httperr.Response
// @Router /api/loyalty [get]
func (h *LoyaltyHandler) Summary(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Sign in required", nil)
		return
	}
	limit := defaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}

	balance, err := h.ledger.Balance(c.Request.Context(), *identity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	history, err := h.ledger.History(c.Request.Context(), *identity, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoyaltyHistory(balance, h.ledger.Rate(), history))
}

// @Summary Redeem points
// @Description Spend points for a discount that can be attached to the next order
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemPointsRequest true "Points to redeem"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/loyalty/redeem [post]
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Sign in required", nil)
		return
	}
	var req reqdto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	redemption, err := h.ledger.Redeem(c.Request.Context(), *identity, req.Points)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRedemption(redemption))
}
