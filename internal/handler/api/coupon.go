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

type CouponHandler struct {
	coupons commands.CouponApplier
}

func NewCouponHandler(coupons commands.CouponApplier) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// @Summary Apply coupon
// @Description Evaluate a coupon code against the current cart. Rejections carry a human-readable reason.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponEvaluationResponse
// @Failure 422 {object} httperr.Response
// @Router /api/coupons/apply [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	session, ok := middleware.MustSession(c)
	if !ok {
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	eval, err := h.coupons.Apply(c.Request.Context(), req.Code, session.Cart().Lines(), middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponEvaluation(eval))
}
