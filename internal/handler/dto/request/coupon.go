package request

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"max=64"`
}
