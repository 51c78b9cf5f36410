package request

type RedeemPointsRequest struct {
	Points int64 `json:"points"`
}
