package response

import (
	"time"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderLineResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unitPrice"`
	LineTotal string    `json:"lineTotal"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	Address         order.Address       `json:"address"`
	Gift            *order.Gift         `json:"gift,omitempty"`
	CouponCode      *string             `json:"couponCode,omitempty"`
	Subtotal        string              `json:"subtotal"`
	CouponDiscount  string              `json:"couponDiscount"`
	LoyaltyDiscount string              `json:"loyaltyDiscount"`
	Payable         string              `json:"payable"`
	ShippingWaived  bool                `json:"shippingWaived"`
	Lines           []OrderLineResponse `json:"lines"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type OrderListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	Payable   string    `json:"payable"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderListResponse struct {
	Items []OrderListItemResponse `json:"items"`
	Next  string                  `json:"next,omitempty"`
}

var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.New("expected decimal amount")
				}
				return money.Format(d), nil
			},
		},
	},
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var res OrderResponse
	if err := copier.CopyWithOption(&res, v, copyOptions); err != nil {
		return nil, errs.Wrap(err, "failed to map order view")
	}
	return &res, nil
}

func FromOrderList(items []*queries.OrderListItem, next *queries.Cursor) (*OrderListResponse, error) {
	res := &OrderListResponse{Items: make([]OrderListItemResponse, 0, len(items))}
	if err := copier.CopyWithOption(&res.Items, items, copyOptions); err != nil {
		return nil, errs.Wrap(err, "failed to map order list")
	}
	if next != nil {
		res.Next = next.After
	}
	return res, nil
}
