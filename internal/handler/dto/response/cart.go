package response

import (
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unitPrice"`
	LineTotal string    `json:"lineTotal"`
	AddedAt   time.Time `json:"addedAt"`
}

type CartResponse struct {
	DeviceID  string             `json:"deviceId"`
	Version   uint64             `json:"version"`
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"itemCount"`
	Subtotal  string             `json:"subtotal"`
}

type RemoteCartLineResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StockResultResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Size      string    `json:"size"`
	Requested int       `json:"requested"`
	// -1 when the item is not stock-tracked
	Available int  `json:"available"`
	Unlimited bool `json:"unlimited"`
	OK        bool `json:"ok"`
}

type StockCheckResponse struct {
	HasBlockingIssues bool                  `json:"hasBlockingIssues"`
	Results           []StockResultResponse `json:"results"`
}

func FromCartLines(lines []cart.Line) []CartLineResponse {
	res := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		item := l.Item()
		res[i] = CartLineResponse{
			ItemID:    l.ItemID(),
			Kind:      string(item.Kind()),
			Name:      item.Name(),
			Size:      l.Size(),
			Quantity:  l.Quantity(),
			UnitPrice: money.Format(l.UnitPrice()),
			LineTotal: money.Format(l.Total()),
			AddedAt:   l.AddedAt(),
		}
	}
	return res
}

func FromCartSnapshot(deviceID string, snap cart.Snapshot) *CartResponse {
	return &CartResponse{
		DeviceID:  deviceID,
		Version:   snap.Version,
		Lines:     FromCartLines(snap.Lines),
		ItemCount: cart.ItemCount(snap.Lines),
		Subtotal:  money.Format(cart.Subtotal(snap.Lines)),
	}
}

func FromRemoteLines(lines []cart.RemoteLine) []RemoteCartLineResponse {
	res := make([]RemoteCartLineResponse, len(lines))
	for i, l := range lines {
		res[i] = RemoteCartLineResponse{ItemID: l.ItemID, Size: l.Size, Quantity: l.Quantity, UpdatedAt: l.UpdatedAt}
	}
	return res
}

func FromStockResults(results stock.Results) []StockResultResponse {
	res := make([]StockResultResponse, len(results))
	for i, r := range results {
		res[i] = StockResultResponse{
			ItemID:    r.ItemID,
			Size:      r.Size,
			Requested: r.Requested,
			Available: r.Available,
			Unlimited: r.IsUnlimited(),
			OK:        r.OK,
		}
	}
	return res
}

func FromStockCheck(results stock.Results) *StockCheckResponse {
	return &StockCheckResponse{
		HasBlockingIssues: results.HasBlockingIssues(),
		Results:           FromStockResults(results),
	}
}
