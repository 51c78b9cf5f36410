package request

import (
	"strings"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Size     string    `json:"size" binding:"max=32"`
	Quantity int       `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// UpdateCartItemRequest removes the line when quantity is zero or negative.
type UpdateCartItemRequest struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Size     string    `json:"size" binding:"max=32"`
	Quantity int       `json:"quantity" binding:"max=99"`
}

type RemoveCartItemRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Size   string    `json:"size" binding:"max=32"`
}

func (r AddCartItemRequest) NormalizedSize() string    { return strings.TrimSpace(r.Size) }
func (r UpdateCartItemRequest) NormalizedSize() string { return strings.TrimSpace(r.Size) }
func (r RemoveCartItemRequest) NormalizedSize() string { return strings.TrimSpace(r.Size) }
