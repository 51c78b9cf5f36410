package stock

import (
	"github.com/google/uuid"
)

// Unlimited marks an item that has no inventory record and is not stock-tracked.
const Unlimited = -1

type CheckResult struct {
	ItemID    uuid.UUID
	Size      string
	Requested int
	Available int
	OK        bool
}

// Evaluate builds the outcome for one line. found=false means no inventory
// record exists, which is treated as unlimited availability.
func Evaluate(itemID uuid.UUID, size string, requested, available int, found bool) CheckResult {
	if !found {
		return CheckResult{
			ItemID:    itemID,
			Size:      size,
			Requested: requested,
			Available: Unlimited,
			OK:        true,
		}
	}
	return CheckResult{
		ItemID:    itemID,
		Size:      size,
		Requested: requested,
		Available: available,
		OK:        available >= requested,
	}
}

func (r CheckResult) IsUnlimited() bool {
	return r.Available == Unlimited
}

type Results []CheckResult

func (rs Results) HasBlockingIssues() bool {
	for _, r := range rs {
		if !r.OK {
			return true
		}
	}
	return false
}

func (rs Results) Blocking() Results {
	var out Results
	for _, r := range rs {
		if !r.OK {
			out = append(out, r)
		}
	}
	return out
}
