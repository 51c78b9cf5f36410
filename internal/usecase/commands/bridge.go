package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/retry"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type MergeFailure struct {
	ItemID uuid.UUID
	Size   string
	Err    error
}

type MergeReport struct {
	Identity uuid.UUID
	Merged   int
	Failed   []MergeFailure
}

// IdentityBridge copies a guest cart into the identity's remote cart when a
// device signs in. Merging is additive and never surfaces errors to the shopper.
type IdentityBridge struct {
	remote  shared.RemoteCartRepository
	policy  retry.Policy
	timeout time.Duration

	running sync.WaitGroup
}

func NewIdentityBridge(remote shared.RemoteCartRepository, cfg config.Config) *IdentityBridge {
	return &IdentityBridge{
		remote:  remote,
		policy:  readPolicy(cfg),
		timeout: cfg.Checkout.MergeTimeout,
	}
}

// Observe reports whether identity completes a signed-out to signed-in edge
// for this session, and if so starts the merge in the background. The
// observed identity is stored with the device so a reloaded session does not
// see the same edge twice. An unknown previous identity is never an edge.
func (b *IdentityBridge) Observe(ctx context.Context, session *cartstore.Session, identity *uuid.UUID) bool {
	previous, known := session.SwapIdentity(identity)
	if !known || !sameIdentity(previous, identity) {
		if err := session.Cart().PersistIdentity(ctx, identity); err != nil {
			slog.Warn("device identity persistence failed", "device_id", session.DeviceID(), "error", err.Error())
		}
	}
	if !known || previous != nil || identity == nil {
		return false
	}

	lines := session.Cart().Lines()
	if len(lines) == 0 {
		return true
	}

	who := *identity
	b.running.Add(1)
	go func() {
		defer b.running.Done()

		mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()

		report := b.Merge(mctx, who, lines)
		if len(report.Failed) > 0 {
			slog.Warn("guest cart merge incomplete",
				"device_id", session.DeviceID(),
				"identity", who,
				"merged", report.Merged,
				"failed", len(report.Failed))
			return
		}
		slog.Info("guest cart merged", "device_id", session.DeviceID(), "identity", who, "merged", report.Merged)
	}()
	return true
}

func sameIdentity(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Merge adds every line to the remote cart. Lines succeed or fail independently.
func (b *IdentityBridge) Merge(ctx context.Context, identity uuid.UUID, lines []cart.Line) MergeReport {
	report := MergeReport{Identity: identity}
	for _, l := range lines {
		err := retry.Do(ctx, b.policy, "cart merge line", func(ctx context.Context) error {
			return b.mergeLine(ctx, identity, l)
		})
		if err != nil {
			slog.Debug("cart line merge failed", "item_id", l.ItemID(), "size", l.Size(), "error", err.Error())
			report.Failed = append(report.Failed, MergeFailure{ItemID: l.ItemID(), Size: l.Size(), Err: err})
			cartMergeLines.WithLabelValues("failed").Inc()
			continue
		}
		report.Merged++
		cartMergeLines.WithLabelValues("merged").Inc()
	}
	return report
}

// Wait blocks until background merges finish.
func (b *IdentityBridge) Wait() {
	b.running.Wait()
}

func (b *IdentityBridge) mergeLine(ctx context.Context, identity uuid.UUID, l cart.Line) error {
	existing, err := b.remote.FindLine(ctx, identity, l.ItemID(), l.Size())
	switch {
	case err == nil:
		return transient(b.remote.IncrementQuantity(ctx, existing.ID, l.Quantity()))
	case infra.IsKind(err, infra.KindNotFound):
		err = b.remote.InsertLine(ctx, identity, l.ItemID(), l.Size(), l.Quantity())
		// another merge inserted it first; the next attempt increments instead
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return err
		}
		return transient(err)
	default:
		return transient(err)
	}
}
