package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/loyalty"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/money"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart              = errs.New("cart is empty")
	ErrLoginRequired          = errs.New("sign in to check out")
	ErrIdempotencyKeyRequired = errs.New("idempotency key is required")
	ErrStockUnavailable       = errs.New("some items are no longer available in the requested quantity")
	ErrCartChanged            = errs.New("cart kept changing during checkout")
	ErrRedemptionNotUsable    = errs.New("loyalty redemption cannot be used for this order")
	ErrPaymentUnavailable     = errs.New("payment provider is unavailable")
	ErrAttemptCancelled       = errs.New("this checkout attempt was cancelled")
	ErrNoPendingPayment       = errs.New("no order is awaiting payment")
)

// StockUnavailableError lists the lines that blocked submission.
type StockUnavailableError struct {
	Lines stock.Results
}

func (e *StockUnavailableError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		parts = append(parts, fmt.Sprintf("%s/%s requested %d available %d", l.ItemID, l.Size, l.Requested, l.Available))
	}
	return ErrStockUnavailable.Error() + ": " + strings.Join(parts, "; ")
}

func (e *StockUnavailableError) Is(target error) bool {
	return target == ErrStockUnavailable
}

type PlaceOrderInput struct {
	Identity            *uuid.UUID
	Address             order.Address
	PaymentMethod       string
	CouponCode          string
	LoyaltyRedemptionID *uuid.UUID
	Gift                *order.Gift
	// nil reuses the session's open attempt
	IdempotencyKey *uuid.UUID
}

type PlaceOrderResult struct {
	OrderID        uuid.UUID
	OrderNumber    string
	Status         order.Status
	PaymentMethod  order.PaymentMethod
	Totals         order.Totals
	Coupon         *coupon.Evaluation
	RedirectURL    string
	IdempotencyKey uuid.UUID
	Replayed       bool
	// false while a redirect payment is outstanding
	Confirmed bool
}

type PaymentResult struct {
	OrderNumber string
	Status      order.Status
	CartCleared bool
}

type OrderPlacer struct {
	stock            StockChecker
	coupons          CouponApplier
	pricer           *Pricer
	loyalty          shared.LoyaltyReader
	gateway          shared.OrderGateway
	payment          shared.PaymentProvider
	rate             loyalty.ExchangeRate
	clock            clock.Clock
	requireAuth      bool
	maxRevalidations int
}

func NewOrderPlacer(
	stockChecker StockChecker,
	coupons CouponApplier,
	pricer *Pricer,
	loyaltyReader shared.LoyaltyReader,
	gateway shared.OrderGateway,
	payment shared.PaymentProvider,
	clk clock.Clock,
	cfg config.Config,
) (*OrderPlacer, error) {
	rate, err := loyalty.NewExchangeRate(cfg.Loyalty.PointValue, cfg.Loyalty.PointsPerUnit)
	if err != nil {
		return nil, errs.Wrap(err, "invalid loyalty configuration")
	}
	maxRevalidations := cfg.Checkout.MaxRevalidations
	if maxRevalidations < 1 {
		maxRevalidations = 1
	}
	return &OrderPlacer{
		stock:            stockChecker,
		coupons:          coupons,
		pricer:           pricer,
		loyalty:          loyaltyReader,
		gateway:          gateway,
		payment:          payment,
		rate:             rate,
		clock:            clk,
		requireAuth:      cfg.Checkout.RequireAuth,
		maxRevalidations: maxRevalidations,
	}, nil
}

func (p *OrderPlacer) PlaceOrder(ctx context.Context, session *cartstore.Session, in PlaceOrderInput) (*PlaceOrderResult, error) {
	unlock := session.LockCheckout()
	defer unlock()

	if in.IdempotencyKey != nil && *in.IdempotencyKey == uuid.Nil {
		return nil, ErrIdempotencyKeyRequired
	}
	if key := retryKey(session, in.IdempotencyKey); key != uuid.Nil {
		result, err := p.replay(ctx, session, key, in)
		if err != nil {
			p.rejected(session, key, err)
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	if session.Cart().IsEmpty() {
		return nil, ErrEmptyCart
	}
	if p.requireAuth && in.Identity == nil {
		return nil, ErrLoginRequired
	}
	if err := in.Address.Validate(); err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if err := in.Gift.Validate(); err != nil {
		return nil, err
	}

	attempt := session.BeginCheckout(in.IdempotencyKey)
	if err := attempt.Submit(); err != nil {
		return nil, err
	}

	result, err := p.submit(ctx, session, attempt, in, method)
	if err != nil {
		attempt.Reject()
		p.rejected(session, attempt.Key(), err)
		return nil, err
	}
	return result, nil
}

func (p *OrderPlacer) rejected(session *cartstore.Session, key uuid.UUID, err error) {
	checkoutRejected.WithLabelValues(rejectReason(err)).Inc()
	slog.Info("checkout rejected",
		"device_id", session.DeviceID(),
		"idempotency_key", key,
		"reason", err.Error())
}

// retryKey is the key a submission may be retrying: the client's key, the
// open attempt's, or the last confirmed attempt's once its cart was cleared.
func retryKey(session *cartstore.Session, clientKey *uuid.UUID) uuid.UUID {
	if clientKey != nil {
		return *clientKey
	}
	if a := session.CurrentAttempt(); a != nil {
		return a.Key()
	}
	if a := session.ConfirmedAttempt(); a != nil && session.Cart().IsEmpty() {
		return a.Key()
	}
	return uuid.Nil
}

// replay returns the order already stored under key, or nil when there is
// none. It runs before the cart and gate checks.
func (p *OrderPlacer) replay(ctx context.Context, session *cartstore.Session, key uuid.UUID, in PlaceOrderInput) (*PlaceOrderResult, error) {
	rec, err := p.gateway.FindByIdempotencyKey(ctx, key)
	if err != nil {
		if errs.Is(err, shared.ErrOrderNotFound) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to look up checkout attempt")
	}

	method, err := order.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	lines := cartHashLines(session.Cart().Snapshot().Lines)
	if len(lines) == 0 {
		lines = orderHashLines(rec.Lines)
	}
	if requestHash(in, method, lines) != rec.RequestHash {
		return nil, errs.Mark(errs.New("idempotency key belongs to order "+rec.Number), shared.ErrIdempotencyKeyConflict)
	}

	attempt := session.BeginCheckout(&key)
	if err := attempt.Submit(); err != nil {
		return nil, err
	}
	submitted := &shared.SubmitResult{
		OrderID:       rec.ID,
		Number:        rec.Number,
		Status:        rec.Status,
		PaymentMethod: rec.PaymentMethod,
		Payable:       rec.Totals.Payable,
		Replayed:      true,
	}
	return p.settle(ctx, session, attempt, submitted, &PlaceOrderResult{Totals: rec.Totals})
}

func (p *OrderPlacer) submit(ctx context.Context, session *cartstore.Session, attempt *order.Attempt, in PlaceOrderInput, method order.PaymentMethod) (*PlaceOrderResult, error) {
	for round := 1; ; round++ {
		snap := session.Cart().Snapshot()
		if len(snap.Lines) == 0 {
			return nil, ErrEmptyCart
		}

		results, err := p.stock.Validate(ctx, snap.Lines)
		if err != nil {
			return nil, err
		}
		if session.Cart().Version() != snap.Version {
			if round >= p.maxRevalidations {
				return nil, ErrCartChanged
			}
			continue
		}
		if results.HasBlockingIssues() {
			return nil, &StockUnavailableError{Lines: results.Blocking()}
		}

		draft, err := p.draft(ctx, snap, attempt.Key(), in, method)
		if err != nil {
			return nil, err
		}
		if session.Cart().Version() != snap.Version {
			if round >= p.maxRevalidations {
				return nil, ErrCartChanged
			}
			continue
		}

		return p.send(ctx, session, attempt, draft)
	}
}

type orderDraft struct {
	order    *order.Order
	coupon   *coupon.Evaluation
	earned   int64
	hash     string
	couponID *uuid.UUID
}

func (p *OrderPlacer) draft(ctx context.Context, snap cart.Snapshot, key uuid.UUID, in PlaceOrderInput, method order.PaymentMethod) (*orderDraft, error) {
	priced, err := p.pricer.Price(ctx, snap.Lines)
	if err != nil {
		return nil, err
	}

	totals := order.Totals{
		Subtotal:        priced.Subtotal,
		CouponDiscount:  money.Zero,
		LoyaltyDiscount: money.Zero,
	}

	d := &orderDraft{}
	var couponCode *string
	if strings.TrimSpace(in.CouponCode) != "" {
		eval, err := p.coupons.Apply(ctx, in.CouponCode, snap.Lines, in.Identity)
		if err != nil {
			return nil, err
		}
		d.coupon = eval
		d.couponID = &eval.CouponID
		code := eval.Code.String()
		couponCode = &code
		totals.CouponDiscount = eval.DiscountAmount
		totals.ShippingWaived = eval.ShippingWaived
	}

	if in.LoyaltyRedemptionID != nil {
		// Attachment is settled by the gateway: a replay returns the order that
		// already holds the redemption and any other reuse is rejected there.
		red, err := ownedRedemption(ctx, p.loyalty, in.Identity, *in.LoyaltyRedemptionID)
		if err != nil {
			return nil, err
		}
		totals.LoyaltyDiscount = red.DiscountAmount
	}

	totals.Payable = loyalty.TotalPayable(totals.Subtotal, totals.CouponDiscount, totals.LoyaltyDiscount)
	if in.Identity != nil {
		d.earned = p.rate.EarnedFor(totals.Payable)
	}

	o, err := order.NewOrder(order.NewOrderParams{
		IdempotencyKey: key,
		Identity:       in.Identity,
		Lines:          priced.Lines,
		Address:        in.Address,
		Gift:           in.Gift,
		CouponCode:     couponCode,
		RedemptionID:   in.LoyaltyRedemptionID,
		Totals:         totals,
		PaymentMethod:  method,
	}, p.clock.Now())
	if err != nil {
		return nil, err
	}
	d.order = o
	d.hash = requestHash(in, method, cartHashLines(snap.Lines))
	return d, nil
}

// ownedRedemption returns the redemption when identity owns it.
func ownedRedemption(ctx context.Context, reader shared.LoyaltyReader, identity *uuid.UUID, id uuid.UUID) (*loyalty.Redemption, error) {
	if identity == nil {
		return nil, ErrLoginRequired
	}
	red, err := reader.RedemptionByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRedemptionNotUsable
		}
		return nil, errs.Wrap(err, "failed to read loyalty redemption")
	}
	if red.Identity != *identity {
		return nil, ErrRedemptionNotUsable
	}
	return red, nil
}

// send makes exactly one submission; a timeout is resolved by the shopper
// retrying with the same idempotency key.
func (p *OrderPlacer) send(ctx context.Context, session *cartstore.Session, attempt *order.Attempt, d *orderDraft) (*PlaceOrderResult, error) {
	submitted, err := p.gateway.Submit(ctx, shared.SubmitOrder{
		Order:        d.order,
		CouponID:     d.couponID,
		RequestHash:  d.hash,
		EarnedPoints: d.earned,
	})
	if err != nil {
		if errs.Is(err, shared.ErrStockConflict) {
			return nil, errs.Mark(err, ErrStockUnavailable)
		}
		if errs.Is(err, shared.ErrCouponExhausted) {
			return nil, errs.Mark(err, coupon.ErrUsageLimitReached)
		}
		if errs.Is(err, shared.ErrRedemptionUnavailable) {
			return nil, errs.Mark(err, ErrRedemptionNotUsable)
		}
		return nil, err
	}

	result := &PlaceOrderResult{Totals: d.order.Totals(), Coupon: d.coupon}
	if submitted.Replayed {
		result.Totals.Payable = submitted.Payable
	}
	return p.settle(ctx, session, attempt, submitted, result)
}

// settle fills result from the stored order and moves the attempt on: a
// cancelled order ends it, a pending card order waits for payment and
// anything else confirms it and clears the cart.
func (p *OrderPlacer) settle(ctx context.Context, session *cartstore.Session, attempt *order.Attempt, submitted *shared.SubmitResult, result *PlaceOrderResult) (*PlaceOrderResult, error) {
	ordersSubmitted.WithLabelValues(string(submitted.PaymentMethod), strconv.FormatBool(submitted.Replayed)).Inc()

	result.OrderID = submitted.OrderID
	result.OrderNumber = submitted.Number
	result.Status = submitted.Status
	result.PaymentMethod = submitted.PaymentMethod
	result.IdempotencyKey = attempt.Key()
	result.Replayed = submitted.Replayed

	switch {
	case submitted.Status == order.StatusCancelled:
		session.EndCheckout()
		return nil, ErrAttemptCancelled
	case submitted.PaymentMethod.Redirects() && submitted.Status == order.StatusPending:
		url, err := p.payment.RedirectURL(ctx, submitted.Number, submitted.Payable)
		if err != nil {
			// the order stays pending; retrying the attempt replays it
			session.SetPendingPayment(submitted.Number)
			return nil, errs.Mark(err, ErrPaymentUnavailable)
		}
		session.SetPendingPayment(submitted.Number)
		result.RedirectURL = url
		return result, nil
	default:
		session.Cart().Clear()
		if err := attempt.Confirm(submitted.Number); err != nil {
			return nil, err
		}
		session.EndCheckout()
		result.Confirmed = true
		return result, nil
	}
}

// CompletePayment settles the outcome reported by the payment provider.
// Success clears the cart; failure cancels the order and keeps the cart.
func (p *OrderPlacer) CompletePayment(ctx context.Context, session *cartstore.Session, orderNumber string, success bool) (*PaymentResult, error) {
	unlock := session.LockCheckout()
	defer unlock()

	if orderNumber == "" {
		orderNumber = session.PendingPayment()
	}
	if orderNumber == "" {
		return nil, ErrNoPendingPayment
	}

	status, err := p.gateway.CompletePayment(ctx, orderNumber, success)
	if err != nil {
		return nil, err
	}

	res := &PaymentResult{OrderNumber: orderNumber, Status: status}
	attempt := session.CurrentAttempt()
	if success {
		session.Cart().Clear()
		res.CartCleared = true
		if attempt != nil && attempt.State() == order.AttemptSubmitting {
			_ = attempt.Confirm(orderNumber)
		}
	} else if attempt != nil {
		attempt.Reject()
	}
	session.EndCheckout()
	return res, nil
}

type hashedLine struct {
	ItemID   uuid.UUID `json:"itemId"`
	Size     string    `json:"size"`
	Quantity int       `json:"quantity"`
}

type hashedRequest struct {
	Identity      *uuid.UUID    `json:"identity"`
	Lines         []hashedLine  `json:"lines"`
	Address       order.Address `json:"address"`
	Gift          *order.Gift   `json:"gift"`
	CouponCode    string        `json:"couponCode"`
	RedemptionID  *uuid.UUID    `json:"redemptionId"`
	PaymentMethod string        `json:"paymentMethod"`
}

func cartHashLines(lines []cart.Line) []hashedLine {
	out := make([]hashedLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, hashedLine{ItemID: l.ItemID(), Size: l.Size(), Quantity: l.Quantity()})
	}
	return out
}

func orderHashLines(lines []order.Line) []hashedLine {
	out := make([]hashedLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, hashedLine{ItemID: l.ItemID, Size: l.Size, Quantity: l.Quantity})
	}
	return out
}

// requestHash fingerprints what the shopper sent. Prices are left out so a
// catalog change between a submission and its retry is still a replay.
func requestHash(in PlaceOrderInput, method order.PaymentMethod, lines []hashedLine) string {
	sorted := slices.Clone(lines)
	slices.SortFunc(sorted, func(a, b hashedLine) int {
		if c := strings.Compare(a.ItemID.String(), b.ItemID.String()); c != 0 {
			return c
		}
		return strings.Compare(a.Size, b.Size)
	})

	code := strings.TrimSpace(in.CouponCode)
	if normalized, err := coupon.NewCouponCode(code); err == nil {
		code = normalized.String()
	}

	data, _ := json.Marshal(hashedRequest{
		Identity:      in.Identity,
		Lines:         sorted,
		Address:       in.Address,
		Gift:          in.Gift,
		CouponCode:    code,
		RedemptionID:  in.LoyaltyRedemptionID,
		PaymentMethod: string(method),
	})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, ErrStockUnavailable):
		return "stock"
	case errs.Is(err, ErrCartChanged):
		return "cart_changed"
	case errs.Is(err, shared.ErrIdempotencyKeyConflict):
		return "idempotency_conflict"
	case errs.Is(err, ErrPaymentUnavailable):
		return "payment"
	case isCouponError(err):
		return "coupon"
	case errs.Is(err, ErrRedemptionNotUsable), errs.Is(err, ErrLoginRequired):
		return "loyalty"
	default:
		return "error"
	}
}

func isCouponError(err error) bool {
	for _, target := range []error{
		coupon.ErrInvalidCoupon, coupon.ErrInactiveCoupon, coupon.ErrNotYetValid, coupon.ErrExpired,
		coupon.ErrBelowMinimum, coupon.ErrUsageLimitReached, coupon.ErrLoginRequired,
		coupon.ErrNotFirstOrder, coupon.ErrPerUserLimitReached,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
