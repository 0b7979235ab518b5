package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	paymentRepo "onehour/database/repository/payment"
	"onehour/models"
)

// In-memory doubles for the repositories, gateway and dispatcher. They mirror
// the conditional-write semantics of the Mongo implementations so the
// idempotency paths are exercised for real.

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment // keyed by order ref
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments[p.OrderRef] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByOrderRef(_ context.Context, orderRef string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.payments[orderRef]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, paymentRepo.ErrNotFound
}

func (r *fakePaymentRepo) FindByTransactionRef(_ context.Context, ref string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.TransactionRef == ref {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) Complete(_ context.Context, orderRef, transactionRef, signature string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[orderRef]
	if !ok || p.Status == models.PaymentStateCompleted {
		return nil, nil
	}
	p.Status = models.PaymentStateCompleted
	p.TransactionRef = transactionRef
	p.Signature = signature
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetByUser(_ context.Context, userID string, status models.PaymentState) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		if p.UserID == userID && p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetAll(_ context.Context) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) seed(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := b
	r.bookings[b.ID] = &cp
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByUser(_ context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdatePaymentOutcome(_ context.Context, bookingID, paymentID string, status models.PaymentStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.PaymentStatus != models.PaymentPending {
		return false, nil
	}
	b.PaymentStatus = status
	b.PaymentID = paymentID
	return true, nil
}

// fakeGateway signs callbacks with the same scheme as the real gateway so
// verification paths run against genuine HMACs.
type fakeGateway struct {
	secret     string
	createErr  error
	lastAmount int64
	orderCount int
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, _ map[string]interface{}) (*models.GatewayOrder, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.orderCount++
	g.lastAmount = amount
	return &models.GatewayOrder{
		ID:       "order_test_001",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderRef, transactionRef, signature string) bool {
	return g.sign(orderRef, transactionRef) == signature
}

func (g *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

func (g *fakeGateway) sign(orderRef, transactionRef string) string {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderRef + "|" + transactionRef))
	return hex.EncodeToString(mac.Sum(nil))
}

type fakeDispatcher struct {
	mu                sync.Mutex
	paymentsCompleted int
	manualSubmitted   int
}

func (d *fakeDispatcher) BookingCreated(models.Booking) {}

func (d *fakeDispatcher) PaymentCompleted(models.Payment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paymentsCompleted++
}

func (d *fakeDispatcher) ManualPaymentSubmitted(models.ManualPaymentPayload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.manualSubmitted++
}
