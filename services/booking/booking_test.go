package booking

import (
	"context"
	"sync"
	"testing"

	"onehour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
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

type fakeDispatcher struct {
	mu             sync.Mutex
	bookingCreated int
}

func (d *fakeDispatcher) BookingCreated(models.Booking) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bookingCreated++
}

func (d *fakeDispatcher) PaymentCompleted(models.Payment) {}

func (d *fakeDispatcher) ManualPaymentSubmitted(models.ManualPaymentPayload) {}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeDispatcher) {
	repo := newFakeBookingRepo()
	notifier := &fakeDispatcher{}
	svc := &DefaultBookingService{
		Repo:     repo,
		Notifier: notifier,
		Logger:   zap.NewNop(),
	}
	return svc, repo, notifier
}

func validProRequest() models.BookingRequest {
	return models.BookingRequest{
		UserID:            "user-1",
		Name:              "Asha Rao",
		Email:             "asha@example.com",
		Mobile:            "9876543210",
		PlanType:          models.PlanPro,
		Duration:          models.DurationThreeMonth,
		PreferredDays:     []string{"Monday", "Wednesday", "Friday"},
		PreferredTimeSlot: "6:00 AM - 7:00 AM",
	}
}

func TestCreateBookingPro(t *testing.T) {
	svc, repo, notifier := newTestService()

	created, err := svc.CreateBooking(context.Background(), validProRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PaymentPending, created.PaymentStatus)
	assert.Equal(t, models.BookingActive, created.Status)
	assert.Equal(t, 3, created.BookingsPerWeek)
	assert.Equal(t, 4, created.MaxBookingsAllowed)
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, created.PreferredDays)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, notifier.bookingCreated)
}

func TestCreateBookingAdvanceCaps(t *testing.T) {
	svc, _, _ := newTestService()

	req := validProRequest()
	req.PlanType = models.PlanAdvance
	req.PreferredDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	created, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5, created.BookingsPerWeek)
	assert.Equal(t, 6, created.MaxBookingsAllowed)
}

func TestCreateBookingTooManyDays(t *testing.T) {
	svc, repo, notifier := newTestService()

	req := validProRequest()
	req.PreferredDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday"}

	_, err := svc.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, ErrTooManyDays)
	assert.Contains(t, err.Error(), "PRO plan allows max 3 days")

	// A rejected request leaves no trace.
	all, _ := repo.GetAll(context.Background())
	assert.Empty(t, all)
	assert.Equal(t, 0, notifier.bookingCreated)
}

func TestCreateBookingDuplicateDaysDeduped(t *testing.T) {
	svc, _, _ := newTestService()

	req := validProRequest()
	req.PreferredDays = []string{"Monday", "Monday", "Wednesday", "Monday"}

	created, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Wednesday"}, created.PreferredDays)
}

func TestCreateBookingRejections(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name    string
		mutate  func(*models.BookingRequest)
		wantErr error
	}{
		{"unknown plan", func(r *models.BookingRequest) { r.PlanType = "PLATINUM" }, ErrInvalidPlan},
		{"no days", func(r *models.BookingRequest) { r.PreferredDays = nil }, ErrNoDaysSelected},
		{"blank days only", func(r *models.BookingRequest) { r.PreferredDays = []string{" ", ""} }, ErrNoDaysSelected},
		{"bad slot", func(r *models.BookingRequest) { r.PreferredTimeSlot = "3:00 AM - 4:00 AM" }, ErrInvalidTimeSlot},
		{"missing name", func(r *models.BookingRequest) { r.Name = " " }, ErrMissingContactInfo},
		{"missing email", func(r *models.BookingRequest) { r.Email = "" }, ErrMissingContactInfo},
		{"missing mobile", func(r *models.BookingRequest) { r.Mobile = "" }, ErrMissingContactInfo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validProRequest()
			tc.mutate(&req)
			_, err := svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGetUserBookings(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), validProRequest())
	require.NoError(t, err)

	other := validProRequest()
	other.UserID = "user-2"
	_, err = svc.CreateBooking(context.Background(), other)
	require.NoError(t, err)

	mine, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.GetAllBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
