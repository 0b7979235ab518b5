package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"onehour/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func newTestWorker(mailer Mailer) *Worker {
	return NewWorker(asynq.RedisClientOpt{Addr: "localhost:6379"}, mailer, "admin@example.com", zap.NewNop())
}

func TestHandleBookingCreated(t *testing.T) {
	mailer := &fakeMailer{}
	w := newTestWorker(mailer)

	booking := models.Booking{
		ID:                "bk-1",
		Name:              "Asha Rao",
		Email:             "asha@example.com",
		Mobile:            "9876543210",
		PlanType:          models.PlanPro,
		Duration:          models.DurationThreeMonth,
		PreferredDays:     []string{"Monday", "Wednesday"},
		PreferredTimeSlot: "6:00 AM - 7:00 AM",
	}
	payload, err := json.Marshal(booking)
	require.NoError(t, err)

	err = w.HandleBookingCreated(context.Background(), asynq.NewTask(TypeBookingCreated, payload))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "admin@example.com", mailer.sent[0].to)
	assert.Equal(t, "New Booking: Asha Rao - PRO Plan", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Asha Rao")
	assert.Contains(t, mailer.sent[0].body, "6:00 AM - 7:00 AM")
}

func TestHandlePaymentCompleted(t *testing.T) {
	mailer := &fakeMailer{}
	w := newTestWorker(mailer)

	payment := models.Payment{
		ID:             "pay-row-1",
		OrderRef:       "order_abc",
		TransactionRef: "pay_xyz",
		Amount:         299900,
		Currency:       "INR",
		PlanType:       models.PlanPro,
		Duration:       models.DurationThreeMonth,
		Status:         models.PaymentStateCompleted,
	}
	payload, err := json.Marshal(payment)
	require.NoError(t, err)

	err = w.HandlePaymentCompleted(context.Background(), asynq.NewTask(TypePaymentCompleted, payload))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Payment Confirmed: PRO 3-Month", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "pay_xyz")
}

func TestHandleManualPaymentMailsBothParties(t *testing.T) {
	mailer := &fakeMailer{}
	w := newTestWorker(mailer)

	payload, err := json.Marshal(models.ManualPaymentPayload{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		PlanType: models.PlanPro,
		Duration: models.DurationThreeMonth,
		Amount:   299900,
		UTR:      "UTR123456789",
	})
	require.NoError(t, err)

	err = w.HandleManualPayment(context.Background(), asynq.NewTask(TypeManualPayment, payload))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "admin@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "UTR123456789")
	assert.Equal(t, "asha@example.com", mailer.sent[1].to)
	assert.Equal(t, "Payment Received - OneHour Challenge", mailer.sent[1].subject)
}

func TestHandleManualPaymentSkipsCustomerWithoutEmail(t *testing.T) {
	mailer := &fakeMailer{}
	w := newTestWorker(mailer)

	payload, err := json.Marshal(models.ManualPaymentPayload{
		Name: "Asha Rao",
		UTR:  "UTR123456789",
	})
	require.NoError(t, err)

	err = w.HandleManualPayment(context.Background(), asynq.NewTask(TypeManualPayment, payload))
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "admin@example.com", mailer.sent[0].to)
}

func TestHandlerErrorsPropagateForRetry(t *testing.T) {
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	w := newTestWorker(mailer)

	payload, err := json.Marshal(models.Booking{Name: "Asha Rao", PlanType: models.PlanPro})
	require.NoError(t, err)

	err = w.HandleBookingCreated(context.Background(), asynq.NewTask(TypeBookingCreated, payload))
	assert.Error(t, err)
}

func TestHandlerRejectsMalformedPayload(t *testing.T) {
	mailer := &fakeMailer{}
	w := newTestWorker(mailer)

	err := w.HandleBookingCreated(context.Background(), asynq.NewTask(TypeBookingCreated, []byte("{not json")))
	assert.Error(t, err)
	assert.Empty(t, mailer.sent)
}
