package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"onehour/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker consumes the notification queue and delivers mail. Failed tasks are
// retried with asynq's backoff; tasks that exhaust their retries are archived
// (dead-letter) and each failure is logged, keeping delivery problems
// observable without ever touching the request that enqueued them.
type Worker struct {
	server     *asynq.Server
	mailer     Mailer
	adminEmail string
	logger     *zap.Logger
}

// NewWorker builds the queue consumer.
func NewWorker(redisOpt asynq.RedisClientOpt, mailer Mailer, adminEmail string, logger *zap.Logger) *Worker {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Warn("notification: delivery attempt failed",
					zap.String("type", task.Type()), zap.Error(err))
			}),
		},
	)
	return &Worker{
		server:     server,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Start runs the worker in the background, retrying startup a few times
// before giving up.
func (w *Worker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingCreated, w.HandleBookingCreated)
	mux.HandleFunc(TypePaymentCompleted, w.HandlePaymentCompleted)
	mux.HandleFunc(TypeManualPayment, w.HandleManualPayment)

	go func() {
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			w.logger.Info("notification: starting queue worker", zap.Int("attempt", attempt))
			err := w.server.Run(mux)
			if err == nil {
				return
			}
			w.logger.Error("notification: worker failed to start", zap.Error(err))
			if attempt == maxAttempts {
				w.logger.Error("notification: max worker start attempts reached, giving up")
				return
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// Shutdown stops the worker, waiting for in-flight deliveries.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// HandleBookingCreated mails the operator about a new booking.
func (w *Worker) HandleBookingCreated(ctx context.Context, task *asynq.Task) error {
	var b models.Booking
	if err := json.Unmarshal(task.Payload(), &b); err != nil {
		w.logger.Error("notification: invalid booking payload", zap.Error(err))
		return err
	}
	subject := fmt.Sprintf("New Booking: %s - %s Plan", b.Name, b.PlanType)
	return w.mailer.Send(w.adminEmail, subject, bookingCreatedBody(b))
}

// HandlePaymentCompleted mails the operator about a verified gateway payment.
func (w *Worker) HandlePaymentCompleted(ctx context.Context, task *asynq.Task) error {
	var p models.Payment
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		w.logger.Error("notification: invalid payment payload", zap.Error(err))
		return err
	}
	subject := fmt.Sprintf("Payment Confirmed: %s %s", p.PlanType, p.Duration)
	return w.mailer.Send(w.adminEmail, subject, paymentCompletedBody(p))
}

// HandleManualPayment mails both the operator and the customer about a
// submitted UTR.
func (w *Worker) HandleManualPayment(ctx context.Context, task *asynq.Task) error {
	var p models.ManualPaymentPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		w.logger.Error("notification: invalid manual payment payload", zap.Error(err))
		return err
	}
	subject := fmt.Sprintf("UPI Payment: %s - %s Plan", p.Name, p.PlanType)
	if err := w.mailer.Send(w.adminEmail, subject, manualPaymentAdminBody(p)); err != nil {
		return err
	}
	if p.Email != "" {
		return w.mailer.Send(p.Email, "Payment Received - OneHour Challenge", manualPaymentCustomerBody(p))
	}
	return nil
}
