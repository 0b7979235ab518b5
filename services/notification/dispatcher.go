package notification

import (
	"encoding/json"
	"time"

	"onehour/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher pushes notification events onto the Redis-backed queue.
// The request cycle only pays for the enqueue; delivery, retries and
// dead-lettering happen in the worker.
type AsynqDispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewAsynqDispatcher constructs a dispatcher over the given Redis connection.
func NewAsynqDispatcher(redisOpt asynq.RedisClientOpt, logger *zap.Logger) *AsynqDispatcher {
	return &AsynqDispatcher{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close releases the underlying queue connection.
func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

// BookingCreated announces a freshly persisted booking.
func (d *AsynqDispatcher) BookingCreated(booking models.Booking) {
	d.enqueue(TypeBookingCreated, booking)
}

// PaymentCompleted announces a verified gateway payment.
func (d *AsynqDispatcher) PaymentCompleted(payment models.Payment) {
	d.enqueue(TypePaymentCompleted, payment)
}

// ManualPaymentSubmitted announces a submitted bank-transfer proof.
func (d *AsynqDispatcher) ManualPaymentSubmitted(payload models.ManualPaymentPayload) {
	d.enqueue(TypeManualPayment, payload)
}

func (d *AsynqDispatcher) enqueue(taskType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("notification: failed to marshal payload",
			zap.String("type", taskType), zap.Error(err))
		return
	}
	task := asynq.NewTask(taskType, data)
	info, err := d.client.Enqueue(task,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		// Swallowed: the booking/payment already succeeded.
		d.logger.Error("notification: failed to enqueue task",
			zap.String("type", taskType), zap.Error(err))
		return
	}
	d.logger.Debug("notification: task enqueued",
		zap.String("type", taskType), zap.String("taskId", info.ID))
}
