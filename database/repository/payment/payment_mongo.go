package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"onehour/database"
	"onehour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no payment matches the given reference.
var ErrNotFound = errors.New("payment not found")

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new instance of MongoPaymentRepo.
func NewMongoPaymentRepo() PaymentRepository {
	return &MongoPaymentRepo{
		coll: database.DB().Collection("payments"),
	}
}

// Create inserts a new payment document. A duplicate transaction_ref violates
// the unique index and surfaces as a duplicate key error.
func (repo *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, payment); err != nil {
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

// GetByOrderRef retrieves the payment created for a gateway order.
func (repo *MongoPaymentRepo) GetByOrderRef(ctx context.Context, orderRef string) (*models.Payment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"order_ref": orderRef}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching payment for order %s: %w", orderRef, err)
	}
	return &payment, nil
}

// FindByTransactionRef looks up a payment by transaction ref or UTR.
func (repo *MongoPaymentRepo) FindByTransactionRef(ctx context.Context, ref string) (*models.Payment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"transaction_ref": ref}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching payment for reference %s: %w", ref, err)
	}
	return &payment, nil
}

// Complete finalizes a created payment. The filter excludes already-completed
// documents so a duplicate gateway callback cannot double-complete.
func (repo *MongoPaymentRepo) Complete(ctx context.Context, orderRef, transactionRef, signature string) (*models.Payment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"order_ref": orderRef, "status": bson.M{"$ne": models.PaymentStateCompleted}}
	update := bson.M{"$set": bson.M{
		"status":          models.PaymentStateCompleted,
		"transaction_ref": transactionRef,
		"signature":       signature,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payment models.Payment
	err := repo.coll.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error completing payment for order %s: %w", orderRef, err)
	}
	return &payment, nil
}

// GetByUser retrieves a user's payments in the given state, most recent first.
func (repo *MongoPaymentRepo) GetByUser(ctx context.Context, userID string, status models.PaymentState) ([]models.Payment, error) {
	return repo.find(ctx, bson.M{"user_id": userID, "status": status})
}

// GetAll retrieves all payments, most recent first.
func (repo *MongoPaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *MongoPaymentRepo) find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching payments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var payments []models.Payment
	if err := cursor.All(ctxWithTimeout, &payments); err != nil {
		return nil, fmt.Errorf("error decoding payments: %w", err)
	}
	return payments, nil
}
