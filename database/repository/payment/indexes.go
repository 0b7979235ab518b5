package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"onehour/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsurePaymentIndexes creates the payment indexes. The partial unique index
// on transaction_ref enforces the one-use guarantee for gateway transaction
// refs and manual UTRs alike, while still allowing any number of created
// orders that never received a transaction ref.
func EnsurePaymentIndexes(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("payments")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_ref", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{
			Keys: bson.D{{Key: "transaction_ref", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"transaction_ref": bson.M{"$type": "string"}}),
		},
	}
	if _, err := coll.Indexes().CreateMany(ctxWithTimeout, indexes); err != nil {
		return fmt.Errorf("error creating payment indexes: %w", err)
	}
	return nil
}
