package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"onehour/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// GatewayClient abstracts the payment gateway: order creation on the
// provider's side and local verification of completion callbacks.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*models.GatewayOrder, error)
	VerifySignature(orderRef, transactionRef, signature string) bool
	KeyID() string
}

// RazorpayGateway is the production GatewayClient. It is constructed once at
// process start from configured credentials and injected into the payment
// service; an unconfigured deployment injects nil and order creation fails
// with ErrGatewayUnavailable instead of a generic 500.
type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
	secret string
}

// NewRazorpayGateway builds the gateway client from credentials.
func NewRazorpayGateway(keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, secret),
		keyID:  keyID,
		secret: secret,
	}
}

// KeyID returns the public key id the browser checkout needs.
func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder creates a gateway-side order. The SDK call has no context
// support, so it runs in a goroutine and the caller's deadline is honored by
// abandoning the wait; an abandoned order row is acceptable garbage on the
// gateway side.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*models.GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	type orderResult struct {
		body map[string]interface{}
		err  error
	}
	ch := make(chan orderResult, 1)
	go func() {
		body, err := g.client.Order.Create(data, nil)
		ch <- orderResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("gateway order create failed: %w", res.err)
		}
		return decodeOrder(res.body), nil
	}
}

func decodeOrder(body map[string]interface{}) *models.GatewayOrder {
	order := &models.GatewayOrder{}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if receipt, ok := body["receipt"].(string); ok {
		order.Receipt = receipt
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	return order
}

// VerifySignature recomputes the expected callback signature as
// hex(HMAC-SHA256(secret, orderRef + "|" + transactionRef)) and compares it
// to the supplied one in constant time.
func (g *RazorpayGateway) VerifySignature(orderRef, transactionRef, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderRef + "|" + transactionRef))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
