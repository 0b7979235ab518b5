package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRazorpayGatewayVerifySignature(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "super_secret")

	mac := hmac.New(sha256.New, []byte("super_secret"))
	mac.Write([]byte("order_abc|pay_xyz"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, g.VerifySignature("order_abc", "pay_xyz", valid))
	assert.False(t, g.VerifySignature("order_abc", "pay_xyz", "tampered"))
	assert.False(t, g.VerifySignature("order_abc", "pay_other", valid))
	assert.False(t, g.VerifySignature("order_abc", "pay_xyz", ""))
}

func TestRazorpayGatewayKeyID(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "super_secret")
	assert.Equal(t, "rzp_test_key", g.KeyID())
}
