// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderIDRoundTrip(t *testing.T) {
	billID := uuid.New().String()
	orderID := BuildOrderID(billID)

	parsed, ok := ParseOrderID(orderID)
	assert.True(t, ok)
	assert.Equal(t, billID, parsed)
}

func TestParseOrderIDRejectsGarbage(t *testing.T) {
	_, ok := ParseOrderID("ORDER-123")
	assert.False(t, ok)
	_, ok = ParseOrderID("PLZ-")
	assert.False(t, ok)
	_, ok = ParseOrderID("")
	assert.False(t, ok)
}

func TestMidtransNotificationIsSettled(t *testing.T) {
	assert.True(t, MidtransNotification{TransactionStatus: "settlement"}.IsSettled())
	assert.True(t, MidtransNotification{TransactionStatus: "capture", FraudStatus: "accept"}.IsSettled())
	assert.True(t, MidtransNotification{TransactionStatus: "capture"}.IsSettled())

	assert.False(t, MidtransNotification{TransactionStatus: "capture", FraudStatus: "challenge"}.IsSettled())
	assert.False(t, MidtransNotification{TransactionStatus: "pending"}.IsSettled())
	assert.False(t, MidtransNotification{TransactionStatus: "expire"}.IsSettled())
	assert.False(t, MidtransNotification{TransactionStatus: "deny"}.IsSettled())
}
